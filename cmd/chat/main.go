package main

import (
	"context"
	"os"

	"github.com/apex/log"

	"github.com/binaryn3xus/AIForge/internal/chat"
	"github.com/binaryn3xus/AIForge/internal/config"
	"github.com/binaryn3xus/AIForge/internal/service"
	"github.com/binaryn3xus/AIForge/internal/store"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	dbStore, err := store.NewPgStore(cfg.PgConn, cfg.EmbedDim)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer dbStore.Close()

	llm := service.NewLLMClient(cfg.EmbedURL, cfg.EmbedModel)
	gen := service.NewOllamaClient(cfg.OllamaURL, cfg.GenModel)
	rag := service.NewRAGService(llm, dbStore, gen, cfg.TopK)

	loop := chat.New(rag, os.Stdin, os.Stdout)
	if err := loop.Run(context.Background()); err != nil {
		log.Fatalf("chat: %v", err)
	}
}
