package main

import (
	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"

	"github.com/binaryn3xus/AIForge/internal/api"
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

	app := fiber.New()
	api.RegisterRoutes(app, rag, llm, dbStore)

	log.Infof("server listening at %s", cfg.ServerAddr)
	if err := app.Listen(cfg.ServerAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
