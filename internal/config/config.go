package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every externally supplied value, resolved once at startup
// and passed into the components that need it.
type Config struct {
	PgConn     string
	ServerAddr string
	EmbedModel string
	GenModel   string
	EmbedURL   string // OpenAI-compatible endpoint serving embeddings
	OllamaURL  string // Ollama endpoint serving generation
	TopK       int
	EmbedDim   int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		PgConn:     os.Getenv("PG_CONN"),
		ServerAddr: getenv("SERVER_ADDR", ":8080"),
		EmbedModel: getenv("EMBED_MODEL", "nomic-embed-text"),
		GenModel:   getenv("GEN_MODEL", "llama3.2"),
		EmbedURL:   getenv("EMBED_BASE_URL", "http://localhost:11434/v1"),
		OllamaURL:  getenv("OLLAMA_BASE_URL", "http://localhost:11434"),
		TopK:       getenvInt("TOP_K", 5),
		EmbedDim:   getenvInt("EMBED_DIM", 768),
	}
}

// Validate reports the first missing required value. A config that fails
// validation is fatal at startup, never a per-turn error. The service
// endpoints and model names carry local-dev defaults; the connection
// string has none and must be supplied.
func (c *Config) Validate() error {
	if c.PgConn == "" {
		return fmt.Errorf("PG_CONN is required")
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
