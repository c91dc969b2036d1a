package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// LLMClient talks to an OpenAI-compatible endpoint for embeddings and
// model listing. Generation goes through OllamaClient instead.
type LLMClient struct {
	client     *openai.Client
	embedModel string
}

func NewLLMClient(baseURL, embedModel string) *LLMClient {
	oaiCfg := openai.DefaultConfig("not-needed")
	oaiCfg.BaseURL = baseURL
	oaiCfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	return &LLMClient{
		client:     openai.NewClientWithConfig(oaiCfg),
		embedModel: embedModel,
	}
}

// Embed returns the embedding vector for text, passed through verbatim.
func (l *LLMClient) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := l.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(l.embedModel),
		Input: []string{text},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("embedding endpoint returned no data")
	}
	return resp.Data[0].Embedding, nil
}

// ListModels returns the models available at the endpoint.
func (l *LLMClient) ListModels(ctx context.Context) ([]openai.Model, error) {
	resp, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Models, nil
}
