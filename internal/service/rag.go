package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/binaryn3xus/AIForge/internal/model"
)

// ErrNoContext marks a retrieval that found nothing relevant. Not a
// failure: generation is skipped and the user is told so.
var ErrNoContext = errors.New("no relevant context found")

// Embedder turns text into a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// SearchStore finds the chunks most similar to a query vector.
type SearchStore interface {
	Search(ctx context.Context, vec []float32, k int) ([]model.Chunk, error)
}

// Generator streams a completion for a prompt.
type Generator interface {
	Stream(ctx context.Context, prompt string) (<-chan StreamToken, error)
}

const (
	embedTimeout  = 60 * time.Second
	searchTimeout = 15 * time.Second
)

type RAGService struct {
	embedder Embedder
	store    SearchStore
	gen      Generator
	topK     int
}

func NewRAGService(embedder Embedder, store SearchStore, gen Generator, topK int) *RAGService {
	if topK <= 0 {
		topK = 5
	}
	return &RAGService{embedder: embedder, store: store, gen: gen, topK: topK}
}

// Retrieve embeds the question verbatim and returns the top-K chunks in
// ranking order. K falls back to the service default when non-positive.
func (s *RAGService) Retrieve(ctx context.Context, question string, k int) ([]model.Chunk, error) {
	if k <= 0 {
		k = s.topK
	}
	ectx, ecancel := context.WithTimeout(ctx, embedTimeout)
	vec, err := s.embedder.Embed(ectx, question)
	ecancel()
	if err != nil {
		return nil, fmt.Errorf("embedding error: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()
	chunks, err := s.store.Search(ctx, vec, k)
	if err != nil {
		return nil, fmt.Errorf("search error: %w", err)
	}
	return chunks, nil
}

// Stream builds the grounded prompt for question over chunks and starts
// generation. Chunks must be non-empty; Retrieve's caller enforces the
// empty-context policy.
func (s *RAGService) Stream(ctx context.Context, question string, chunks []model.Chunk) (<-chan StreamToken, error) {
	prompt := BuildPrompt(BuildContext(chunks), question)
	ch, err := s.gen.Stream(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("llm error: %w", err)
	}
	return ch, nil
}

// Ask runs the full pipeline and drains the stream into a single answer.
// Returns ErrNoContext when retrieval finds nothing.
func (s *RAGService) Ask(ctx context.Context, question string, k int) (string, []model.Chunk, error) {
	chunks, err := s.Retrieve(ctx, question, k)
	if err != nil {
		return "", nil, err
	}
	if len(chunks) == 0 {
		return "", nil, ErrNoContext
	}

	tokens, err := s.Stream(ctx, question, chunks)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	for tok := range tokens {
		if tok.Err != nil {
			return "", nil, fmt.Errorf("stream error: %w", tok.Err)
		}
		b.WriteString(tok.Content)
	}
	return strings.TrimSpace(b.String()), chunks, nil
}
