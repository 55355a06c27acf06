package llm

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/matching"
)

// GeminiEmbedder implements matching.Embedder on the Gemini embedding API.
// Embedding calls do not mutate client state, so one instance is safe for
// concurrent use across scoring requests.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates an embedder. The model name defaults to
// DefaultEmbeddingModel when empty.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

// EmbedTexts embeds all texts in one batch call, preserving input order.
func (e *GeminiEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	em := e.client.EmbeddingModel(e.model)
	batch := em.NewBatch()
	for _, text := range texts {
		batch = batch.AddContent(genai.Text(text))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to embed contents: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(resp.Embeddings), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for i, embedding := range resp.Embeddings {
		if embedding == nil {
			return nil, fmt.Errorf("nil embedding at index %d", i)
		}
		vectors[i] = embedding.Values
	}
	return vectors, nil
}

// Close releases resources held by the embedder.
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// The shared embedder is initialized at most once per process. It has an
// explicit unavailable state: when initialization fails, every caller gets
// (nil, false) and degrades to phrase-only matching instead of erroring.
var (
	sharedOnce      sync.Once
	sharedEmbedder  matching.Embedder
	sharedAvailable bool
)

// SharedEmbedder lazily initializes the process-wide embedder from the
// GEMINI_API_KEY environment variable. The boolean reports availability.
func SharedEmbedder(ctx context.Context) (matching.Embedder, bool) {
	sharedOnce.Do(func() {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			logger.Warn().Msg("GEMINI_API_KEY not set; semantic matching disabled")
			return
		}

		embedder, err := NewGeminiEmbedder(ctx, apiKey, "")
		if err != nil {
			logger.Warn().Err(err).Msg("embedding model init failed; semantic matching disabled")
			return
		}

		sharedEmbedder = embedder
		sharedAvailable = true
		logger.Info().Str("model", DefaultEmbeddingModel).Msg("embedding model initialized")
	})
	return sharedEmbedder, sharedAvailable
}
