package utils

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// EmbeddingDimensions is the fixed dimensionality of every vector this
// module produces and stores. Establishment embeddings are either nil
// or exactly this long.
const EmbeddingDimensions = 384

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error)
}

// ------------------- OpenAI -------------------

type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbeddingClient(apiKey, model string) EmbeddingClientInterface {
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	return &OpenAIEmbeddingClient{
		client: openai.NewClient(apiKey),
		model:  openai.EmbeddingModel(model),
	}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	vectors, err := c.GetEmbeddings(ctx, []string{text})
	if err != nil {
		return pgvector.Vector{}, err
	}
	return vectors[0], nil
}

func (c *OpenAIEmbeddingClient) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no input texts provided")
	}

	input := make([]string, len(texts))
	for i, t := range texts {
		// The embeddings endpoint rejects empty strings; a single space
		// still yields a valid vector.
		if strings.TrimSpace(t) == "" {
			t = " "
		}
		input[i] = t
	}

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      input,
		Model:      c.model,
		Dimensions: EmbeddingDimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) != len(input) {
		return nil, fmt.Errorf("openai embeddings: got %d vectors for %d inputs", len(resp.Data), len(input))
	}

	vectors := make([]pgvector.Vector, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = pgvector.NewVector(d.Embedding)
	}
	return vectors, nil
}

// ------------------- Gemini -------------------

// GeminiEmbeddingClient keeps the free-tier Gemini setup: the API key is
// validated at construction, but embeddings are produced locally with a
// deterministic hashed bag-of-words projection since the free tier has
// no embedding endpoint.
type GeminiEmbeddingClient struct {
	client *genai.Client
	model  string
}

func NewGeminiEmbeddingClient(apiKey, model string) (EmbeddingClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbeddingClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return c.textToVector(text), nil
}

func (c *GeminiEmbeddingClient) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no input texts provided")
	}

	vectors := make([]pgvector.Vector, len(texts))
	for i, text := range texts {
		vectors[i] = c.textToVector(text)
	}
	return vectors, nil
}

func (c *GeminiEmbeddingClient) textToVector(text string) pgvector.Vector {
	vec := make([]float32, EmbeddingDimensions)

	for i, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(word))
		idx := int(h.Sum32() % EmbeddingDimensions)
		// Earlier words carry slightly more weight.
		vec[idx] += 1.0 / float32(1+i/8)
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		n := float32(math.Sqrt(norm))
		for i := range vec {
			vec[i] /= n
		}
	}

	return pgvector.NewVector(vec)
}

// NewEmbeddingClient selects a provider implementation by name.
func NewEmbeddingClient(provider, apiKey, model string) (EmbeddingClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIEmbeddingClient(apiKey, model), nil
	case "gemini":
		return NewGeminiEmbeddingClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
