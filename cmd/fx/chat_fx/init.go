package chat_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"boulevard/internal/repositories"
	"boulevard/internal/services"
	"boulevard/pkg/utils"
)

var Module = fx.Provide(
	provideEmbeddingClient,
	provideChatService,
	provideEmbeddingIndexService,
)

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	provider := getEnvWithDefault("EMBEDDING_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "text-embedding-3-small")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	client, err := utils.NewEmbeddingClient(provider, apiKey, model)
	if err != nil {
		log.Fatalf("Failed to initialize embedding client: %v", err)
	}
	return client
}

func provideChatService(
	establishments repositories.EstablishmentRepository,
	taxonomy repositories.TaxonomyRepository,
	embedder utils.EmbeddingClientInterface,
) services.ChatService {
	return services.NewChatService(establishments, taxonomy, embedder)
}

func provideEmbeddingIndexService(
	establishments repositories.EstablishmentRepository,
	embedder utils.EmbeddingClientInterface,
) services.EmbeddingIndexService {
	return services.NewEmbeddingIndexService(establishments, embedder)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
