package ai

import (
	"github.com/sebrandon1/genpr/internal/config"
)

// Providers builds every known provider from cfg in fallback order:
// OpenAI, Gemini, then Ollama. Unconfigured providers are included and
// report themselves unavailable.
func Providers(cfg *config.Config) []Provider {
	return []Provider{
		NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		}),
		NewGeminiProvider(GeminiConfig{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		}),
		NewOllamaProvider(OllamaConfig{
			Host:  cfg.OllamaHost,
			Model: cfg.OllamaModel,
		}),
	}
}

// FromConfig returns a Manager over the providers cfg makes available.
func FromConfig(cfg *config.Config) (*Manager, error) {
	return NewManager(Providers(cfg),
		WithDefaultProvider(cfg.DefaultProvider),
		WithAttemptTimeout(cfg.ProviderTimeout),
	)
}
