// Package llm provides a narrow text-generation interface over the supported
// model vendors. Gemini is called through the genai SDK so the JSON media type
// can be requested; the rest go through CloudWeGo Eino chat models.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Provider identifies the LLM provider to use.
type Provider string

// Config holds configuration for creating an LLM client.
type Config struct {
	Provider Provider
	Model    string
	APIKey   string // Required for Gemini, OpenAI, Anthropic
	BaseURL  string // Ollama server or OpenAI-compatible endpoint
}

// TextGenerator sends a single prompt and returns the raw text of the reply.
// Implementations make exactly one round trip per call.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewTextGenerator creates a TextGenerator for the configured provider.
func NewTextGenerator(ctx context.Context, cfg Config) (TextGenerator, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModelForProvider(cfg.Provider)
	}

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini API key is required")
		}
		return NewGeminiGenerator(ctx, cfg)

	case ProviderOpenAI, ProviderAnthropic, ProviderOllama:
		return NewEinoGenerator(ctx, cfg)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: gemini, openai, anthropic, ollama)", cfg.Provider)
	}
}

// ValidateProvider checks if the given provider string is supported.
func ValidateProvider(p string) (Provider, error) {
	provider := Provider(strings.ToLower(strings.TrimSpace(p)))
	for _, known := range Providers() {
		if provider == known {
			return provider, nil
		}
	}
	return "", fmt.Errorf("unsupported provider: %s", p)
}
