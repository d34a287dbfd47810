package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/josephgoksu/roadmapper/internal/llm"
	"github.com/spf13/viper"
)

// LoadLLMConfig loads LLM configuration from Viper and Environment variables.
// It handles precedence: Explicit Viper Config > Environment Variables > Defaults.
// A missing API key is not an error here; the provider constructor reports it.
func LoadLLMConfig() (llm.Config, error) {
	// 1. Provider
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = string(llm.DefaultProvider)
	}

	llmProvider, err := llm.ValidateProvider(provider)
	if err != nil {
		return llm.Config{}, fmt.Errorf("invalid provider: %w", err)
	}

	// 2. Model
	model := strings.TrimSpace(viper.GetString("llm.model"))
	if model == "" {
		model = llm.DefaultModelForProvider(llmProvider)
	}

	// 3. API Key
	apiKey := ResolveAPIKey(llmProvider)

	// 4. Base URL (Ollama or OpenAI-compatible)
	baseURL := strings.TrimSpace(viper.GetString("llm.baseURL"))
	if baseURL == "" && llmProvider == llm.ProviderOllama {
		baseURL = llm.DefaultOllamaURL
	}

	return llm.Config{
		Provider: llmProvider,
		Model:    model,
		APIKey:   apiKey,
		BaseURL:  baseURL,
	}, nil
}

// ResolveAPIKey returns the best API key for the given provider using
// per-provider config keys, the shared llm.apiKey, then provider-specific env
// vars.
func ResolveAPIKey(provider llm.Provider) string {
	keyFromViper := func(path string) string {
		if viper.IsSet(path) {
			return strings.TrimSpace(viper.GetString(path))
		}
		return ""
	}

	// 1) Per-provider config key (llm.apiKeys.<provider>)
	if key := keyFromViper(fmt.Sprintf("llm.apiKeys.%s", provider)); key != "" {
		return key
	}

	// 2) Shared key for whichever provider is active
	if key := keyFromViper("llm.apiKey"); key != "" {
		return key
	}

	// 3) Provider-specific env vars
	return providerEnvKey(provider)
}

func providerEnvKey(provider llm.Provider) string {
	switch provider {
	case llm.ProviderOpenAI:
		return firstEnv("OPENAI_API_KEY")
	case llm.ProviderAnthropic:
		return firstEnv("ANTHROPIC_API_KEY")
	case llm.ProviderGemini:
		return firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY")
	default:
		return ""
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}
