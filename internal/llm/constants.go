package llm

// Provider constants
const (
	// DefaultProvider is the default LLM provider
	DefaultProvider = ProviderGemini

	// ProviderGemini represents the Google Gemini provider
	ProviderGemini Provider = "gemini"

	// ProviderOpenAI represents the OpenAI provider
	ProviderOpenAI Provider = "openai"

	// ProviderAnthropic represents the Anthropic provider
	ProviderAnthropic Provider = "anthropic"

	// ProviderOllama represents the Ollama provider
	ProviderOllama Provider = "ollama"
)

// Default chat models per provider.
const (
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-3-5-haiku-latest"
	DefaultOllamaModel    = "llama3.2"
)

// DefaultOllamaURL is the default URL for Ollama server
const DefaultOllamaURL = "http://localhost:11434"

// DefaultAnthropicMaxTokens bounds the Claude completion. A full roadmap with
// 3 modules and up to 15 final questions fits comfortably.
const DefaultAnthropicMaxTokens = 16384

// JSONMimeType is the response media type requested from providers that support it.
const JSONMimeType = "application/json"

// DefaultModelForProvider returns the default model ID for a given provider.
func DefaultModelForProvider(provider Provider) string {
	switch provider {
	case ProviderGemini:
		return DefaultGeminiModel
	case ProviderOpenAI:
		return DefaultOpenAIModel
	case ProviderAnthropic:
		return DefaultAnthropicModel
	case ProviderOllama:
		return DefaultOllamaModel
	default:
		return ""
	}
}

// Providers lists every supported provider in display order.
func Providers() []Provider {
	return []Provider{ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderOllama}
}
