package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// jsonOnlyInstruction stands in for a JSON media type on providers where the
// chat model config does not expose one.
const jsonOnlyInstruction = "You are a JSON API. Respond with a single valid JSON document and nothing else: no markdown fences, no commentary."

// EinoGenerator adapts an Eino chat model to TextGenerator.
type EinoGenerator struct {
	chat     model.BaseChatModel
	provider Provider
}

// NewEinoGenerator creates the chat model for OpenAI, Anthropic or Ollama.
func NewEinoGenerator(ctx context.Context, cfg Config) (*EinoGenerator, error) {
	chat, err := newChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &EinoGenerator{chat: chat, provider: cfg.Provider}, nil
}

func newChatModel(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			Model:   cfg.Model,
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
		})

	case ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic API key is required")
		}
		return claude.NewChatModel(ctx, &claude.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: DefaultAnthropicMaxTokens,
		})

	case ProviderOllama:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaURL
		}
		return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: baseURL,
			Model:   cfg.Model,
		})

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// Generate implements TextGenerator.
func (g *EinoGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(jsonOnlyInstruction),
		schema.UserMessage(prompt),
	}

	resp, err := g.chat.Generate(ctx, messages)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", nil
	}
	return resp.Content, nil
}
