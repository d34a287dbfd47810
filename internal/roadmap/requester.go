package roadmap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/josephgoksu/roadmapper/internal/llm"
	"github.com/josephgoksu/roadmapper/internal/logger"
	"github.com/josephgoksu/roadmapper/internal/telemetry"
)

// Options configures a Requester.
type Options struct {
	// Generator performs the provider call. Required.
	Generator llm.TextGenerator
	// Prompt overrides the built-in prompt.
	Prompt *Prompt
	// Provider and Model label logs and telemetry.
	Provider string
	Model    string
	// Strict rejects responses that parse but break the prompt's structural
	// conventions. Off by default.
	Strict    bool
	Logger    *logger.Logger
	Telemetry telemetry.Client
}

// Requester turns a topic into a Roadmap with one provider round trip. It does
// not retry and holds no state between calls.
type Requester struct {
	gen      llm.TextGenerator
	prompt   *Prompt
	provider string
	model    string
	strict   bool
	log      *logger.Logger
	tracker  telemetry.Client
}

// NewRequester validates opts and fills defaults.
func NewRequester(opts Options) (*Requester, error) {
	if opts.Generator == nil {
		return nil, errors.New("roadmap requester needs a text generator")
	}
	r := &Requester{
		gen:      opts.Generator,
		prompt:   opts.Prompt,
		provider: opts.Provider,
		model:    opts.Model,
		strict:   opts.Strict,
		log:      opts.Logger,
		tracker:  opts.Telemetry,
	}
	if r.prompt == nil {
		r.prompt = DefaultPrompt()
	}
	if r.log == nil {
		r.log = logger.Nop()
	}
	if r.tracker == nil {
		r.tracker = telemetry.NewNoopClient()
	}
	return r, nil
}

// BuildPrompt renders the prompt that Request would send for topic.
func (r *Requester) BuildPrompt(topic string) (string, error) {
	return r.prompt.Build(strings.TrimSpace(topic))
}

// Request asks the provider for a roadmap on topic.
//
// Errors: ErrEmptyTopic for a blank topic, *ProviderError when the call fails,
// ErrNoResponse for empty text, ErrMalformedResponse when the text is not a
// roadmap (or, in strict mode, breaks the schema conventions).
func (r *Requester) Request(ctx context.Context, topic string) (*Roadmap, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	start := time.Now()
	result, err := r.request(ctx, topic)
	r.record(topic, result, err, time.Since(start))
	return result, err
}

func (r *Requester) request(ctx context.Context, topic string) (*Roadmap, error) {
	prompt, err := r.prompt.Build(topic)
	if err != nil {
		return nil, err
	}
	logger.SetLastTopic(topic)

	text, err := r.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, &ProviderError{Provider: r.provider, Err: err}
	}
	usage := llm.EstimateUsage(r.model, prompt, text)
	r.log.Debug("provider responded",
		"provider", r.provider,
		"model", r.model,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
		"cost_usd", usage.CostUSD)
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoResponse
	}

	parsed, err := Parse(text)
	if err != nil {
		r.log.Warn("failed to parse roadmap JSON",
			"topic", topic,
			"error", err,
			"raw", logger.Truncate(text, logger.MaxPayloadLog))
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if r.strict {
		if res := parsed.Validate(); !res.Valid {
			r.log.Warn("roadmap failed strict validation",
				"topic", topic,
				"errors", res.ErrorSummary(),
				"raw", logger.Truncate(text, logger.MaxPayloadLog))
			return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, res.ErrorSummary())
		}
	}

	return parsed, nil
}

func (r *Requester) record(topic string, result *Roadmap, err error, elapsed time.Duration) {
	props := telemetry.Properties{
		"provider":    r.provider,
		"model":       r.model,
		"duration_ms": elapsed.Milliseconds(),
		"strict":      r.strict,
	}

	if err != nil {
		props["failure"] = FailureKind(err)
		r.tracker.Track(telemetry.EventRoadmapFailed, props)
		r.log.Info("roadmap generation failed",
			"topic", topic,
			"provider", r.provider,
			"kind", FailureKind(err),
			"error", err,
			"duration", elapsed)
		return
	}

	props["modules"] = len(result.Modules)
	props["questions"] = result.QuestionCount()
	r.tracker.Track(telemetry.EventRoadmapGenerated, props)
	r.log.Info("roadmap generated",
		"topic", topic,
		"provider", r.provider,
		"model", r.model,
		"modules", len(result.Modules),
		"duration", elapsed)
}
