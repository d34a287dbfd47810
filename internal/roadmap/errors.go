package roadmap

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTopic is returned for a blank topic. Callers should guard
	// before calling the requester; the input boundary rejects it first.
	ErrEmptyTopic = errors.New("topic is required")

	// ErrNoResponse is returned when the provider succeeds with no text.
	ErrNoResponse = errors.New("No response from AI")

	// ErrMalformedResponse is returned when the text is not a roadmap. The
	// raw payload is logged, never surfaced.
	ErrMalformedResponse = errors.New("Failed to generate a valid roadmap structure. Please try again.")
)

// ProviderError wraps a failure of the provider call itself (network, auth,
// quota). Its message is the provider's own.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s provider failed", e.Provider)
	}
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// UserMessage maps a requester error to the short text shown to the user:
// provider failures verbatim, the fixed messages for empty and malformed
// responses, and the error text otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrMalformedResponse):
		return ErrMalformedResponse.Error()
	case errors.Is(err, ErrNoResponse):
		return ErrNoResponse.Error()
	case errors.Is(err, ErrEmptyTopic):
		return ErrEmptyTopic.Error()
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Error()
	}
	return err.Error()
}

// FailureKind classifies err for telemetry and HTTP status mapping.
func FailureKind(err error) string {
	var pe *ProviderError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyTopic):
		return "empty_topic"
	case errors.Is(err, ErrNoResponse):
		return "empty_response"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.As(err, &pe):
		return "provider"
	default:
		return "other"
	}
}
