// Package telemetry sends anonymous usage events for roadmapper. Nothing is
// written to disk: the anonymous ID lives for one process.
package telemetry

import "github.com/google/uuid"

// Config holds the telemetry state for a session.
type Config struct {
	// Enabled indicates whether telemetry is on (opt-in via telemetry.enabled).
	Enabled bool

	// AnonymousID is a random UUID scoped to this process.
	AnonymousID string
}

// NewSessionConfig returns a Config with a fresh anonymous ID.
func NewSessionConfig(enabled bool) *Config {
	return &Config{
		Enabled:     enabled,
		AnonymousID: uuid.NewString(),
	}
}

// IsEnabled reports whether events should be sent.
func (c *Config) IsEnabled() bool {
	return c != nil && c.Enabled && c.AnonymousID != ""
}
