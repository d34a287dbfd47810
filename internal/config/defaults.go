// Package config provides centralized configuration for roadmapper.
// All default values should be defined here to ensure a single source of truth.
package config

// File and environment naming.
const (
	// ConfigName is the config file base name (.roadmapper.yaml).
	ConfigName = ".roadmapper"

	// EnvPrefix is prepended to every environment override, e.g.
	// ROADMAPPER_LLM_PROVIDER.
	EnvPrefix = "ROADMAPPER"
)

// Application defaults.
const (
	// DefaultLogLevel is used when log.level is unset or invalid.
	DefaultLogLevel = "info"

	// DefaultLogFileName is created under the OS temp dir when log.file is unset.
	DefaultLogFileName = "roadmapper.log"

	// DefaultServerPort is the HTTP API port.
	DefaultServerPort = 8080

	// DefaultAllowedOrigin is the CORS origin of a local web client.
	DefaultAllowedOrigin = "http://localhost:5173"
)
