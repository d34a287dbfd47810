package config

import (
	"fmt"

	"github.com/josephgoksu/roadmapper/internal/llm"
	"github.com/spf13/viper"
)

// Settings is the resolved application configuration.
type Settings struct {
	LLM       llm.Config
	Roadmap   RoadmapSettings
	Log       LogSettings
	Telemetry TelemetrySettings
	Server    ServerSettings
}

// RoadmapSettings controls prompt and response handling.
type RoadmapSettings struct {
	// Strict rejects responses that break the prompt's structural conventions.
	Strict bool
	// PromptTemplate is a path to a text/template overriding the built-in prompt.
	PromptTemplate string
}

// LogSettings controls the zap logger.
type LogSettings struct {
	Level string
	File  string
}

// TelemetrySettings controls anonymous usage events.
type TelemetrySettings struct {
	Enabled  bool
	APIKey   string
	Endpoint string
}

// ServerSettings controls the HTTP API.
type ServerSettings struct {
	Port           int
	AllowedOrigins []string
}

// DefaultSettings returns settings with every default applied and no LLM
// credentials.
func DefaultSettings() Settings {
	return Settings{
		LLM: llm.Config{
			Provider: llm.DefaultProvider,
			Model:    llm.DefaultModelForProvider(llm.DefaultProvider),
		},
		Log: LogSettings{
			Level: DefaultLogLevel,
			File:  DefaultLogFile(),
		},
		Server: ServerSettings{
			Port:           DefaultServerPort,
			AllowedOrigins: []string{DefaultAllowedOrigin},
		},
	}
}

// Load resolves Settings from Viper with defaults.
func Load() (Settings, error) {
	defaults := DefaultSettings()

	llmCfg, err := LoadLLMConfig()
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		LLM: llmCfg,
		Roadmap: RoadmapSettings{
			Strict:         getBoolWithDefault("roadmap.strict", defaults.Roadmap.Strict),
			PromptTemplate: getStringWithDefault("roadmap.promptTemplate", defaults.Roadmap.PromptTemplate),
		},
		Log: LogSettings{
			Level: getStringWithDefault("log.level", defaults.Log.Level),
			File:  getStringWithDefault("log.file", defaults.Log.File),
		},
		Telemetry: TelemetrySettings{
			Enabled:  getBoolWithDefault("telemetry.enabled", defaults.Telemetry.Enabled),
			APIKey:   getStringWithDefault("telemetry.apiKey", defaults.Telemetry.APIKey),
			Endpoint: getStringWithDefault("telemetry.endpoint", defaults.Telemetry.Endpoint),
		},
		Server: ServerSettings{
			Port:           getIntWithDefault("server.port", defaults.Server.Port),
			AllowedOrigins: getStringSliceWithDefault("server.allowedOrigins", defaults.Server.AllowedOrigins),
		},
	}

	if s.Server.Port <= 0 || s.Server.Port > 65535 {
		return Settings{}, fmt.Errorf("invalid server.port %d", s.Server.Port)
	}
	return s, nil
}

// Helper functions for Viper with defaults

func getIntWithDefault(key string, defaultVal int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return defaultVal
}

func getBoolWithDefault(key string, defaultVal bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return defaultVal
}

func getStringWithDefault(key string, defaultVal string) string {
	if viper.IsSet(key) {
		if v := viper.GetString(key); v != "" {
			return v
		}
	}
	return defaultVal
}

func getStringSliceWithDefault(key string, defaultVal []string) []string {
	if viper.IsSet(key) {
		if v := viper.GetStringSlice(key); len(v) > 0 {
			return v
		}
	}
	return defaultVal
}
