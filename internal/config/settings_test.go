package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	resetViperForTest(t)
	clearKeyEnv(t)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.False(t, s.Roadmap.Strict)
	assert.Equal(t, DefaultServerPort, s.Server.Port)
	assert.Equal(t, []string{DefaultAllowedOrigin}, s.Server.AllowedOrigins)
	assert.Equal(t, DefaultLogFileName, filepath.Base(s.Log.File))
}

func TestLoad_Overrides(t *testing.T) {
	resetViperForTest(t)
	clearKeyEnv(t)
	viper.Set("roadmap.strict", true)
	viper.Set("roadmap.promptTemplate", "/etc/roadmapper/prompt.tmpl")
	viper.Set("log.level", "debug")
	viper.Set("log.file", "/var/log/roadmapper.log")
	viper.Set("telemetry.enabled", true)
	viper.Set("telemetry.apiKey", "phc_test")
	viper.Set("server.port", 9090)
	viper.Set("server.allowedOrigins", []string{"https://a.example", "https://b.example"})

	s, err := Load()
	require.NoError(t, err)
	assert.True(t, s.Roadmap.Strict)
	assert.Equal(t, "/etc/roadmapper/prompt.tmpl", s.Roadmap.PromptTemplate)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "/var/log/roadmapper.log", s.Log.File)
	assert.True(t, s.Telemetry.Enabled)
	assert.Equal(t, "phc_test", s.Telemetry.APIKey)
	assert.Equal(t, 9090, s.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.Server.AllowedOrigins)
}

func TestLoad_InvalidPort(t *testing.T) {
	resetViperForTest(t)
	viper.Set("server.port", 70000)

	_, err := Load()
	assert.ErrorContains(t, err, "server.port")
}

func TestLoad_InvalidProvider(t *testing.T) {
	resetViperForTest(t)
	viper.Set("llm.provider", "nope")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfigSearchPaths(t *testing.T) {
	orig := GetHomeDir
	t.Cleanup(func() { GetHomeDir = orig })

	GetHomeDir = func() (string, error) { return "/home/learner", nil }
	assert.Equal(t, []string{".", "/home/learner"}, ConfigSearchPaths())

	GetHomeDir = func() (string, error) { return "", assert.AnError }
	assert.Equal(t, []string{"."}, ConfigSearchPaths())
}
