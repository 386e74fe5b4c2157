package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcost/internal/ai"
)

var configEnvKeys = []string{
	"HTTP_ADDR", "APP_ENV", "LOG_LEVEL", "CORS_ALLOW_ORIGINS",
	"OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "OPENROUTER_MODEL",
	"OPENROUTER_REFERER", "OPENROUTER_APP_TITLE", "OPENROUTER_TIMEOUT",
}

// clearEnv blanks every key so values from the developer's shell do not leak in.
// Empty env values are treated as unset by viper, so defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.HTTP.Addr)
	assert.Equal(t, "development", cfg.Log.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, ai.OpenRouterConfig{
		BaseURL: ai.DefaultBaseURL,
		Model:   ai.DefaultModel,
		Referer: ai.DefaultReferer,
	}, cfg.OpenRouter)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("OPENROUTER_API_KEY", "  sk-or-123  ")
	t.Setenv("OPENROUTER_BASE_URL", "http://localhost:4010/api/v1")
	t.Setenv("OPENROUTER_MODEL", "meta-llama/llama-3-8b-instruct")
	t.Setenv("OPENROUTER_REFERER", "https://trips.example")
	t.Setenv("OPENROUTER_APP_TITLE", "tripcost")
	t.Setenv("OPENROUTER_TIMEOUT", "45s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, ai.OpenRouterConfig{
		APIKey:   "sk-or-123",
		BaseURL:  "http://localhost:4010/api/v1",
		Model:    "meta-llama/llama-3-8b-instruct",
		Referer:  "https://trips.example",
		AppTitle: "tripcost",
		Timeout:  45 * time.Second,
	}, cfg.OpenRouter)
}

func TestLoad_BadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_NegativeTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_TIMEOUT", "-5s")

	_, err := Load()
	assert.Error(t, err)
}
