// README: Config loader with env defaults for HTTP, logging, CORS and the OpenRouter upstream.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"tripcost/internal/ai"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Log struct {
		Env   string
		Level string
	}
	CORS struct {
		AllowOrigins []string
	}
	OpenRouter ai.OpenRouterConfig
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return c.Log.Env == "production"
}

// Load reads .env (if present), an optional config.yaml, then the environment.
// A missing OPENROUTER_API_KEY is not an error here; estimates report it per request.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("OPENROUTER_API_KEY", "")
	v.SetDefault("OPENROUTER_BASE_URL", ai.DefaultBaseURL)
	v.SetDefault("OPENROUTER_MODEL", ai.DefaultModel)
	v.SetDefault("OPENROUTER_REFERER", ai.DefaultReferer)
	v.SetDefault("OPENROUTER_APP_TITLE", "")
	v.SetDefault("OPENROUTER_TIMEOUT", "0s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	cfg.HTTP.Addr = v.GetString("HTTP_ADDR")
	cfg.Log.Env = strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV")))
	cfg.Log.Level = v.GetString("LOG_LEVEL")
	cfg.CORS.AllowOrigins = splitList(v.GetString("CORS_ALLOW_ORIGINS"))
	cfg.OpenRouter = ai.OpenRouterConfig{
		APIKey:   strings.TrimSpace(v.GetString("OPENROUTER_API_KEY")),
		BaseURL:  v.GetString("OPENROUTER_BASE_URL"),
		Model:    v.GetString("OPENROUTER_MODEL"),
		Referer:  v.GetString("OPENROUTER_REFERER"),
		AppTitle: v.GetString("OPENROUTER_APP_TITLE"),
	}

	timeout, err := time.ParseDuration(v.GetString("OPENROUTER_TIMEOUT"))
	if err != nil {
		return Config{}, fmt.Errorf("config: OPENROUTER_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return Config{}, fmt.Errorf("config: OPENROUTER_TIMEOUT must not be negative, got %s", timeout)
	}
	cfg.OpenRouter.Timeout = timeout

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
