// Package config provides runtime configuration values for the service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds configuration knobs for the HTTP server, seed state and assistant.
type Config struct {
	HTTPAddr         string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	SeedFile         string        `env:"GROUP_ORDER_SEED_FILE"`
	GenAIAPIKey      string        `env:"GEMINI_API_KEY"`
	GenAIModel       string        `env:"GENAI_MODEL" envDefault:"gemini-2.0-flash"`
	AssistantTimeout time.Duration `env:"ASSISTANT_TIMEOUT" envDefault:"30s"`
}

// AssistantEnabled reports whether a generative model is configured.
func (c Config) AssistantEnabled() bool { return c.GenAIAPIKey != "" }

// Load collects configuration from environment with defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
