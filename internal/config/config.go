package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the scoring service. The model
// artifact path is injected here instead of being baked into the classifier.
type Config struct {
	Port              string `env:"PORT" envDefault:"8080"`
	ModelPath         string `env:"MODEL_PATH" envDefault:"./data/model.json"`
	RequestTimeoutSec int    `env:"REQUEST_TIMEOUT_SEC" envDefault:"30"`
	RateLimitPerMin   int    `env:"RATE_LIMIT_PER_MIN" envDefault:"120"`
	RateLimitBurst    int    `env:"RATE_LIMIT_BURST" envDefault:"20"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownGraceSec  int    `env:"SHUTDOWN_GRACE_SEC" envDefault:"30"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
