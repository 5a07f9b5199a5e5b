package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of all environment variables, e.g. RTTOP_BASE_URL.
const Prefix = "RTTOP"

type Config struct {
	// BaseURL is the all-time top list. Genre and year lists are derived from it.
	BaseURL        string        `envconfig:"BASE_URL" default:"https://www.rottentomatoes.com/top/bestofrt/"`
	Timeout        time.Duration `envconfig:"TIMEOUT" default:"5s"`
	AcceptLanguage string        `envconfig:"ACCEPT_LANGUAGE" default:"en-US"`
	UserAgent      string        `envconfig:"USER_AGENT"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"warn"`
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process(Prefix, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %w", err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("load config error: %v_TIMEOUT must be positive, got %v", Prefix, cfg.Timeout)
	}

	return cfg, nil
}
