package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds the server settings, read from the environment.
// A .env file in the working directory is loaded first.
type Config struct {
	Addr          string `env:"SET_ADDR" envDefault:":8080"`
	StaticDir     string `env:"SET_STATIC_DIR" envDefault:"web/static"`
	SendBuffer    int    `env:"SET_SEND_BUFFER" envDefault:"256"`
	StartingCards int    `env:"SET_STARTING_CARDS" envDefault:"12"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SendBuffer <= 0 {
		return Config{}, fmt.Errorf("SET_SEND_BUFFER must be positive, got %d", cfg.SendBuffer)
	}
	if cfg.StartingCards <= 0 || cfg.StartingCards > 81 {
		return Config{}, fmt.Errorf("SET_STARTING_CARDS must be between 1 and 81, got %d", cfg.StartingCards)
	}
	return cfg, nil
}
