package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when Load is given no files
const DefaultEnvFile = ".env"

// Config holds the environment configuration for the game
type Config struct {
	// RedisAddr enables result recording when set
	RedisAddr     string `env:"LIARSDICE_REDIS_ADDR"`
	RedisPassword string `env:"LIARSDICE_REDIS_PASSWORD"`
	RedisDB       int    `env:"LIARSDICE_REDIS_DB"       envDefault:"0"`

	// PlayerName is the human player's display name
	PlayerName string `env:"LIARSDICE_PLAYER_NAME" envDefault:"Human Player"`

	// Tone is the messaging tone used by the console
	Tone string `env:"LIARSDICE_TONE" envDefault:"neutral"`
}

// RecordsResults reports whether a result store is configured
func (c *Config) RecordsResults() bool {
	return c.RedisAddr != ""
}

// Load reads optional env files, then parses the environment. Variables
// already set in the environment win over the files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
