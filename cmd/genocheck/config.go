package main

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/carbocation/pfx"
	"github.com/joho/godotenv"
)

// Config holds the defaults that flags may override.
type Config struct {
	RulesFile string `env:"GENOCHECK_RULES"`
	Assembly  string `env:"GENOCHECK_ASSEMBLY" envDefault:"grch38"`
	Project   string `env:"GOOGLE_CLOUD_PROJECT"`
}

// LoadConfig reads the environment, after loading a .env file from the
// working directory if there is one.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, pfx.Err(err)
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, pfx.Err(err)
	}
	return c, nil
}
