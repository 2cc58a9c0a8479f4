// Package config loads process settings for the Colossus binaries.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/peterkuimelis/colossus/internal/game"
)

// Prefix is prepended to every environment variable name.
const Prefix = "COLOSSUS_"

// Config holds the settings shared by the cmd binaries. Flags override it.
type Config struct {
	Rules     game.Rules
	DecksFile string `env:"DECKS" envDefault:"decks.yaml"`
	Port      string `env:"PORT" envDefault:"9000"`
	HTTPPort  int    `env:"HTTP_PORT" envDefault:"8080"`
	DBPath    string `env:"DB" envDefault:"colossus.db"`
	ArtDir    string `env:"ART_DIR" envDefault:"./card_art"`
	MaxTurns  int    `env:"MAX_TURNS" envDefault:"200"`
	Seed      int64  `env:"SEED" envDefault:"0"`
}

// Load reads the environment and validates the rules.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Rules.Validate(); err != nil {
		return Config{}, fmt.Errorf("rules: %w", err)
	}
	if cfg.MaxTurns <= 0 {
		return Config{}, fmt.Errorf("max turns must be positive, got %d", cfg.MaxTurns)
	}
	return cfg, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
