// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings the game shell needs at startup
type Config struct {
	Seed         int64  `env:"ROADSTER_SEED" envDefault:"0"`                // Obstacle seed, 0 seeds from the clock
	TPS          int    `env:"ROADSTER_TPS" envDefault:"60"`                // Simulation ticks per second
	WindowWidth  int    `env:"ROADSTER_WINDOW_WIDTH" envDefault:"800"`      // Window width in pixels
	WindowHeight int    `env:"ROADSTER_WINDOW_HEIGHT" envDefault:"600"`     // Window height in pixels
	WindowTitle  string `env:"ROADSTER_WINDOW_TITLE" envDefault:"Roadster Dodge"`
	Debug        bool   `env:"ROADSTER_DEBUG" envDefault:"false"` // Draw the speed and FPS overlay
}

// Load reads Config from the environment
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.TPS <= 0 {
		return Config{}, fmt.Errorf("ROADSTER_TPS must be positive, got %d", cfg.TPS)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return Config{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
