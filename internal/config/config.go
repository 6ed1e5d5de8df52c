// Package config loads SwipeMath settings from an optional TOML file and
// SWIPEMATH_* environment variables.
package config

import (
	"time"

	"github.com/abhisek/swipemath/internal/game"
)

// Config holds all application configuration.
type Config struct {
	Game   GameConfig   `mapstructure:"game" validate:"required"`
	Source SourceConfig `mapstructure:"source" validate:"required"`
	Log    LogConfig    `mapstructure:"log" validate:"required"`
}

// GameConfig tunes the game loop.
type GameConfig struct {
	MaxGameTime  float64       `mapstructure:"max_game_time" validate:"gt=0"`
	InitialFocus float64       `mapstructure:"initial_focus" validate:"gte=0,lte=100"`
	StartLevel   int           `mapstructure:"start_level" validate:"gte=1,lte=10"`
	TickInterval time.Duration `mapstructure:"tick_interval" validate:"gt=0"`
	// Seed drives the local question generator. Zero picks a seed from the clock.
	Seed uint64 `mapstructure:"seed"`
}

// Settings converts the config to game settings.
func (g GameConfig) Settings() game.Settings {
	return game.Settings{
		MaxGameTime:  g.MaxGameTime,
		InitialFocus: g.InitialFocus,
		StartLevel:   g.StartLevel,
	}
}

// SourceConfig selects where questions come from.
type SourceConfig struct {
	// UseLLM enables the remote source when a provider is configured.
	UseLLM        bool          `mapstructure:"use_llm"`
	RemoteTimeout time.Duration `mapstructure:"remote_timeout" validate:"gt=0"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	// File is the log destination. Empty means the XDG state dir; "stderr"
	// writes to standard error.
	File string `mapstructure:"file"`
}
