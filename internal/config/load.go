package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SWIPEMATH_GAME_SEED.
const EnvPrefix = "SWIPEMATH"

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.max_game_time", 60.0)
	v.SetDefault("game.initial_focus", 100.0)
	v.SetDefault("game.start_level", 1)
	v.SetDefault("game.tick_interval", "100ms")
	v.SetDefault("game.seed", 0)

	v.SetDefault("source.use_llm", true)
	v.SetDefault("source.remote_timeout", "8s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads configuration in increasing priority: defaults, the TOML file
// at path, then environment variables. An empty path uses
// DefaultConfigPath and tolerates the file being absent; an explicit path
// must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil || explicit {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if explicit || !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
