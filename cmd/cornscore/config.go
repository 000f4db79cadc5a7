package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cornscore/internal/score"

	"github.com/spf13/viper"
)

// config holds the settings that are not part of the board itself.
type config struct {
	DBPath       string `mapstructure:"db-path"`
	LogFile      string `mapstructure:"log-file"`
	Animate      bool   `mapstructure:"animate"`
	Mouse        bool   `mapstructure:"mouse"`
	WinningScore int    `mapstructure:"winning-score"`
}

func loadConfig(configPath string) (config, error) {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "cornscore")

	v := viper.New()
	v.SetEnvPrefix("CORNSCORE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("db-path", filepath.Join(dir, "settings.db"))
	v.SetDefault("log-file", "")
	v.SetDefault("animate", true)
	v.SetDefault("mouse", true)
	v.SetDefault("winning-score", score.WinningScore)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(dir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if cfg.WinningScore <= 0 {
		return cfg, fmt.Errorf("winning-score must be positive, got %d", cfg.WinningScore)
	}
	return cfg, nil
}
