package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the process-level knobs read from the environment.
type Settings struct {
	DataDir string `env:"POLYMD_DATA"     envDefault:".polymd"`
	Workers int    `env:"POLYMD_WORKERS"  envDefault:"0"`
	LogJSON bool   `env:"POLYMD_LOG_JSON" envDefault:"false"`
	LogFile string `env:"POLYMD_LOG_FILE"`
}

func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
