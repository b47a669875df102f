package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/rmarchant/ledger_in_go/pow"
)

// This is the global app config for the ledger.
type AppConfig struct {
	// How many trailing decimal zeros a proof digest needs.
	DIFFICULTY int `yaml:"difficulty"`
}

// DefaultAppConfig returns the config used when no file is given.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DIFFICULTY: pow.DefaultDifficulty,
	}
}

// ParseAppConfig loads an AppConfig from a yaml file. Fields missing
// from the file keep their defaults.
func ParseAppConfig(path string) (AppConfig, error) {
	c := DefaultAppConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, errors.Wrap(err, "unmarshal config file")
	}
	if c.DIFFICULTY < 0 {
		return c, errors.Errorf("difficulty must be non-negative, got %d", c.DIFFICULTY)
	}
	return c, nil
}
