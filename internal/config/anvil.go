package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// DefaultUnsafePermission is the permission node that lets a player take a
// result carrying conflicting enchantments.
const DefaultUnsafePermission = "unsafeenchants.unsafe"

// Anvil holds all configuration for the anvil combiner.
type Anvil struct {
	// Repair cost
	LimitRepairCost   bool `yaml:"limit_repair_cost"`
	LimitRepairValue  int  `yaml:"limit_repair_value" validate:"gte=0"`
	RemoveRepairLimit bool `yaml:"remove_repair_limit"`

	// Permissions: node -> player names holding it.
	UnsafePermission string              `yaml:"unsafe_permission" validate:"required"`
	Permissions      map[string][]string `yaml:"permissions"`

	// Host tick for the deferred repair-cost write.
	TaskInterval time.Duration `yaml:"task_interval" validate:"gte=0"`

	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	Database DatabaseConfig `yaml:"database"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// DefaultAnvil returns Anvil config with sensible defaults.
func DefaultAnvil() Anvil {
	return Anvil{
		LimitRepairCost:   false,
		LimitRepairValue:  39,
		RemoveRepairLimit: false,
		UnsafePermission:  DefaultUnsafePermission,
		TaskInterval:      50 * time.Millisecond,
		LogLevel:          "info",
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "anvil",
			Password: "anvil",
			DBName:   "anvil",
			SSLMode:  "disable",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9108",
		},
	}
}

// LoadAnvil loads anvil config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadAnvil(path string) (Anvil, error) {
	cfg := DefaultAnvil()
	if err := load(path, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Anvil) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level (info for unknown values).
func (c Anvil) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
