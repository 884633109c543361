package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Query operations understood by the tickwindow command.
const (
	OpTick = "tick"
	OpNext = "next"
	OpPrev = "prev"
)

// Query is a single lookup or search to run against the window.
type Query struct {
	Op    string `yaml:"op"`
	Index int32  `yaml:"index"`
}

// Config is the tickwindow command configuration.
type Config struct {
	// TickArraysFile is a JSON file with one pool's tick arrays.
	TickArraysFile string `yaml:"tickArraysFile"`
	TickSpacing    uint16 `yaml:"tickSpacing"`
	CurrentTick    int32  `yaml:"currentTick"`
	AToB           bool   `yaml:"aToB"`
	LogLevel       string `yaml:"logLevel"`

	Queries []Query `yaml:"queries"`
}

// LoadConfig reads and validates the YAML configuration at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{LogLevel: "info"}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TickArraysFile == "" {
		return errors.New("config: tickArraysFile is required")
	}
	if c.TickSpacing == 0 {
		return errors.New("config: tickSpacing must be greater than 0")
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("config: invalid logLevel %q: %w", c.LogLevel, err)
	}
	for i, q := range c.Queries {
		switch q.Op {
		case OpTick, OpNext, OpPrev:
		default:
			return fmt.Errorf("config: query %d has unknown op %q", i, q.Op)
		}
	}
	return nil
}

// Level returns LogLevel as a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}
