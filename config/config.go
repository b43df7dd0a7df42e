// Package config loads the run configuration of the syracuse command from a
// YAML file, with environment overrides and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/katalvlaran/syracuse/relations"
	"github.com/katalvlaran/syracuse/sequence"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds one run of the engine: which relation, which seed, which
// target, and how to batch.
type Config struct {
	// Relation is a registry name ("collatz", "fibonacci", …) or an inline
	// "linear:c0,c1,…" expression.
	Relation string  `yaml:"relation"`
	Terms    []int64 `yaml:"terms"`
	Target   int64   `yaml:"target"`

	// Evaluation
	Mode     string `yaml:"mode"`      // rolling, recursive
	MaxSteps int    `yaml:"max_steps"` // 0 = unbounded
	Timeout  string `yaml:"timeout"`   // Go duration, "" = none

	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// BatchConfig configures LoadNUntil.
type BatchConfig struct {
	Size    int   `yaml:"size"`    // 0..255
	Step    int64 `yaml:"step"`    // 0 = default step
	Workers int   `yaml:"workers"` // 0 = one goroutine per vector
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the Collatz-from-6 run.
func DefaultConfig() *Config {
	return &Config{
		Relation: "collatz",
		Terms:    []int64{6},
		Target:   1,
		Mode:     sequence.Rolling.String(),
		Batch: BatchConfig{
			Size: 1,
			Step: sequence.DefaultStep,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a YAML config on top of DefaultConfig. A missing file yields
// the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies SYRACUSE_* environment variables.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SYRACUSE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SYRACUSE_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("SYRACUSE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Batch.Workers = n
		}
	}
}

// GetTimeout returns the run timeout, 0 when unset or unparsable.
func (c *Config) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks ranges and names. It does not require Terms: a run may
// supply them on the command line.
func (c *Config) Validate() error {
	if _, err := relations.Parse(c.Relation); err != nil {
		return fmt.Errorf("%w: relation: %w", ErrInvalid, err)
	}
	if _, err := sequence.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: mode: %w", ErrInvalid, err)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps must be >= 0", ErrInvalid)
	}
	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err != nil || d < 0 {
			return fmt.Errorf("%w: timeout %q is not a non-negative duration", ErrInvalid, c.Timeout)
		}
	}
	if c.Batch.Size < 0 || c.Batch.Size > 255 {
		return fmt.Errorf("%w: batch.size must be in [0, 255]", ErrInvalid)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must be >= 0", ErrInvalid)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q (valid: json, console)", ErrInvalid, c.Logging.Format)
	}

	return nil
}
