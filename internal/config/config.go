// Package config holds the run parameters of a discovery run.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/infoclust/internal/model"
)

// ErrInvalidConfig reports a parameter outside its meaningful range.
var ErrInvalidConfig = errors.New("invalid config")

// Defaults used by the discovery driver.
const (
	DefaultMinLen             = 6
	DefaultMaxLen             = 25
	DefaultFloor              = 0.1
	DefaultMinDensityIncrease = 1.0
	DefaultMergeThreshold     = 1.0
	DefaultThreads            = 1
)

// Config represents the YAML configuration file.
type Config struct {
	Segmentation SegmentationConfig `yaml:"segmentation"`
	Registry     RegistryConfig     `yaml:"registry"`
	Workers      int                `yaml:"workers"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// SegmentationConfig contains density search and candidate filter settings.
type SegmentationConfig struct {
	MinLen             int     `yaml:"min_len"`
	MaxLen             int     `yaml:"max_len"`
	Floor              float64 `yaml:"floor"`
	MinDensityIncrease float64 `yaml:"min_density_increase"`
}

// RegistryConfig contains motif deduplication settings.
type RegistryConfig struct {
	MergeThreshold float64 `yaml:"merge_threshold"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config populated with the driver defaults.
func Default() *Config {
	return &Config{
		Segmentation: SegmentationConfig{
			MinLen:             DefaultMinLen,
			MaxLen:             DefaultMaxLen,
			Floor:              DefaultFloor,
			MinDensityIncrease: DefaultMinDensityIncrease,
		},
		Registry: RegistryConfig{
			MergeThreshold: DefaultMergeThreshold,
		},
		Workers: DefaultThreads,
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads filename on top of the defaults. Keys missing from the file keep
// their default value.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	s := c.Segmentation
	if s.MinLen < 1 {
		return fmt.Errorf("%w: min_len must be at least 1, got %d", ErrInvalidConfig, s.MinLen)
	}

	if s.MaxLen < s.MinLen {
		return fmt.Errorf("%w: max_len %d is below min_len %d", ErrInvalidConfig, s.MaxLen, s.MinLen)
	}

	if math.IsNaN(s.Floor) || math.IsInf(s.Floor, 0) {
		return fmt.Errorf("%w: floor must be finite, got %v", ErrInvalidConfig, s.Floor)
	}

	if math.IsNaN(s.MinDensityIncrease) || math.IsInf(s.MinDensityIncrease, 0) {
		return fmt.Errorf("%w: min_density_increase must be finite, got %v", ErrInvalidConfig, s.MinDensityIncrease)
	}

	if s.MinDensityIncrease < 0 {
		return fmt.Errorf("%w: min_density_increase must not be negative", ErrInvalidConfig)
	}

	if c.Registry.MergeThreshold <= 0 {
		return fmt.Errorf("%w: merge_threshold must be positive", ErrInvalidConfig)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Params converts the configuration into engine parameters.
func (c *Config) Params() m.Params {
	threads := c.Workers
	if threads <= 0 {
		threads = 1
	}

	return m.Params{
		MinLen:             c.Segmentation.MinLen,
		MaxLen:             c.Segmentation.MaxLen,
		Floor:              c.Segmentation.Floor,
		MinDensityIncrease: c.Segmentation.MinDensityIncrease,
		MergeThreshold:     c.Registry.MergeThreshold,
		Threads:            threads,
	}
}
