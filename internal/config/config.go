package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
	"github.com/spf13/viper"
)

// AppName names the config file and the XDG subdirectories.
const AppName = "he2plus"

// Output formats accepted by the output key.
const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

type Config struct {
	Profiles    []string `mapstructure:"profiles"`
	ProfileDirs []string `mapstructure:"profile_dirs"`
	Priority    []string `mapstructure:"priority"`
	Output      string   `mapstructure:"output"`
	Capacity    Capacity `mapstructure:"capacity"`
}

// Capacity overrides probed host values; zero means "probe it".
type Capacity struct {
	RAMTotalGB float64 `mapstructure:"ram_total_gb"`
	DiskFreeGB float64 `mapstructure:"disk_free_gb"`
	CPUCores   int     `mapstructure:"cpu_cores"`
}

// Dir is the per-user configuration directory.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultProfileDir is where user profile definitions are discovered
// when profile_dirs is not set.
func DefaultProfileDir() string {
	return filepath.Join(Dir(), "profiles")
}

func Load() (*Config, error) {
	cfg := &Config{
		ProfileDirs: []string{DefaultProfileDir()},
		Output:      OutputText,
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputYAML, OutputJSON:
	default:
		return fmt.Errorf("output %q must be one of text, yaml, json", c.Output)
	}
	if c.Capacity.RAMTotalGB < 0 || c.Capacity.DiskFreeGB < 0 || c.Capacity.CPUCores < 0 {
		return fmt.Errorf("capacity values must not be negative")
	}
	return nil
}

// ApplyCapacity replaces probed values with the configured ones that are set.
func (c *Config) ApplyCapacity(probed model.Capacity) model.Capacity {
	if c.Capacity.RAMTotalGB > 0 {
		probed.RAMTotalGB = c.Capacity.RAMTotalGB
	}
	if c.Capacity.DiskFreeGB > 0 {
		probed.DiskFreeGB = c.Capacity.DiskFreeGB
	}
	if c.Capacity.CPUCores > 0 {
		probed.CPUCores = c.Capacity.CPUCores
	}
	return probed
}

// CapacityComplete reports whether every capacity value is configured,
// in which case the host does not need probing.
func (c *Config) CapacityComplete() bool {
	return c.Capacity.RAMTotalGB > 0 && c.Capacity.DiskFreeGB > 0 && c.Capacity.CPUCores > 0
}
