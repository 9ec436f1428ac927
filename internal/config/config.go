// Package config loads the HCL configuration file used by the xoshiro CLI.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Engine names accepted in configuration and on the command line
const (
	EngineXoshiro256 = "xoshiro256"
	EngineSplitMix64 = "splitmix64"
)

// Config represents the complete CLI configuration
type Config struct {
	LogLevel string           `hcl:"log_level,optional"`
	Engine   string           `hcl:"engine,optional"`
	Seed     *uint64          `hcl:"seed,optional"` // nil means seed from entropy
	Sampler  *SamplerSettings `hcl:"sampler,block"`
}

// SamplerSettings configures the histogram command
type SamplerSettings struct {
	Workers int    `hcl:"workers,optional"`
	Draws   int    `hcl:"draws,optional"`
	Bound   uint64 `hcl:"bound,optional"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Engine:   EngineXoshiro256,
		Sampler: &SamplerSettings{
			Workers: 4,
			Draws:   1_000_000,
			Bound:   10,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Engine == "" {
		c.Engine = defaults.Engine
	}
	if c.Sampler == nil {
		c.Sampler = defaults.Sampler
		return
	}
	if c.Sampler.Workers == 0 {
		c.Sampler.Workers = defaults.Sampler.Workers
	}
	if c.Sampler.Draws == 0 {
		c.Sampler.Draws = defaults.Sampler.Draws
	}
	if c.Sampler.Bound == 0 {
		c.Sampler.Bound = defaults.Sampler.Bound
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	switch c.Engine {
	case EngineXoshiro256, EngineSplitMix64:
	default:
		return fmt.Errorf("invalid engine: %s (available: %s, %s)", c.Engine, EngineXoshiro256, EngineSplitMix64)
	}

	if c.Sampler == nil {
		return fmt.Errorf("sampler settings are missing")
	}
	if c.Sampler.Workers < 1 {
		return fmt.Errorf("sampler: workers must be positive")
	}
	if c.Sampler.Draws < 1 {
		return fmt.Errorf("sampler: draws must be positive")
	}
	if c.Sampler.Bound < 1 {
		return fmt.Errorf("sampler: bound must be positive")
	}

	return nil
}
