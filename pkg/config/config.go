package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YasinAHA/calculator-mcp/pkg/calculator"
	"github.com/YasinAHA/calculator-mcp/pkg/logger"
)

// OverflowEnv overrides calculator.overflow when set
const OverflowEnv = "CALC_MCP_OVERFLOW"

// DefaultServerName is the MCP server name reported to clients
const DefaultServerName = "Calculator MCP"

// Config represents the complete calculator-mcp configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Calculator CalculatorConfig `yaml:"calculator"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds MCP server settings
type ServerConfig struct {
	Name string `yaml:"name"`
}

// CalculatorConfig controls arithmetic behavior
type CalculatorConfig struct {
	Overflow string `yaml:"overflow"` // wrap | error
}

// LogConfig controls logging
type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server:     ServerConfig{Name: DefaultServerName},
		Calculator: CalculatorConfig{Overflow: string(calculator.OverflowWrap)},
		Log:        LogConfig{Level: "info"},
	}
}

// Load reads the configuration at path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Server.Name == "" {
		cfg.Server.Name = DefaultServerName
	}

	return cfg, nil
}

// ApplyEnv overrides fields from the environment
func (c *Config) ApplyEnv() {
	if v := os.Getenv(OverflowEnv); v != "" {
		c.Calculator.Overflow = v
	}
	if logger.DebugEnabled(os.Getenv(logger.DebugEnv)) {
		c.Log.Level = "debug"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return fmt.Errorf("server name is required")
	}

	if _, err := calculator.ParseOverflowPolicy(c.Calculator.Overflow); err != nil {
		return fmt.Errorf("calculator.overflow: %w", err)
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// NewCalculator returns a calculator configured with the overflow policy.
// Call Validate first; an invalid policy falls back to wrapping.
func (c *Config) NewCalculator() calculator.Calculator {
	policy, err := calculator.ParseOverflowPolicy(c.Calculator.Overflow)
	if err != nil {
		policy = calculator.OverflowWrap
	}
	return calculator.New(policy)
}
