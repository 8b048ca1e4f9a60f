package config

// Configuration loading and validation for lsaddr

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tonylturner/lsaddr/internal/errors"
	"github.com/tonylturner/lsaddr/internal/logging"
	"github.com/tonylturner/lsaddr/internal/xgt"
)

// Output styles
const (
	StyleAuto   = "auto"   // styled when stdout is a terminal
	StylePlain  = "plain"  // never styled
	StyleStyled = "styled" // always styled
)

// ModelConfig describes a controller model and the size of its M area.
type ModelConfig struct {
	Name           string `yaml:"name"`
	MemorySizeBits int64  `yaml:"memory_size_bits"`
	Description    string `yaml:"description,omitempty"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Style string `yaml:"style"` // "auto", "plain" or "styled"
}

// Config represents the lsaddr configuration
type Config struct {
	DefaultModel   string            `yaml:"default_model"`
	MemorySizeBits int64             `yaml:"memory_size_bits,omitempty"` // overrides the model size when set
	Models         []ModelConfig     `yaml:"models,omitempty"`
	Aliases        map[string]string `yaml:"aliases,omitempty"` // symbolic name -> address
	LogLevel       string            `yaml:"log_level"`
	LogFormat      string            `yaml:"log_format,omitempty"` // "text" or "json"
	Output         OutputConfig      `yaml:"output"`
}

// CreateDefaultConfig returns the built-in configuration.
func CreateDefaultConfig() *Config {
	return &Config{
		DefaultModel: xgt.DefaultModel,
		LogLevel:     "info",
		LogFormat:    "text",
		Output:       OutputConfig{Style: StyleAuto},
		Aliases: map[string]string{
			"run_lamp":   "%MX0",
			"recipe_ptr": "%MW10",
		},
	}
}

// WriteDefaultConfig writes the default configuration to path.
func WriteDefaultConfig(path string) error {
	data, err := yaml.Marshal(CreateDefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

// LoadConfig reads, defaults and validates the config at path. A missing file
// yields the default config unless required is set.
func LoadConfig(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return CreateDefaultConfig(), nil
		}
		if os.IsNotExist(err) {
			return nil, errors.WrapConfigError(
				fmt.Errorf("config file not found: %s", path),
				path,
			)
		}
		return nil, errors.WrapConfigError(
			fmt.Errorf("read config file: %w", err),
			path,
		)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("parse YAML: %w", err), path)
	}

	applyDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("validate config: %w", err), path)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = xgt.DefaultModel
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.Output.Style == "" {
		cfg.Output.Style = StyleAuto
	}
}

// ValidateConfig checks a configuration for consistency.
func ValidateConfig(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Models))
	for i, m := range cfg.Models {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("models[%d]: name is required", i)
		}
		if m.MemorySizeBits <= 0 {
			return fmt.Errorf("models[%d] (%s): memory_size_bits must be positive", i, m.Name)
		}
		if m.MemorySizeBits > xgt.MaxMemorySize {
			return fmt.Errorf("models[%d] (%s): memory_size_bits exceeds %d", i, m.Name, xgt.MaxMemorySize)
		}
		key := strings.ToUpper(m.Name)
		if seen[key] {
			return fmt.Errorf("models[%d]: duplicate model %q", i, m.Name)
		}
		seen[key] = true
	}

	if _, err := xgt.LookupModel(cfg.DefaultModel, cfg.AllModels()); err != nil {
		return fmt.Errorf("default_model: %w", err)
	}
	if cfg.MemorySizeBits < 0 {
		return fmt.Errorf("memory_size_bits must not be negative")
	}
	if cfg.MemorySizeBits > xgt.MaxMemorySize {
		return fmt.Errorf("memory_size_bits exceeds %d", xgt.MaxMemorySize)
	}

	for name, addr := range cfg.Aliases {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("aliases: empty alias name")
		}
		if _, err := xgt.Validate(addr); err != nil {
			return fmt.Errorf("aliases[%s]: %w", name, err)
		}
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if cfg.LogFormat != "" && cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("log_format must be 'text' or 'json', got '%s'", cfg.LogFormat)
	}

	switch cfg.Output.Style {
	case "", StyleAuto, StylePlain, StyleStyled:
	default:
		return fmt.Errorf("output.style must be 'auto', 'plain' or 'styled', got '%s'", cfg.Output.Style)
	}

	return nil
}

// AllModels returns the built-in models overlaid with the configured ones.
func (cfg *Config) AllModels() []xgt.Model {
	extra := make([]xgt.Model, 0, len(cfg.Models))
	for _, m := range cfg.Models {
		extra = append(extra, xgt.Model{Name: m.Name, MemorySizeBits: m.MemorySizeBits, Description: m.Description})
	}
	return xgt.MergeModels(extra)
}

// ResolveModel returns the named model, or the default model when name is empty.
func (cfg *Config) ResolveModel(name string) (xgt.Model, error) {
	if name == "" {
		name = cfg.DefaultModel
	}
	return xgt.LookupModel(name, cfg.AllModels())
}

// ResolveMemorySize picks the memory size for a run. An explicit size wins,
// then the config override, then the selected model.
func (cfg *Config) ResolveMemorySize(model string, explicitBits int64) (int64, xgt.Model, error) {
	m, err := cfg.ResolveModel(model)
	if err != nil {
		return 0, xgt.Model{}, err
	}
	switch {
	case explicitBits > xgt.MaxMemorySize:
		return 0, m, fmt.Errorf("memory size %d exceeds the maximum of %d bits", explicitBits, xgt.MaxMemorySize)
	case explicitBits < 0:
		return 0, m, fmt.Errorf("memory size must be positive, got %d", explicitBits)
	case explicitBits > 0:
		return explicitBits, m, nil
	case cfg.MemorySizeBits > 0 && model == "":
		return cfg.MemorySizeBits, m, nil
	default:
		return m.MemorySizeBits, m, nil
	}
}

// ResolveAlias returns the address for a configured alias, or input unchanged.
func (cfg *Config) ResolveAlias(input string) string {
	if addr, ok := cfg.Aliases[input]; ok {
		return addr
	}
	return input
}
