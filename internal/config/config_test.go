package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tonylturner/lsaddr/internal/xgt"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "default config",
			config:  CreateDefaultConfig(),
			wantErr: false,
		},
		{
			name: "custom model as default",
			config: &Config{
				DefaultModel: "lab-rig",
				Models:       []ModelConfig{{Name: "LAB-RIG", MemorySizeBits: 4096}},
				LogLevel:     "debug",
			},
			wantErr: false,
		},
		{
			name:    "unknown default model",
			config:  &Config{DefaultModel: "XGZ-9000"},
			wantErr: true,
		},
		{
			name: "model without name",
			config: &Config{
				DefaultModel: xgt.DefaultModel,
				Models:       []ModelConfig{{MemorySizeBits: 16}},
			},
			wantErr: true,
		},
		{
			name: "model with zero size",
			config: &Config{
				DefaultModel: xgt.DefaultModel,
				Models:       []ModelConfig{{Name: "EMPTY"}},
			},
			wantErr: true,
		},
		{
			name: "duplicate model",
			config: &Config{
				DefaultModel: xgt.DefaultModel,
				Models: []ModelConfig{
					{Name: "A", MemorySizeBits: 16},
					{Name: "a", MemorySizeBits: 32},
				},
			},
			wantErr: true,
		},
		{
			name: "invalid alias address",
			config: &Config{
				DefaultModel: xgt.DefaultModel,
				Aliases:      map[string]string{"bad": "MXW10"},
			},
			wantErr: true,
		},
		{
			name:    "invalid log level",
			config:  &Config{DefaultModel: xgt.DefaultModel, LogLevel: "loud"},
			wantErr: true,
		},
		{
			name:    "invalid log format",
			config:  &Config{DefaultModel: xgt.DefaultModel, LogFormat: "xml"},
			wantErr: true,
		},
		{
			name:    "invalid output style",
			config:  &Config{DefaultModel: xgt.DefaultModel, Output: OutputConfig{Style: "fancy"}},
			wantErr: true,
		},
		{
			name:    "negative memory size",
			config:  &Config{DefaultModel: xgt.DefaultModel, MemorySizeBits: -1},
			wantErr: true,
		},
		{
			name:    "memory size above maximum",
			config:  &Config{DefaultModel: xgt.DefaultModel, MemorySizeBits: xgt.MaxMemorySize + 1},
			wantErr: true,
		},
		{
			name: "model size above maximum",
			config: &Config{
				DefaultModel: xgt.DefaultModel,
				Models:       []ModelConfig{{Name: "HUGE", MemorySizeBits: 16777216}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	yamlContent := `
default_model: LAB
models:
  - name: LAB
    memory_size_bits: 1024
    description: bench controller
aliases:
  pump_run: mx100
log_level: verbose
output:
  style: plain
`
	path := filepath.Join(t.TempDir(), "lsaddr.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat default = %q, want text", cfg.LogFormat)
	}
	if cfg.Output.Style != StylePlain {
		t.Errorf("Output.Style = %q, want plain", cfg.Output.Style)
	}

	size, model, err := cfg.ResolveMemorySize("", 0)
	if err != nil {
		t.Fatalf("ResolveMemorySize error: %v", err)
	}
	if size != 1024 || model.Name != "LAB" {
		t.Errorf("ResolveMemorySize = %d, %s; want 1024, LAB", size, model.Name)
	}
	if got := cfg.ResolveAlias("pump_run"); got != "mx100" {
		t.Errorf("ResolveAlias(pump_run) = %q", got)
	}
	if got := cfg.ResolveAlias("MW5"); got != "MW5" {
		t.Errorf("ResolveAlias(MW5) = %q, want unchanged", got)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := LoadConfig(path, false)
	if err != nil {
		t.Fatalf("LoadConfig(optional) error = %v", err)
	}
	if cfg.DefaultModel != xgt.DefaultModel {
		t.Errorf("DefaultModel = %q, want %q", cfg.DefaultModel, xgt.DefaultModel)
	}

	_, err = LoadConfig(path, true)
	if err == nil {
		t.Fatal("LoadConfig(required) expected error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error should mention not found, got %v", err)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"bad_yaml.yaml":  "default_model: [",
		"bad_model.yaml": "default_model: NOPE\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			_, err := LoadConfig(path, true)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error should name the config path, got %v", err)
			}
		})
	}
}

func TestWriteDefaultConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lsaddr.yaml")
	if err := WriteDefaultConfig(path); err != nil {
		t.Fatalf("WriteDefaultConfig error: %v", err)
	}
	cfg, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.DefaultModel != xgt.DefaultModel {
		t.Errorf("DefaultModel = %q", cfg.DefaultModel)
	}
	if cfg.Aliases["run_lamp"] != "%MX0" {
		t.Errorf("run_lamp alias = %q", cfg.Aliases["run_lamp"])
	}
}

func TestResolveMemorySize(t *testing.T) {
	cfg := CreateDefaultConfig()
	cfg.MemorySizeBits = 2048

	tests := []struct {
		name     string
		model    string
		explicit int64
		want     int64
		wantErr  bool
	}{
		{"config override", "", 0, 2048, false},
		{"explicit wins", "", 512, 512, false},
		{"named model ignores config override", "XGK-CPUU", 0, 32768, false},
		{"unknown model", "XGZ", 0, 0, true},
		{"negative explicit", "", -4, 0, true},
		{"explicit at maximum", "", xgt.MaxMemorySize, xgt.MaxMemorySize, false},
		{"explicit above maximum", "", 16777216, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := cfg.ResolveMemorySize(tt.model, tt.explicit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("size = %d, want %d", got, tt.want)
			}
		})
	}
}
