package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if config.TickRate != 30 {
		t.Errorf("Expected TickRate 30, got %d", config.TickRate)
	}
	if config.Renderer != RendererTerminal {
		t.Errorf("Expected Renderer %q, got %q", RendererTerminal, config.Renderer)
	}
	if config.Window.Width != 800 || config.Window.Height != 800 {
		t.Errorf("Expected an 800x800 window, got %dx%d", config.Window.Width, config.Window.Height)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig does not validate: %v", err)
	}
}

func TestLoadConfig_Success(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.json")

	content := `{"seed": 42, "tickRate": 60, "renderer": "null", "window": {"width": 1024, "height": 768}}`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Seed != 42 {
		t.Errorf("Expected Seed 42, got %d", config.Seed)
	}
	if config.TickRate != 60 {
		t.Errorf("Expected TickRate 60, got %d", config.TickRate)
	}
	if config.Renderer != RendererNull {
		t.Errorf("Expected Renderer %q, got %q", RendererNull, config.Renderer)
	}
	if config.Window.Width != 1024 || config.Window.Height != 768 {
		t.Errorf("Expected a 1024x768 window, got %dx%d", config.Window.Width, config.Window.Height)
	}
	// fields missing from the file keep their defaults
	if config.Terminal.Columns != 80 || config.LogLevel != "INFO" {
		t.Errorf("Expected defaults for missing fields, got %+v", config)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	config, err := LoadConfig("/path/that/does/not/exist/config.json")

	if err == nil {
		t.Fatal("Expected error when loading non-existent file, got nil")
	}
	if config != nil {
		t.Error("Expected nil config when file not found, got non-nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Unexpected error message %q", err.Error())
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid_config.json")

	if err := os.WriteFile(configPath, []byte(`{"tickRate": 30, invalid json}`), 0o644); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	config, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error when loading invalid JSON, got nil")
	}
	if config != nil {
		t.Error("Expected nil config for invalid JSON")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Unexpected error message %q", err.Error())
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "save_test_config.json")

	original := DefaultConfig()
	original.Seed = 7
	original.MaxTicks = 500
	original.Window.Fullscreen = true

	if err := SaveConfig(original, configPath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *loaded != *original {
		t.Errorf("Loaded config %+v differs from saved %+v", loaded, original)
	}
}

func TestSaveConfig_InvalidPath(t *testing.T) {
	err := SaveConfig(DefaultConfig(), "/path/that/does/not/exist/config.json")
	if err == nil {
		t.Error("Expected error when saving to an invalid path, got nil")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, c *Config)
		wantErr bool
	}{
		{
			name: "no overrides",
			env:  map[string]string{},
			check: func(t *testing.T, c *Config) {
				if *c != *DefaultConfig() {
					t.Errorf("config changed without overrides: %+v", c)
				}
			},
		},
		{
			name: "all overrides",
			env: map[string]string{
				EnvSeed:     "1234",
				EnvTickRate: " 60 ",
				EnvRenderer: "ENGO",
				EnvLogLevel: "debug",
			},
			check: func(t *testing.T, c *Config) {
				if c.Seed != 1234 || c.TickRate != 60 || c.Renderer != RendererEngo || c.LogLevel != "debug" {
					t.Errorf("overrides not applied: %+v", c)
				}
			},
		},
		{
			name:    "bad seed",
			env:     map[string]string{EnvSeed: "-1"},
			wantErr: true,
		},
		{
			name:    "bad tick rate",
			env:     map[string]string{EnvTickRate: "fast"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvSeed, EnvTickRate, EnvRenderer, EnvLogLevel} {
				value, set := tt.env[key]
				if set {
					t.Setenv(key, value)
				} else {
					// t.Setenv restores the previous value when the test ends
					t.Setenv(key, "")
					os.Unsetenv(key)
				}
			}

			c := DefaultConfig()
			err := c.ApplyEnvOverrides()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvOverrides() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"engo renderer", func(c *Config) { c.Renderer = RendererEngo }, true},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, false},
		{"huge tick rate", func(c *Config) { c.TickRate = 1000 }, false},
		{"unknown renderer", func(c *Config) { c.Renderer = "opengl" }, false},
		{"unknown log level", func(c *Config) { c.LogLevel = "chatty" }, false},
		{"empty window", func(c *Config) { c.Window.Width = 0 }, false},
		{"tiny terminal", func(c *Config) { c.Terminal.Rows = 2 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want %v", err, ErrInvalidConfig)
			}
		})
	}
}

func TestTickSeconds(t *testing.T) {
	c := DefaultConfig()
	c.TickRate = 50
	if got := c.TickSeconds(); got != 0.02 {
		t.Errorf("TickSeconds() = %v, want 0.02", got)
	}
}
