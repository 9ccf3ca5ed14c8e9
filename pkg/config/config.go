// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// Renderer names
const (
	RendererTerminal = "terminal"
	RendererEngo     = "engo"
	RendererNull     = "null"
)

// Environment variables overriding the file configuration
const (
	EnvSeed     = "ASTEROIDS_SEED"
	EnvTickRate = "ASTEROIDS_TICK_RATE"
	EnvRenderer = "ASTEROIDS_RENDERER"
	EnvLogLevel = logging.LevelEnvVar
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config contains configuration for an asteroids session
type Config struct {
	Seed     uint64         `json:"seed"` // 0 picks a seed from the clock
	TickRate int            `json:"tickRate"`
	Renderer string         `json:"renderer"`
	LogLevel string         `json:"logLevel"`
	MaxTicks uint64         `json:"maxTicks"` // 0 runs until game over
	Window   WindowConfig   `json:"window"`
	Terminal TerminalConfig `json:"terminal"`
}

// WindowConfig contains the graphical client window settings
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
}

// TerminalConfig contains the size of the terminal playfield, in cells
type TerminalConfig struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

// LoadConfig loads a configuration from a file. Fields missing from the
// file keep their default value.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Seed:     0,
		TickRate: 30,
		Renderer: RendererTerminal,
		LogLevel: "INFO",
		MaxTicks: 0,
		Window: WindowConfig{
			Width:      800,
			Height:     800,
			Fullscreen: false,
		},
		Terminal: TerminalConfig{
			Columns: 80,
			Rows:    40,
		},
	}
}

// ApplyEnvOverrides replaces configuration values with those set in the
// environment. Unset variables leave the configuration untouched.
func (c *Config) ApplyEnvOverrides() error {
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvTickRate); ok {
		rate, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvTickRate, err)
		}
		c.TickRate = rate
	}
	if v, ok := os.LookupEnv(EnvRenderer); ok {
		c.Renderer = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = strings.TrimSpace(v)
	}
	return nil
}

// Validate checks that the configuration can drive a session
func (c *Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("%w: tick rate %d outside [1, 240]", ErrInvalidConfig, c.TickRate)
	}
	switch c.Renderer {
	case RendererTerminal, RendererEngo, RendererNull:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Terminal.Columns < 10 || c.Terminal.Rows < 5 {
		return fmt.Errorf("%w: terminal size %dx%d below 10x5", ErrInvalidConfig, c.Terminal.Columns, c.Terminal.Rows)
	}
	return nil
}

// TickSeconds returns the duration of a simulation tick in seconds
func (c *Config) TickSeconds() float64 {
	return 1 / float64(c.TickRate)
}
