package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/olivier-w/climp-spectrum/internal/visualizer"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	SourceDemo = "demo"
	SourceNone = "none"
)

type Config struct {
	Theme      ThemeConfig      `toml:"theme"`
	Behavior   BehaviorConfig   `toml:"behavior"`
	Visualizer VisualizerConfig `toml:"visualizer"`
	Source     SourceConfig     `toml:"source"`
}

// ThemeConfig colors are hex strings; empty means adapt to the terminal.
type ThemeConfig struct {
	Text     string `toml:"text"`
	Inactive string `toml:"inactive"`
}

type BehaviorConfig struct {
	TickRateMilliseconds int `toml:"tick_rate_milliseconds"`
}

type VisualizerConfig struct {
	Platform string `toml:"platform"`
}

type SourceConfig struct {
	Kind string `toml:"kind"`
	Seed uint64 `toml:"seed"`

	// Producer cadence, independent of the redraw tick.
	IntervalMilliseconds int `toml:"interval_milliseconds"`
}

func Default() *Config {
	return &Config{
		Behavior: BehaviorConfig{
			TickRateMilliseconds: 16,
		},
		Source: SourceConfig{
			Kind:                 SourceDemo,
			IntervalMilliseconds: 20,
		},
	}
}

func Load() (*Config, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		configDir = filepath.Join(home, ".config")
	}
	return LoadFrom(filepath.Join(configDir, "climp-spectrum", "config.toml"))
}

func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from CLIMP_SPECTRUM_* variables. Unparseable
// values are ignored and left for Validate to judge the file value.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CLIMP_SPECTRUM_TICK_RATE"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.Behavior.TickRateMilliseconds = ms
		}
	}
	if v := os.Getenv("CLIMP_SPECTRUM_PLATFORM"); v != "" {
		c.Visualizer.Platform = v
	}
	if v := os.Getenv("CLIMP_SPECTRUM_SOURCE"); v != "" {
		c.Source.Kind = v
	}
}

func (c *Config) Validate() error {
	if c.Behavior.TickRateMilliseconds <= 0 {
		return fmt.Errorf("%w: tick_rate_milliseconds must be positive, got %d", ErrInvalid, c.Behavior.TickRateMilliseconds)
	}
	if c.Source.IntervalMilliseconds <= 0 {
		return fmt.Errorf("%w: source interval_milliseconds must be positive, got %d", ErrInvalid, c.Source.IntervalMilliseconds)
	}
	if _, err := visualizer.ParsePlatform(c.Visualizer.Platform); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch c.Source.Kind {
	case SourceDemo, SourceNone:
	default:
		return fmt.Errorf("%w: unknown source kind %q (want %s or %s)", ErrInvalid, c.Source.Kind, SourceDemo, SourceNone)
	}
	return nil
}

func (c *Config) TickRate() time.Duration {
	return time.Duration(c.Behavior.TickRateMilliseconds) * time.Millisecond
}

func (c *Config) SourceInterval() time.Duration {
	return time.Duration(c.Source.IntervalMilliseconds) * time.Millisecond
}

// RenderOptions resolves the renderer's read-only settings. The platform is
// resolved here once, not per frame.
func (c *Config) RenderOptions() (visualizer.Options, error) {
	p, err := visualizer.ParsePlatform(c.Visualizer.Platform)
	if err != nil {
		return visualizer.Options{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return visualizer.Options{
		Theme:    visualizer.ThemeFrom(c.Theme.Text, c.Theme.Inactive),
		TickRate: c.TickRate(),
		Platform: p,
	}, nil
}
