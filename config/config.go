// Package config holds the application settings. Settings come from
// Default, are overlaid by an optional TOML file, and finally by command
// line flags in main.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Window configures the OS window.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// World configures map generation.
type World struct {
	Seed      uint64 `toml:"seed"`
	Fish      int    `toml:"fish"`
	AppleTree bool   `toml:"apple_tree"`
}

// Content configures where section text comes from.
type Content struct {
	// Path is a YAML sections file replacing the built-in content. Empty
	// uses the built-in content.
	Path string `toml:"path"`
	// Watch reloads Path when it changes on disk.
	Watch bool `toml:"watch"`
}

// Config is the full application configuration.
type Config struct {
	Window  Window  `toml:"window"`
	World   World   `toml:"world"`
	Content Content `toml:"content"`

	Debug    bool   `toml:"debug"`
	LogLevel string `toml:"log_level"`

	// LoadingDelayMS is how long the loading screen stays up.
	LoadingDelayMS int `toml:"loading_delay_ms"`
	// ScreenshotDir receives PNGs taken by test scripts.
	ScreenshotDir string `toml:"screenshot_dir"`
	// Script is a JSON test script replayed through synthetic input.
	Script string `toml:"script"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window:         Window{Title: "voxfolio", Width: 1280, Height: 720},
		World:          World{Seed: 1, Fish: 12},
		LogLevel:       "info",
		LoadingDelayMS: 2000,
		ScreenshotDir:  "screenshots",
	}
}

// Load reads the TOML file at path over the defaults. Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	slog.Debug("config loaded", "component", "config", "path", path)
	return cfg, nil
}

// Save writes cfg to path as TOML.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.World.Fish < 0 {
		errs = append(errs, fmt.Errorf("fish count %d must not be negative", c.World.Fish))
	}
	if c.LoadingDelayMS < 0 {
		errs = append(errs, fmt.Errorf("loading delay %dms must not be negative", c.LoadingDelayMS))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Content.Watch && c.Content.Path == "" {
		errs = append(errs, errors.New("content watch needs a content path"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Level returns the slog level for the configuration. Debug forces
// slog.LevelDebug.
func (c Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", name, err)
	}
	return l, nil
}
