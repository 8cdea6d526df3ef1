//go:build !tinygo

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"wirecube/hal"
)

// Config holds display and runner settings shared by the binaries.
type Config struct {
	// Display
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"` // "mono" or "rgb565"
	Scale  int    `json:"scale"`

	// Runner
	Headless    bool   `json:"headless"`
	Hz          int    `json:"hz"`
	Ticks       uint64 `json:"ticks"`
	FixedStep   bool   `json:"fixed_step"`
	LogFPSEvery uint64 `json:"log_fps_every"`
}

// Flags carries CLI overrides. Zero values mean "not set".
type Flags struct {
	Width       int
	Height      int
	Format      string
	Scale       int
	Headless    bool
	Hz          int
	Ticks       uint64
	FixedStep   bool
	LogFPSEvery uint64
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies CLI flags over the file values and fills defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Headless {
		c.Headless = true
	}
	if flags.Hz > 0 {
		c.Hz = flags.Hz
	}
	if flags.Ticks > 0 {
		c.Ticks = flags.Ticks
	}
	if flags.FixedStep {
		c.FixedStep = true
	}
	if flags.LogFPSEvery > 0 {
		c.LogFPSEvery = flags.LogFPSEvery
	}

	if c.Width <= 0 {
		c.Width = 400
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.Format == "" {
		c.Format = "mono"
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.Hz <= 0 {
		c.Hz = 60
	}
}

// PixelFormat maps the Format field to a hal pixel format.
func (c Config) PixelFormat() (hal.PixelFormat, error) {
	switch strings.ToLower(c.Format) {
	case "", "mono", "mono1":
		return hal.PixelFormatMono1, nil
	case "rgb565":
		return hal.PixelFormatRGB565, nil
	default:
		return 0, fmt.Errorf("config: unknown pixel format %q", c.Format)
	}
}

// Host returns the host HAL settings.
func (c Config) Host() (hal.HostConfig, error) {
	format, err := c.PixelFormat()
	if err != nil {
		return hal.HostConfig{}, err
	}
	return hal.HostConfig{
		Width:  c.Width,
		Height: c.Height,
		Format: format,
		Scale:  c.Scale,
	}, nil
}

// HeadlessRunner returns the headless runner settings.
func (c Config) HeadlessRunner() hal.HeadlessConfig {
	return hal.HeadlessConfig{
		Enabled:   c.Headless,
		Hz:        c.Hz,
		Ticks:     c.Ticks,
		FixedStep: c.FixedStep,
	}
}
