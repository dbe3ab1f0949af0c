// Package config loads PenSheet settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"PenSheet/internal/render"
)

// MaxFPS bounds sheet.fps so the frame interval stays well above zero.
const MaxFPS = 1000

type Sheet struct {
	Mode string `toml:"mode"`
	FPS  int    `toml:"fps"`
}

// Pen controls how desktop mouse input is treated.
type Pen struct {
	MouseAsStylus bool    `toml:"mouse_as_stylus"`
	MouseForce    float64 `toml:"mouse_force"`
}

// Bridge configures the remote stylus endpoint.
type Bridge struct {
	Enabled   bool `toml:"enabled"`
	Port      int  `toml:"port"`
	Advertise bool `toml:"advertise"`
}

type Config struct {
	Sheet  Sheet  `toml:"sheet"`
	Pen    Pen    `toml:"pen"`
	Bridge Bridge `toml:"bridge"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Sheet: Sheet{Mode: render.ModeLine.String(), FPS: 60},
		Pen:   Pen{MouseAsStylus: true, MouseForce: 0.5},
		Bridge: Bridge{
			Port:      8888,
			Advertise: true,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}
	return cfg, cfg.Validate()
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if _, err := render.ParseMode(c.Sheet.Mode); err != nil {
		return fmt.Errorf("sheet.mode: %w", err)
	}
	if c.Sheet.FPS <= 0 || c.Sheet.FPS > MaxFPS {
		return fmt.Errorf("sheet.fps: must be in 1..%d, got %d", MaxFPS, c.Sheet.FPS)
	}
	if c.Pen.MouseForce < 0 || c.Pen.MouseForce > 1 {
		return fmt.Errorf("pen.mouse_force: must be in [0,1], got %g", c.Pen.MouseForce)
	}
	if c.Bridge.Port < 1 || c.Bridge.Port > 65535 {
		return fmt.Errorf("bridge.port: out of range: %d", c.Bridge.Port)
	}
	return nil
}
