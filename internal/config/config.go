// Package config provides YAML-based configuration loading for the game:
// grid dimensions, display backend, audio and storage settings.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/minefield/internal/fixed"
	"github.com/vovakirdan/minefield/internal/tiles"
)

// Config contains all user-tunable settings.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Storage StorageConfig `yaml:"storage"`
}

// GridConfig defines the minefield size and placement.
type GridConfig struct {
	Width  int          `yaml:"width"`  // Cells
	Height int          `yaml:"height"` // Cells
	Origin OriginConfig `yaml:"origin"`
}

// OriginConfig is the grid's top-left corner in pixels. Fractions are allowed.
type OriginConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DisplayConfig selects and sizes the frontend.
type DisplayConfig struct {
	Backend  string `yaml:"backend"`   // "tui" or "window"
	Scale    int    `yaml:"scale"`     // Window pixel scale
	TickRate int    `yaml:"tick_rate"` // Frames per second
	Width    int    `yaml:"width"`     // Logical screen width in pixels
	Height   int    `yaml:"height"`    // Logical screen height in pixels
	Center   bool   `yaml:"center"`    // Terminal only: keep the grid centred on resize
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Music   bool    `yaml:"music"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// StorageConfig locates the session database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Display backends.
const (
	BackendTUI    = "tui"
	BackendWindow = "window"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// checkRange rejects an origin or extent that fixed-point pixels cannot hold.
func (g GridConfig) checkRange() error {
	o := g.Origin
	if !fixed.InRange(o.X) || !fixed.InRange(o.Y) {
		return fmt.Errorf("%w: origin (%g,%g) outside [%d,%d]", ErrInvalid, o.X, o.Y, fixed.MinInt, fixed.MaxInt)
	}
	limit := fixed.MaxInt / tiles.SuperTileSize
	if g.Width > limit || g.Height > limit {
		return fmt.Errorf("%w: grid %dx%d exceeds %d cells per axis", ErrInvalid, g.Width, g.Height, limit)
	}
	right := o.X + float64(g.Width*tiles.SuperTileSize)
	bottom := o.Y + float64(g.Height*tiles.SuperTileSize)
	if !fixed.InRange(right) || !fixed.InRange(bottom) {
		return fmt.Errorf("%w: grid at (%g,%g) reaches past %d pixels", ErrInvalid, o.X, o.Y, fixed.MaxInt)
	}
	return nil
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if err := c.Grid.checkRange(); err != nil {
		return err
	}
	switch c.Display.Backend {
	case BackendTUI, BackendWindow:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Display.Backend)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("%w: scale %d must be positive", ErrInvalid, c.Display.Scale)
	}
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate %d must be positive", ErrInvalid, c.Display.TickRate)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("%w: screen %dx%d must be positive", ErrInvalid, c.Display.Width, c.Display.Height)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f outside [0,1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}
