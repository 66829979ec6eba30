package config

import "fmt"

// SizePreset is a named grid size.
type SizePreset string

const (
	SizeSmall   SizePreset = "small"
	SizeClassic SizePreset = "classic"
	SizeLarge   SizePreset = "large"
)

// Presets lists the named sizes in menu order.
var Presets = []SizePreset{SizeSmall, SizeClassic, SizeLarge}

// Dimensions returns the grid width and height in cells for a preset.
// Classic fills the 240x160 screen with a one-cell border.
func (p SizePreset) Dimensions() (w, h int, ok bool) {
	switch p {
	case SizeSmall:
		return 8, 6, true
	case SizeClassic:
		return 13, 8, true
	case SizeLarge:
		return 20, 12, true
	default:
		return 0, 0, false
	}
}

// ApplyPreset overrides the grid size with a named preset.
func ApplyPreset(cfg *Config, p SizePreset) error {
	w, h, ok := p.Dimensions()
	if !ok {
		return fmt.Errorf("%w: unknown size %q", ErrInvalid, p)
	}
	cfg.Grid.Width = w
	cfg.Grid.Height = h
	return nil
}
