package config

import (
	_ "embed"
)

//go:embed defaults/minefield.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration. It matches the embedded YAML.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  13,
			Height: 8,
			Origin: OriginConfig{X: 16, Y: 16},
		},
		Display: DisplayConfig{
			Backend:  BackendTUI,
			Scale:    3,
			TickRate: 60,
			Width:    240,
			Height:   160,
			Center:   true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Music:   true,
			Volume:  0.8,
		},
		Storage: StorageConfig{
			Path: "~/.minefield/sessions.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
