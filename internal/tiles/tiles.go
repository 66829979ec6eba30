// Package tiles describes the tile-based rendering backend the game draws into
// and implements the composite tile rule: one 16x16 super-tile is written as a
// 2x2 block of 8x8 sub-tiles.
//
// The backend itself (terminal or raster window) lives in the platform layer;
// this package only defines the handles and the write surface it must accept.
package tiles

import "github.com/vovakirdan/minefield/internal/fixed"

// Sub-tile and super-tile edge lengths in pixels.
const (
	SubTileSize   = 8
	SuperTileSize = 2 * SubTileSize
)

// TileSet is an opaque handle to a decoded graphic sheet.
// Backends resolve it to their own pixel or glyph data by name.
type TileSet struct {
	name  string
	count int
}

// NewTileSet creates a handle for a sheet holding count sub-tile graphics.
func NewTileSet(name string, count int) TileSet {
	return TileSet{name: name, count: count}
}

// Name returns the sheet identifier.
func (s TileSet) Name() string {
	return s.name
}

// Count returns the number of graphics in the sheet.
func (s TileSet) Count() int {
	return s.count
}

// TileSetting selects one graphic from a sheet along with its display flags.
type TileSetting struct {
	Index   int   // Graphic index in the sheet, negative for blank
	HFlip   bool  // Mirror horizontally
	VFlip   bool  // Mirror vertically
	Palette uint8 // Palette bank
}

// Blank is the setting that clears a sub-tile.
var Blank = TileSetting{Index: -1}

// IsBlank reports whether the setting draws nothing.
func (s TileSetting) IsBlank() bool {
	return s.Index < 0
}

// TileData is a tile asset bundle: a sheet plus its per-sub-tile settings,
// indexed by small integers assigned at build time.
type TileData struct {
	Tiles    TileSet
	Settings []TileSetting
}

// Setting returns the setting at index i, or Blank when i is outside the table.
func (d TileData) Setting(i int) TileSetting {
	if i < 0 || i >= len(d.Settings) {
		return Blank
	}
	return d.Settings[i]
}

// Viewport is the write surface of a tiled background layer.
// Positions are in sub-tile units; the scroll offset is in pixels.
type Viewport interface {
	SetTile(pos fixed.Point, set TileSet, setting TileSetting)
	SetScroll(offset fixed.Point)
}

// Sprite is an opaque handle to an object graphic.
type Sprite int

// Frame accepts object sprites for the frame being prepared.
// Positions are in pixels relative to the screen.
type Frame interface {
	DrawSprite(s Sprite, pos fixed.Point)
}
