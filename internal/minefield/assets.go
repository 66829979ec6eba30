package minefield

import (
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/tiles"
)

// Sheet names resolved by the frontends.
const (
	SheetBlocks  = "blocks"
	SheetNumbers = "numbers"
)

// Palette banks used by the sheets.
const (
	PaletteBlocks  uint8 = 0
	PaletteNumbers uint8 = 1
)

// Build-time handles for the cursor sprite and sounds.
const (
	SpriteCursor tiles.Sprite = 0

	ClipCursorMove core.Clip = 1
	ClipMusic      core.Clip = 2 // First tracker note; the tracker owns the rest
)

// Assets are the read-only graphics and sound handles the field draws with.
// They are built once before the first frame and never mutated.
type Assets struct {
	Blocks   tiles.TileData
	Cursor   tiles.Sprite
	MoveClip core.Clip

	// Numbers holds the revealed-content tiles (see Item.NumberTile). Nothing
	// draws it yet: reveals blank the cell until mines are placed.
	Numbers tiles.TileData
}

// sheet builds a tile bundle whose settings map index i to graphic i.
func sheet(name string, count int, palette uint8) tiles.TileData {
	settings := make([]tiles.TileSetting, count)
	for i := range settings {
		settings[i] = tiles.TileSetting{Index: i, Palette: palette}
	}
	return tiles.TileData{
		Tiles:    tiles.NewTileSet(name, count),
		Settings: settings,
	}
}

// DefaultAssets returns the game's built-in asset tables.
//
// The block sheet holds three 2x2 blocks: covered (0-3), flag (4-7) and
// question mark (8-11). The numbers sheet holds blank, 1-8 and the mine.
func DefaultAssets() Assets {
	return Assets{
		Blocks:   sheet(SheetBlocks, 12, PaletteBlocks),
		Numbers:  sheet(SheetNumbers, 10, PaletteNumbers),
		Cursor:   SpriteCursor,
		MoveClip: ClipCursorMove,
	}
}
