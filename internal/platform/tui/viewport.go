package tui

import (
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/fixed"
	"github.com/vovakirdan/minefield/internal/minefield"
	"github.com/vovakirdan/minefield/internal/tiles"
)

// A sub-tile is drawn as CellCols x CellRows terminal characters.
const (
	CellCols = 2
	CellRows = 1
)

// glyph is the terminal rendering of one sub-tile graphic.
type glyph struct {
	text  string // Exactly CellCols runes
	color core.Color
}

var blankGlyph = glyph{"  ", core.ColorDefault}

// sheetGlyphs maps each sheet's graphic index to its glyph.
var sheetGlyphs = map[string][]glyph{
	minefield.SheetBlocks: {
		// Covered
		{"▛▀", core.ColorGray}, {"▀▜", core.ColorGray},
		{"▙▄", core.ColorGray}, {"▄▟", core.ColorGray},
		// Flag
		{"▛▐", core.ColorBrightRed}, {"▶▜", core.ColorBrightRed},
		{"▙▐", core.ColorBrightRed}, {"▄▟", core.ColorBrightRed},
		// Question mark
		{"▛?", core.ColorBrightYellow}, {"?▜", core.ColorBrightYellow},
		{"▙▄", core.ColorBrightYellow}, {"▄▟", core.ColorBrightYellow},
	},
	minefield.SheetNumbers: {
		{"  ", core.ColorDefault},
		{" 1", core.ColorBrightBlue}, {" 2", core.ColorGreen}, {" 3", core.ColorBrightRed},
		{" 4", core.ColorBlue}, {" 5", core.ColorRed}, {" 6", core.ColorCyan},
		{" 7", core.ColorWhite}, {" 8", core.ColorGray},
		{" *", core.ColorBrightWhite},
	},
}

// TileMap is the terminal view of a background layer. It implements
// tiles.Viewport through the embedded layer.
type TileMap struct {
	*tiles.Layer
}

var _ tiles.Viewport = (*TileMap)(nil)

// NewTileMap creates a map large enough for a grid of the given cell size.
func NewTileMap(grid fixed.Point) *TileMap {
	return &TileMap{Layer: tiles.NewLayer(grid)}
}

// Compose draws the map onto s. Sub-pixel scroll offsets snap down to whole sub-tiles.
func (m *TileMap) Compose(s *core.Screen) {
	m.Visible(func(p fixed.Point, e tiles.Entry) {
		col, row := PixelToCell(p)
		if row < 0 || row >= s.Height() || col < 0 || col >= s.Width() {
			return
		}
		g := lookupGlyph(e.Sheet, e.Setting)
		s.DrawText(col, row, g.text, g.color)
	})
}

func lookupGlyph(set string, setting tiles.TileSetting) glyph {
	table, ok := sheetGlyphs[set]
	if !ok || setting.Index < 0 || setting.Index >= len(table) {
		return blankGlyph
	}
	return table[setting.Index]
}

// PixelToCell converts a screen pixel position to the terminal column and row
// of the sub-tile containing it.
func PixelToCell(p fixed.Point) (col, row int) {
	return floorDiv(p.X, tiles.SubTileSize) * CellCols, floorDiv(p.Y, tiles.SubTileSize) * CellRows
}

// CellToPixel converts a terminal size in characters to the pixel area it shows.
func CellToPixel(cols, rows int) fixed.Point {
	return fixed.P(cols/CellCols*tiles.SubTileSize, rows/CellRows*tiles.SubTileSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// SpriteLayer collects the sprites queued for one frame. It implements tiles.Frame.
type SpriteLayer struct {
	sprites []queuedSprite
}

type queuedSprite struct {
	sprite tiles.Sprite
	pos    fixed.Point
}

var _ tiles.Frame = (*SpriteLayer)(nil)

// DrawSprite queues a sprite at a screen pixel position.
func (l *SpriteLayer) DrawSprite(s tiles.Sprite, pos fixed.Point) {
	l.sprites = append(l.sprites, queuedSprite{sprite: s, pos: pos})
}

// Compose paints the queued sprites onto s and empties the queue.
// The cursor sprite recolours the super-tile under it.
func (l *SpriteLayer) Compose(s *core.Screen) {
	for _, q := range l.sprites {
		if q.sprite != minefield.SpriteCursor {
			continue
		}
		col, row := PixelToCell(q.pos)
		w := tiles.SuperTileSize / tiles.SubTileSize * CellCols
		h := tiles.SuperTileSize / tiles.SubTileSize * CellRows
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				x, y := col+dx, row+dy
				if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
					continue
				}
				c := s.GetCell(x, y)
				if c.Rune == ' ' {
					s.Set(x, y, '·')
				}
				s.SetColor(x, y, core.ColorCursor)
			}
		}
	}
	l.sprites = l.sprites[:0]
}
