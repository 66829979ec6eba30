package minefield

import (
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/fixed"
	"github.com/vovakirdan/minefield/internal/tiles"
)

// tileMap records the last setting written to each sub-tile.
type tileMap struct {
	tiles  map[fixed.Point]tiles.TileSetting
	writes int
	scroll fixed.Point
}

func newTileMap() *tileMap {
	return &tileMap{tiles: make(map[fixed.Point]tiles.TileSetting)}
}

func (m *tileMap) SetTile(pos fixed.Point, _ tiles.TileSet, setting tiles.TileSetting) {
	m.tiles[pos] = setting
	m.writes++
}

func (m *tileMap) SetScroll(offset fixed.Point) {
	m.scroll = offset
}

// quad returns the four indices of the super-tile at cell, in draw order.
func (m *tileMap) quad(cell fixed.Point) [4]int {
	tl := tiles.SuperTileOrigin(cell)
	offsets := [4]fixed.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	var out [4]int
	for i, o := range offsets {
		s, ok := m.tiles[tl.Add(o)]
		if !ok {
			out[i] = -2
			continue
		}
		out[i] = s.Index
	}
	return out
}

type countingSink struct {
	played []core.Clip
}

func (s *countingSink) Play(c core.Clip) {
	s.played = append(s.played, c)
}

type spriteFrame struct {
	sprites []tiles.Sprite
	at      []fixed.Point
}

func (f *spriteFrame) DrawSprite(s tiles.Sprite, pos fixed.Point) {
	f.sprites = append(f.sprites, s)
	f.at = append(f.at, pos)
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
