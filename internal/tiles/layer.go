package tiles

import "github.com/vovakirdan/minefield/internal/fixed"

// MinLayerSize is the smallest background in sub-tiles, matching a 256x256 px hardware map.
const MinLayerSize = 32

// Entry is one stored sub-tile: the sheet it came from and its setting.
type Entry struct {
	Sheet   string
	Setting TileSetting
}

// Layer is an in-memory background map. It implements Viewport and is the
// shared store the platform renderers read from when compositing a frame.
type Layer struct {
	w, h    int
	entries []Entry
	scroll  fixed.Point
}

var _ Viewport = (*Layer)(nil)

// NewLayer creates a layer large enough for a grid of the given cell size.
func NewLayer(grid fixed.Point) *Layer {
	w := max(MinLayerSize, grid.X*2)
	h := max(MinLayerSize, grid.Y*2)
	l := &Layer{w: w, h: h, entries: make([]Entry, w*h)}
	l.Clear()
	return l
}

// Size returns the layer dimensions in sub-tiles.
func (l *Layer) Size() fixed.Point {
	return fixed.P(l.w, l.h)
}

// Clear blanks every entry.
func (l *Layer) Clear() {
	for i := range l.entries {
		l.entries[i] = Entry{Setting: Blank}
	}
}

// SetTile writes one sub-tile. Writes outside the layer are dropped.
func (l *Layer) SetTile(pos fixed.Point, set TileSet, setting TileSetting) {
	if !pos.In(l.Size()) {
		return
	}
	l.entries[pos.Y*l.w+pos.X] = Entry{Sheet: set.Name(), Setting: setting}
}

// SetScroll sets the pixel offset the layer is drawn at.
func (l *Layer) SetScroll(offset fixed.Point) {
	l.scroll = offset
}

// Scroll returns the current pixel offset.
func (l *Layer) Scroll() fixed.Point {
	return l.scroll
}

// at returns the entry stored at pos, or a blank entry outside the layer.
func (l *Layer) at(pos fixed.Point) Entry {
	if !pos.In(l.Size()) {
		return Entry{Setting: Blank}
	}
	return l.entries[pos.Y*l.w+pos.X]
}

// Visible calls fn for every non-blank entry with the screen pixel position
// of its top-left corner, that is its layer position minus the scroll.
func (l *Layer) Visible(fn func(screen fixed.Point, e Entry)) {
	for ty := 0; ty < l.h; ty++ {
		for tx := 0; tx < l.w; tx++ {
			e := l.at(fixed.P(tx, ty))
			if e.Setting.IsBlank() {
				continue
			}
			fn(fixed.P(tx*SubTileSize-l.scroll.X, ty*SubTileSize-l.scroll.Y), e)
		}
	}
}
