package minefield

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/minefield/internal/fixed"
	"github.com/vovakirdan/minefield/internal/tiles"
)

// MaxCells bounds the number of cells a grid may allocate.
const MaxCells = 1 << 24

var (
	// ErrInvalidSize is returned for a grid with a non-positive dimension.
	ErrInvalidSize = errors.New("minefield: grid dimensions must be positive")
	// ErrGridTooLarge is returned when width*height overflows or exceeds
	// MaxCells, or when the pixel extent does not fit in a fixed.Num.
	ErrGridTooLarge = errors.New("minefield: grid too large")
)

// Grid is the rectangular array of cells.
// Cells are stored in row-major order: index = row*width + col.
// blocks and mines always have exactly width*height entries.
type Grid struct {
	size   fixed.Point // Width x height in cells (super-tiles)
	origin fixed.Vec   // Pixel position of the top-left corner
	blocks []Block
	mines  []bool
}

// NewGrid allocates a grid of size cells anchored at origin, all concealed
// with no mines.
func NewGrid(size fixed.Point, origin fixed.Vec) (*Grid, error) {
	g := &Grid{origin: origin}
	if err := g.Resize(size); err != nil {
		return nil, err
	}
	return g, nil
}

// cellCount validates size and returns width*height.
func cellCount(size fixed.Point) (int, error) {
	if size.X <= 0 || size.Y <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	if size.X > math.MaxInt/size.Y {
		return 0, fmt.Errorf("%w: %s overflows", ErrGridTooLarge, size)
	}
	n := size.X * size.Y
	if n > MaxCells {
		return 0, fmt.Errorf("%w: %d cells exceeds %d", ErrGridTooLarge, n, MaxCells)
	}
	if size.X > fixed.MaxInt/tiles.SuperTileSize || size.Y > fixed.MaxInt/tiles.SuperTileSize {
		return 0, fmt.Errorf("%w: %s is wider than %d pixels", ErrGridTooLarge, size, fixed.MaxInt)
	}
	return n, nil
}

// checkExtent rejects a grid whose far edge, anchored at origin, would wrap.
func checkExtent(size fixed.Point, origin fixed.Vec) error {
	right := origin.X.Floor() + size.X*tiles.SuperTileSize
	bottom := origin.Y.Floor() + size.Y*tiles.SuperTileSize
	if !fixed.IntInRange(right) || !fixed.IntInRange(bottom) {
		return fmt.Errorf("%w: %s at %s reaches past %d", ErrGridTooLarge, size, origin, fixed.MaxInt)
	}
	return nil
}

// Resize discards all cell and mine content and reallocates the grid at the
// new size. Nothing is preserved: a resize is a full reset. On error the grid
// is left unchanged.
func (g *Grid) Resize(size fixed.Point) error {
	n, err := cellCount(size)
	if err != nil {
		return err
	}
	if err := checkExtent(size, g.origin); err != nil {
		return err
	}
	g.size = size
	g.blocks = make([]Block, n) // zero value is Concealed
	g.mines = make([]bool, n)
	return nil
}

// Reset conceals every cell and removes all mines, keeping the size.
func (g *Grid) Reset() {
	clear(g.blocks)
	clear(g.mines)
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() fixed.Point {
	return g.size
}

// Origin returns the pixel position of the grid's top-left corner.
func (g *Grid) Origin() fixed.Vec {
	return g.origin
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.blocks)
}

// IndexOf converts a cell coordinate to its storage index.
// The caller must ensure the cell is in bounds.
func (g *Grid) IndexOf(cell fixed.Point) int {
	return cell.Y*g.size.X + cell.X
}

// CellAt is the inverse of IndexOf.
func (g *Grid) CellAt(index int) fixed.Point {
	return fixed.P(index%g.size.X, index/g.size.X)
}

// InBounds reports whether cell lies inside [0,width) x [0,height).
func (g *Grid) InBounds(cell fixed.Point) bool {
	return cell.In(g.size)
}

// Block returns the state of a cell. The second result is false out of bounds.
func (g *Grid) Block(cell fixed.Point) (Block, bool) {
	if !g.InBounds(cell) {
		return Concealed, false
	}
	return g.blocks[g.IndexOf(cell)], true
}

// Mine reports whether a cell holds a mine. Out-of-bounds cells never do.
func (g *Grid) Mine(cell fixed.Point) bool {
	if !g.InBounds(cell) {
		return false
	}
	return g.mines[g.IndexOf(cell)]
}

// SetMine places or removes a mine. It is the hook a mine placer writes
// through; out-of-bounds cells are ignored and reported as false.
func (g *Grid) SetMine(cell fixed.Point, mined bool) bool {
	if !g.InBounds(cell) {
		return false
	}
	g.mines[g.IndexOf(cell)] = mined
	return true
}

// Reveal uncovers a cell and blanks its super-tile.
// Out-of-bounds, already revealed and flagged cells are left alone.
// Returns true if the cell changed.
func (g *Grid) Reveal(vp tiles.Viewport, cell fixed.Point, data tiles.TileData) bool {
	if !g.InBounds(cell) {
		return false
	}
	i := g.IndexOf(cell)
	if !g.blocks[i].Revealable() {
		return false
	}

	g.blocks[i] = Revealed
	tiles.Clear(vp, tiles.SuperTileOrigin(cell), data)
	return true
}

// CycleMark advances a concealed cell through Concealed -> Flagged ->
// Questioned -> Concealed and redraws its super-tile for the new state.
// Out-of-bounds and revealed cells are left alone. Returns true if the cell changed.
func (g *Grid) CycleMark(vp tiles.Viewport, cell fixed.Point, data tiles.TileData) bool {
	if !g.InBounds(cell) {
		return false
	}
	i := g.IndexOf(cell)
	if g.blocks[i] == Revealed {
		return false
	}

	next := g.blocks[i].Next()
	g.blocks[i] = next
	g.drawCell(vp, cell, next, data)
	return true
}

// drawCell writes one cell's super-tile for the given state.
func (g *Grid) drawCell(vp tiles.Viewport, cell fixed.Point, b Block, data tiles.TileData) {
	topLeft := tiles.SuperTileOrigin(cell)
	if set, ok := b.Indices(); ok {
		tiles.Draw(vp, topLeft, data, set)
		return
	}
	tiles.Clear(vp, topLeft, data)
}

// RenderAll draws every cell's super-tile for its current state and then
// scrolls the viewport to the grid's rounded origin. Call it after creating
// or resizing the grid.
func (g *Grid) RenderAll(vp tiles.Viewport, data tiles.TileData) {
	for i, b := range g.blocks {
		g.drawCell(vp, g.CellAt(i), b, data)
	}
	g.scroll(vp)
}

// SetOrigin moves the grid to a new pixel position, rescrolls the viewport and
// returns the displacement new - old.
func (g *Grid) SetOrigin(vp tiles.Viewport, origin fixed.Vec) fixed.Vec {
	delta := origin.Sub(g.origin)
	g.origin = origin
	g.scroll(vp)
	return delta
}

// scroll points the viewport at the grid's origin. The tilemap holds the
// grid at sub-tile (0,0), so the background scrolls by minus the origin.
func (g *Grid) scroll(vp tiles.Viewport) {
	vp.SetScroll(g.origin.Round().Neg())
}

// PixelExtent returns the rectangle covered by the grid in pixel space.
func (g *Grid) PixelExtent() fixed.Rect {
	return fixed.NewRect(g.origin, g.size.Mul(tiles.SuperTileSize).Fixed())
}

// Census counts cells per state.
type Census struct {
	Concealed  int
	Flagged    int
	Questioned int
	Revealed   int
	Mines      int
}

// Counts returns how many cells are in each state.
func (g *Grid) Counts() Census {
	var c Census
	for i, b := range g.blocks {
		switch b {
		case Concealed:
			c.Concealed++
		case Flagged:
			c.Flagged++
		case Questioned:
			c.Questioned++
		case Revealed:
			c.Revealed++
		}
		if g.mines[i] {
			c.Mines++
		}
	}
	return c
}
