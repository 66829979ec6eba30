// Package minefield implements the simulation core of the game: the cell grid
// and its state machine, the cursor, and the per-frame controller that turns
// an input snapshot into reveals, marks and cursor moves while keeping the
// tilemap in step with the grid.
//
// The package is single-threaded and frame-synchronous. Nothing here blocks,
// and every fallible gameplay condition is a silent no-op.
package minefield

import (
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/fixed"
	"github.com/vovakirdan/minefield/internal/tiles"
)

// Field is the grid controller. It owns the grid and the cursor and mediates
// between them; neither knows about the other.
type Field struct {
	grid   *Grid
	cursor *Cursor
	assets Assets
}

// NewField creates a field of size cells at origin with the cursor on the
// top-left cell. Call Render before the first frame.
func NewField(size fixed.Point, origin fixed.Vec, assets Assets) (*Field, error) {
	grid, err := NewGrid(size, origin)
	if err != nil {
		return nil, err
	}
	return &Field{
		grid:   grid,
		cursor: NewCursor(origin, assets.Cursor, assets.MoveClip),
		assets: assets,
	}, nil
}

// Grid returns the cell grid.
func (f *Field) Grid() *Grid {
	return f.grid
}

// Cursor returns the cursor.
func (f *Field) Cursor() *Cursor {
	return f.cursor
}

// Assets returns the asset tables the field draws with.
func (f *Field) Assets() Assets {
	return f.assets
}

// Render redraws the whole grid into the viewport.
func (f *Field) Render(vp tiles.Viewport) {
	f.grid.RenderAll(vp, f.assets.Blocks)
}

// CellUnderCursor returns the cell whose region contains the cursor's anchor:
// the rounded offset from the grid origin, divided by the super-tile size.
func (f *Field) CellUnderCursor() fixed.Point {
	offset := f.cursor.Pos().Sub(f.grid.Origin()).Round()
	return offset.Div(tiles.SuperTileSize)
}

// Update runs one frame of input. The first matching rule wins:
// primary reveals, secondary cycles the mark, otherwise the d-pad moves the
// cursor one cell unless that would leave the grid.
func (f *Field) Update(in core.InputFrame, vp tiles.Viewport, sink core.AudioSink) core.StepResult {
	if in.JustPressed(core.ActionPrimary) {
		cell := f.CellUnderCursor()
		if f.grid.Reveal(vp, cell, f.assets.Blocks) {
			return cellResult(core.EventReveal, cell)
		}
		return cellResult(core.EventIgnored, cell)
	}

	if in.JustPressed(core.ActionSecondary) {
		cell := f.CellUnderCursor()
		if f.grid.CycleMark(vp, cell, f.assets.Blocks) {
			return cellResult(core.EventMark, cell)
		}
		return cellResult(core.EventIgnored, cell)
	}

	delta := fixed.V(in.XTri(), in.YTri()).Scale(tiles.SuperTileSize)
	if delta.IsZero() {
		return core.StepResult{}
	}

	candidate := f.cursor.CollisionRect().Translate(delta)
	if !candidate.Within(f.grid.PixelExtent()) {
		return core.StepResult{Event: core.EventBlocked}
	}

	f.cursor.MoveBy(delta, sink)
	cell := f.CellUnderCursor()
	return cellResult(core.EventMove, cell)
}

func cellResult(e core.Event, cell fixed.Point) core.StepResult {
	return core.StepResult{Event: e, CellX: cell.X, CellY: cell.Y}
}

// CenteredOrigin returns the origin that centres a grid of size cells in an
// area of pixels. Axes where the grid does not fit are pinned to zero.
func CenteredOrigin(size, area fixed.Point) fixed.Vec {
	extent := size.Mul(tiles.SuperTileSize)
	x := max(0, (area.X-extent.X)/2)
	y := max(0, (area.Y-extent.Y)/2)
	return fixed.V(x, y)
}

// Reposition moves the grid to origin and drags the cursor by the same
// amount so it stays over the same cell.
func (f *Field) Reposition(vp tiles.Viewport, origin fixed.Vec) {
	delta := f.grid.SetOrigin(vp, origin)
	f.cursor.SetPos(f.cursor.Pos().Add(delta))
}

// Resize reallocates the grid, which discards all marks and mines, puts the
// cursor back on the top-left cell and redraws. The old tiles beyond a
// smaller grid are blanked.
func (f *Field) Resize(vp tiles.Viewport, size fixed.Point) error {
	old := f.grid.Size()
	if err := f.grid.Resize(size); err != nil {
		return err
	}
	f.clearOutside(vp, old, size)
	f.cursor.SetPos(f.grid.Origin())
	f.Render(vp)
	return nil
}

// clearOutside blanks super-tiles of the old extent that the new size no longer covers.
func (f *Field) clearOutside(vp tiles.Viewport, old, size fixed.Point) {
	for row := 0; row < old.Y; row++ {
		for col := 0; col < old.X; col++ {
			cell := fixed.P(col, row)
			if cell.In(size) {
				continue
			}
			tiles.Clear(vp, tiles.SuperTileOrigin(cell), f.assets.Blocks)
		}
	}
}

// Restart conceals every cell, returns the cursor to the top-left cell and redraws.
func (f *Field) Restart(vp tiles.Viewport) {
	f.grid.Reset()
	f.cursor.SetPos(f.grid.Origin())
	f.Render(vp)
}

// Draw queues the per-frame sprites. The background lives in the viewport.
func (f *Field) Draw(frame tiles.Frame) {
	f.cursor.Render(frame)
}
