package minefield

import (
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/fixed"
	"github.com/vovakirdan/minefield/internal/tiles"
)

// Cursor is the player-controlled selector. It owns only its position; the
// Field keeps it within the grid.
type Cursor struct {
	pos    fixed.Vec
	sprite tiles.Sprite
	clip   core.Clip
}

// NewCursor creates a cursor at pos that draws sprite and plays clip on movement.
func NewCursor(pos fixed.Vec, sprite tiles.Sprite, clip core.Clip) *Cursor {
	return &Cursor{pos: pos, sprite: sprite, clip: clip}
}

// Pos returns the cursor's position in pixels.
func (c *Cursor) Pos() fixed.Vec {
	return c.pos
}

// SetPos moves the cursor without feedback.
func (c *Cursor) SetPos(pos fixed.Vec) {
	c.pos = pos
}

// MoveBy displaces the cursor. A nonzero delta plays the move clip exactly
// once; a zero delta is silent.
func (c *Cursor) MoveBy(delta fixed.Vec, sink core.AudioSink) {
	c.pos = c.pos.Add(delta)
	if !delta.IsZero() {
		sink.Play(c.clip)
	}
}

// CollisionRect returns the one-super-tile box anchored at the cursor.
func (c *Cursor) CollisionRect() fixed.Rect {
	return fixed.NewRect(c.pos, fixed.V(tiles.SuperTileSize, tiles.SuperTileSize))
}

// Render draws the cursor sprite at its rounded pixel position.
func (c *Cursor) Render(frame tiles.Frame) {
	frame.DrawSprite(c.sprite, c.pos.Round())
}
