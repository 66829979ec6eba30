package fixed

// Rect is an axis-aligned rectangle in fixed-point space.
// The far edges are exclusive: Pos.X+Size.X is the first column outside.
type Rect struct {
	Pos  Vec
	Size Vec
}

// NewRect creates a rectangle at pos with the given size.
func NewRect(pos, size Vec) Rect {
	return Rect{Pos: pos, Size: size}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() Num {
	return r.Pos.X + r.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() Num {
	return r.Pos.Y + r.Size.Y
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Pos.X && p.X < r.Right() && p.Y >= r.Pos.Y && p.Y < r.Bottom()
}

// Within reports whether r lies entirely inside outer. Touching edges count as inside.
func (r Rect) Within(outer Rect) bool {
	return r.Pos.X >= outer.Pos.X && r.Right() <= outer.Right() &&
		r.Pos.Y >= outer.Pos.Y && r.Bottom() <= outer.Bottom()
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec) Rect {
	return Rect{Pos: r.Pos.Add(d), Size: r.Size}
}
