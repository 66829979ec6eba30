package fixed

import "fmt"

// Vec is a 2D fixed-point vector.
type Vec struct {
	X, Y Num
}

// V builds a Vec from two integers.
func V(x, y int) Vec {
	return Vec{X: FromInt(x), Y: FromInt(y)}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Scale multiplies both components by an integer.
func (v Vec) Scale(k int) Vec {
	return Vec{X: v.X.MulInt(k), Y: v.Y.MulInt(k)}
}

// Round rounds both components to integer pixel coordinates.
func (v Vec) Round() Point {
	return Point{X: v.X.Round(), Y: v.Y.Round()}
}

// Equal reports whether v and o are identical.
func (v Vec) Equal(o Vec) bool {
	return v.X == o.X && v.Y == o.Y
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// String returns a string representation of the vector.
func (v Vec) String() string {
	return fmt.Sprintf("(%s,%s)", v.X, v.Y)
}

// Point is an integer 2D vector used for grid sizes, cell coordinates,
// sub-tile coordinates and rounded pixel positions.
// X increases to the right, Y increases downward.
type Point struct {
	X, Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Mul scales both components by k.
func (p Point) Mul(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Div divides both components by k, truncating toward zero.
func (p Point) Div(k int) Point {
	return Point{X: p.X / k, Y: p.Y / k}
}

// In reports whether p lies inside [0,size.X) x [0,size.Y).
func (p Point) In(size Point) bool {
	return p.X >= 0 && p.X < size.X && p.Y >= 0 && p.Y < size.Y
}

// Fixed converts p to a fixed-point vector.
func (p Point) Fixed() Vec {
	return V(p.X, p.Y)
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
