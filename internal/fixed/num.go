// Package fixed provides the fixed-point scalar and vector types used for every
// position and velocity in the game. Values carry 8 fractional bits so that
// sub-pixel movement accumulates exactly between frames without floating point.
package fixed

import (
	"fmt"
	"math"
	"strconv"
)

// FracBits is the number of fractional bits in a Num.
const FracBits = 8

// one is the raw representation of 1.0.
const one = 1 << FracBits

// Num is a signed fixed-point number with FracBits fractional bits.
type Num int32

// MaxInt and MinInt bound the whole numbers a Num holds. FromInt and
// FromFloat wrap outside this range, so callers validate at their boundary.
const (
	MaxInt = math.MaxInt32 >> FracBits
	MinInt = math.MinInt32 >> FracBits
)

// IntInRange reports whether i converts to a Num without wrapping.
func IntInRange(i int) bool {
	return i >= MinInt && i <= MaxInt
}

// InRange reports whether f converts to a Num without wrapping.
func InRange(f float64) bool {
	return f >= MinInt && f <= MaxInt
}

// FromInt converts an integer to a Num.
func FromInt(i int) Num {
	return Num(int32(i) << FracBits)
}

// FromRaw builds a Num from its raw representation.
func FromRaw(raw int32) Num {
	return Num(raw)
}

// FromFloat converts a float to the nearest representable Num.
// Only used at configuration boundaries; game logic stays in fixed point.
func FromFloat(f float64) Num {
	if f < 0 {
		return Num(int32(f*one - 0.5))
	}
	return Num(int32(f*one + 0.5))
}

// Raw returns the underlying representation.
func (n Num) Raw() int32 {
	return int32(n)
}

// Add returns n + o.
func (n Num) Add(o Num) Num {
	return n + o
}

// Sub returns n - o.
func (n Num) Sub(o Num) Num {
	return n - o
}

// Neg returns -n.
func (n Num) Neg() Num {
	return -n
}

// Mul returns n * o, rounded toward negative infinity in the last fractional bit.
func (n Num) Mul(o Num) Num {
	return Num((int64(n) * int64(o)) >> FracBits)
}

// Div returns n / o. Division by zero panics like integer division.
func (n Num) Div(o Num) Num {
	return Num((int64(n) << FracBits) / int64(o))
}

// MulInt scales n by an integer.
func (n Num) MulInt(i int) Num {
	return n * Num(i)
}

// Floor returns the largest integer not greater than n.
func (n Num) Floor() int {
	// Arithmetic shift floors toward negative infinity.
	return int(int32(n) >> FracBits)
}

// Round returns n rounded to the nearest integer, halves rounding up.
func (n Num) Round() int {
	return (n + one/2).Floor()
}

// Int returns the integer part of n, truncated toward zero.
func (n Num) Int() int {
	return int(int32(n) / one)
}

// Frac returns the fractional part of n as a raw value in [0, 256).
func (n Num) Frac() int32 {
	return int32(n) & (one - 1)
}

// Float returns n as a float64 for display purposes.
func (n Num) Float() float64 {
	return float64(n) / one
}

// String formats n as a decimal number.
func (n Num) String() string {
	if n.Frac() == 0 {
		return strconv.Itoa(n.Floor())
	}
	return fmt.Sprintf("%g", n.Float())
}
