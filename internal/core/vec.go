// Package core holds the shared primitives simulation cores and
// platforms exchange: vectors, rectangles, colors, input frames and the
// per-frame draw feed. It performs no I/O.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec is a 2D world-space vector. Aliasing the mathgl type keeps its
// full method set (Add, Sub, Mul, Dot, Len, Normalize) available on
// game code without wrappers.
type Vec = mgl64.Vec2

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec { return Vec{x, y} }

// FromAngle returns the unit vector at the given angle, measured from
// straight up (screen coordinates, y grows downward): 0 points up,
// positive angles lean right.
func FromAngle(a float64) Vec {
	return Vec{math.Sin(a), -math.Cos(a)}
}

// ClampF limits v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1 for negative values and +1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
