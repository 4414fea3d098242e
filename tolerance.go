package trtc

import (
	"fmt"
	"math"
)

// Tolerance is the absolute bound under which two float32 values compare
// equal. It also bounds the smallest accepted divisor.
type Tolerance float32

// Epsilon is the default tolerance used by all Tuple and Color methods.
const Epsilon Tolerance = 1e-5

// Equal reports whether a and b are equal under the default tolerance.
func Equal(a, b float32) bool {
	return Epsilon.Equal(a, b)
}

// Equal reports whether |a-b| < tol.
func (tol Tolerance) Equal(a, b float32) bool {
	return abs32(a-b) < float32(tol)
}

// EqualTuples compares all four components of a and b.
func (tol Tolerance) EqualTuples(a, b Tuple) bool {
	return tol.Equal(a.X, b.X) &&
		tol.Equal(a.Y, b.Y) &&
		tol.Equal(a.Z, b.Z) &&
		tol.Equal(a.W, b.W)
}

// EqualColors compares the three channels of a and b.
func (tol Tolerance) EqualColors(a, b Color) bool {
	return tol.Equal(a.R, b.R) &&
		tol.Equal(a.G, b.G) &&
		tol.Equal(a.B, b.B)
}

// Add returns a + b. X, Y and Z are summed. If both W equal 1 the result
// W is 1, otherwise it is a.W + b.W.
func (tol Tolerance) Add(a, b Tuple) Tuple {
	w := a.W + b.W
	if tol.Equal(a.W, 1) && tol.Equal(b.W, 1) {
		w = 1
	}
	return Tuple{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z, W: w}
}

// Sub returns a - b. X, Y and Z are differenced. If both W equal 1 the
// result W is 0, otherwise it is |a.W - b.W|.
func (tol Tolerance) Sub(a, b Tuple) Tuple {
	w := abs32(a.W - b.W)
	if tol.Equal(a.W, 1) && tol.Equal(b.W, 1) {
		w = 0
	}
	return Tuple{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z, W: w}
}

// Div divides every component of t by s.
// It panics with an error matching ErrInvalidDivisor if s is zero or
// smaller than tol, which includes every negative s.
func (tol Tolerance) Div(t Tuple, s float32) Tuple {
	if s == 0 || s < float32(tol) {
		err := fmt.Errorf("%w: %g", ErrInvalidDivisor, s)
		Logger().Error("trtc: invalid divisor", "divisor", s, "tolerance", float32(tol), "tuple", t)
		panic(err)
	}
	return Tuple{X: t.X / s, Y: t.Y / s, Z: t.Z / s, W: t.W / s}
}

// Normalize returns t divided by its magnitude.
// It panics like Div when the magnitude is below tol.
func (tol Tolerance) Normalize(t Tuple) Tuple {
	return tol.Div(t, t.Magnitude())
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
