package trtc

import "fmt"

// Tuple is a homogeneous 4-component coordinate.
// W is 1 for a point and 0 for a vector. Other values appear as
// intermediate results and are neither.
type Tuple struct {
	X, Y, Z, W float32
}

// Point creates a tuple with W = 1.
func Point(x, y, z float32) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple with W = 0.
func Vector(x, y, z float32) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// Reverse returns the components in reverse order (W, Z, Y, X).
// It is a structural flip, not a geometric operation.
func (t Tuple) Reverse() Tuple {
	return Tuple{X: t.W, Y: t.Z, Z: t.Y, W: t.X}
}

// Equal reports whether all components of t and u are within Epsilon.
func (t Tuple) Equal(u Tuple) bool {
	return Epsilon.EqualTuples(t, u)
}

// Add returns t + u using the w-forcing rule of [Tolerance.Add].
func (t Tuple) Add(u Tuple) Tuple {
	return Epsilon.Add(t, u)
}

// Sub returns t - u using the w rule of [Tolerance.Sub].
func (t Tuple) Sub(u Tuple) Tuple {
	return Epsilon.Sub(t, u)
}

// Negate negates all four components.
func (t Tuple) Negate() Tuple {
	return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z, W: -t.W}
}

// Mul scales all four components by s.
func (t Tuple) Mul(s float32) Tuple {
	return Tuple{X: t.X * s, Y: t.Y * s, Z: t.Z * s, W: t.W * s}
}

// Div divides all four components by s.
// It panics if s is below Epsilon, see [Tolerance.Div].
func (t Tuple) Div(s float32) Tuple {
	return Epsilon.Div(t, s)
}

// Magnitude returns the Euclidean norm over all four components.
// For a vector this is its 3-D length. For a point the W term is
// included, so the result is not a length.
func (t Tuple) Magnitude() float32 {
	return sqrt32(t.Dot(t))
}

// Normalize returns a unit-length copy of t.
// It panics if the magnitude is below Epsilon.
func (t Tuple) Normalize() Tuple {
	return Epsilon.Normalize(t)
}

// Dot returns the 4-component dot product.
func (t Tuple) Dot(u Tuple) float32 {
	return t.X*u.X + t.Y*u.Y + t.Z*u.Z + t.W*u.W
}

// Cross returns the 3-D cross product of the X, Y, Z parts.
// W is ignored and the result is always a vector.
func (t Tuple) Cross(u Tuple) Tuple {
	return Vector(
		t.Y*u.Z-t.Z*u.Y,
		t.Z*u.X-t.X*u.Z,
		t.X*u.Y-t.Y*u.X,
	)
}

// String formats the tuple as (x, y, z, w).
func (t Tuple) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
