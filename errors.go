package trtc

import "errors"

var (
	// ErrInvalidDivisor is the panic value of a division by zero or by a
	// scalar smaller than the tolerance.
	ErrInvalidDivisor = errors.New("trtc: divisor must be greater than tolerance")

	// ErrOutOfBounds reports pixel coordinates outside the canvas.
	ErrOutOfBounds = errors.New("trtc: pixel coordinates out of bounds")

	// ErrInvalidCombination reports a point/vector combination with no
	// geometric meaning, such as point+point.
	ErrInvalidCombination = errors.New("trtc: invalid point/vector combination")

	// ErrUnclassified reports a tuple whose W is neither 0 nor 1.
	ErrUnclassified = errors.New("trtc: tuple is neither a point nor a vector")
)
