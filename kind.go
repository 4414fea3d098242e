package trtc

import "fmt"

// Kind classifies a tuple by its W component.
type Kind uint8

const (
	// KindOther is a tuple whose W is neither 0 nor 1.
	KindOther Kind = iota
	// KindPoint is a tuple with W = 1.
	KindPoint
	// KindVector is a tuple with W = 0.
	KindVector
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindVector:
		return "vector"
	default:
		return "other"
	}
}

// Kind classifies t by comparing W against 1 and 0 under tol.
func (tol Tolerance) Kind(t Tuple) Kind {
	switch {
	case tol.Equal(t.W, 1):
		return KindPoint
	case tol.Equal(t.W, 0):
		return KindVector
	default:
		return KindOther
	}
}

// Kind classifies t under Epsilon.
func (t Tuple) Kind() Kind { return Epsilon.Kind(t) }

// IsPoint reports whether W is 1 within Epsilon.
func (t Tuple) IsPoint() bool { return t.Kind() == KindPoint }

// IsVector reports whether W is 0 within Epsilon.
func (t Tuple) IsVector() bool { return t.Kind() == KindVector }

// StrictAdd adds two classified tuples under Epsilon.
// See [Tolerance.StrictAdd].
func StrictAdd(a, b Tuple) (Tuple, error) {
	return Epsilon.StrictAdd(a, b)
}

// StrictSub subtracts two classified tuples under Epsilon.
// See [Tolerance.StrictSub].
func StrictSub(a, b Tuple) (Tuple, error) {
	return Epsilon.StrictSub(a, b)
}

// StrictAdd returns a + b for the combinations that keep a geometric
// meaning:
//
//	point  + vector = point
//	vector + point  = point
//	vector + vector = vector
//
// point + point returns ErrInvalidCombination. Unlike [Tolerance.Add],
// the result W is exactly 1 or 0.
func (tol Tolerance) StrictAdd(a, b Tuple) (Tuple, error) {
	ka, kb, err := tol.classify(a, b)
	if err != nil {
		return Tuple{}, err
	}
	var w float32
	switch {
	case ka == KindPoint && kb == KindPoint:
		return Tuple{}, fmt.Errorf("%w: %s + %s", ErrInvalidCombination, ka, kb)
	case ka == KindPoint || kb == KindPoint:
		w = 1
	}
	return Tuple{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z, W: w}, nil
}

// StrictSub returns a - b for the combinations that keep a geometric
// meaning:
//
//	point  - point  = vector
//	point  - vector = point
//	vector - vector = vector
//
// vector - point returns ErrInvalidCombination.
func (tol Tolerance) StrictSub(a, b Tuple) (Tuple, error) {
	ka, kb, err := tol.classify(a, b)
	if err != nil {
		return Tuple{}, err
	}
	var w float32
	switch {
	case ka == KindVector && kb == KindPoint:
		return Tuple{}, fmt.Errorf("%w: %s - %s", ErrInvalidCombination, ka, kb)
	case ka == KindPoint && kb == KindVector:
		w = 1
	}
	return Tuple{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z, W: w}, nil
}

func (tol Tolerance) classify(a, b Tuple) (Kind, Kind, error) {
	ka, kb := tol.Kind(a), tol.Kind(b)
	if ka == KindOther {
		return ka, kb, fmt.Errorf("%w: w=%g", ErrUnclassified, a.W)
	}
	if kb == KindOther {
		return ka, kb, fmt.Errorf("%w: w=%g", ErrUnclassified, b.W)
	}
	return ka, kb, nil
}
