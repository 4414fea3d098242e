// Package trtc provides the numeric kernel of a ray tracer: homogeneous
// tuples, an RGB color algebra and a row-major pixel canvas.
//
// # Overview
//
// A [Tuple] is four float32 components (X, Y, Z, W). W tells points from
// vectors: [Point] sets W to 1 and [Vector] sets W to 0. Both share one
// type and one set of operations.
//
//	p := trtc.Point(0, 1, 0)
//	v := trtc.Vector(1, 1, 0).Normalize()
//	p = p.Add(v)
//
// A [Color] is three unclamped float32 channels. Out-of-gamut values are
// legal intermediate results.
//
//	light := trtc.RGB(1, 0.2, 0.4)
//	lit := light.Mul(trtc.RGB(0.9, 1, 0.1)) // elementwise product
//
// A [Canvas] is a fixed-size grid of colors stored row-major:
// index = x + width*y.
//
//	c := trtc.NewCanvas(10, 20)
//	c.WritePixel(2, 3, trtc.Red)
//
// # Point and vector arithmetic
//
// [Tuple.Add] and [Tuple.Sub] follow a w-forcing rule: when both operands
// have W equal to 1 the result W is forced (to 1 for Add, to 0 for Sub),
// otherwise Add sums W and Sub takes |a.W - b.W|. Adding two points
// therefore yields a point. [StrictAdd] and [StrictSub] classify their
// operands first and reject combinations that have no geometric meaning.
//
// # Tolerance
//
// All floating comparisons use a [Tolerance]. [Epsilon] (1e-5) is the
// default used by every method; call the methods on a custom Tolerance to
// compare with a different bound.
//
// # Errors
//
// Division by a scalar below the tolerance is a precondition violation
// and panics with an error matching [ErrInvalidDivisor]. Unchecked pixel
// access outside the canvas panics with [ErrOutOfBounds]. The checked
// accessors [Canvas.SetPixel] and [Canvas.GetPixel] return the error
// instead.
package trtc
