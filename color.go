package trtc

import "fmt"

// Color represents a color with red, green and blue components.
// Components are not clamped: values outside [0, 1] are legal
// intermediate results.
type Color struct {
	R, G, B float32
}

// RGB creates a color from its components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Equal reports whether all channels of c and other are within Epsilon.
func (c Color) Equal(other Color) bool {
	return Epsilon.EqualColors(c, other)
}

// Add returns the channelwise sum.
func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

// Sub returns the channelwise difference.
func (c Color) Sub(other Color) Color {
	return Color{R: c.R - other.R, G: c.G - other.G, B: c.B - other.B}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Mul returns the elementwise (Hadamard) product, used to modulate one
// color by another, e.g. light intensity by surface reflectance.
func (c Color) Mul(other Color) Color {
	return Color{R: c.R * other.R, G: c.G * other.G, B: c.B * other.B}
}

// RGBA implements the color.Color interface.
// Channels are clamped to [0, 1] for the conversion only; the result is
// always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return channel16(c.R), channel16(c.G), channel16(c.B), 0xffff
}

// String formats the color as rgb(r, g, b).
func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

// channel16 maps a channel to [0, 0xffff], clamping out-of-gamut values.
func channel16(v float32) uint32 {
	return uint32(clamp01(v)*0xffff + 0.5)
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	Red   = RGB(1, 0, 0)
	Green = RGB(0, 1, 0)
	Blue  = RGB(0, 0, 1)
)
