package trtc

import (
	"fmt"
	"image"
	"image/color"
)

// Canvas is a fixed-size grid of colors stored row-major in a flat
// buffer: the pixel (x, y) lives at index x + width*y.
//
// A Canvas is not safe for concurrent use, except through ForEachRow,
// which hands each worker a disjoint band of rows.
type Canvas struct {
	width  int
	height int
	pixels []Color // len(pixels) == width*height
}

// NewCanvas creates a canvas with every cell set to black, or to the
// color given by WithBackground. A zero width or height yields an empty
// canvas. Negative dimensions panic.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("trtc: invalid canvas dimensions: width=%d, height=%d (both must be >= 0)", width, height))
	}

	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
	if o.background != (Color{}) {
		c.Fill(o.background)
	}

	Logger().Debug("trtc: canvas allocated", "width", width, "height", height, "pixels", len(c.pixels))
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Len returns the number of pixels, width*height.
func (c *Canvas) Len() int {
	return len(c.pixels)
}

// Index returns the buffer index of (x, y): x + width*y.
// It does not check bounds.
func (c *Canvas) Index(x, y int) int {
	return x + c.width*y
}

// InBounds reports whether (x, y) addresses a pixel of the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// WritePixel overwrites the pixel at (x, y).
// It panics with an error matching ErrOutOfBounds if (x, y) is outside
// the canvas. Use SetPixel to get the error instead.
func (c *Canvas) WritePixel(x, y int, col Color) {
	if err := c.SetPixel(x, y, col); err != nil {
		panic(err)
	}
}

// PixelAt returns the pixel at (x, y).
// It panics with an error matching ErrOutOfBounds if (x, y) is outside
// the canvas. Use GetPixel to get the error instead.
func (c *Canvas) PixelAt(x, y int) Color {
	col, err := c.GetPixel(x, y)
	if err != nil {
		panic(err)
	}
	return col
}

// SetPixel overwrites the pixel at (x, y), or returns ErrOutOfBounds.
func (c *Canvas) SetPixel(x, y int, col Color) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	c.pixels[c.Index(x, y)] = col
	return nil
}

// GetPixel returns the pixel at (x, y), or ErrOutOfBounds.
func (c *Canvas) GetPixel(x, y int) (Color, error) {
	if err := c.check(x, y); err != nil {
		return Color{}, err
	}
	return c.pixels[c.Index(x, y)], nil
}

func (c *Canvas) check(x, y int) error {
	if c.InBounds(x, y) {
		return nil
	}
	Logger().Debug("trtc: pixel out of bounds", "x", x, "y", y, "width", c.width, "height", c.height)
	return fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// Row returns the pixels of row y. The slice aliases the canvas buffer,
// so writes through it change the canvas.
// It panics with an error matching ErrOutOfBounds if y is not a row.
func (c *Canvas) Row(y int) []Color {
	if y < 0 || y >= c.height {
		panic(fmt.Errorf("%w: row %d not in 0..%d", ErrOutOfBounds, y, c.height))
	}
	start := c.width * y
	return c.pixels[start : start+c.width : start+c.width]
}

// Pixels returns a copy of the buffer in row-major order.
func (c *Canvas) Pixels() []Color {
	out := make([]Color, len(c.pixels))
	copy(out, c.pixels)
	return out
}

// ToImage converts the canvas to an image.RGBA, clamping each channel.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.Set(x, y, c.pixels[c.Index(x, y)])
		}
	}
	return img
}

// At implements the image.Image interface.
// Coordinates outside the canvas return Black.
func (c *Canvas) At(x, y int) color.Color {
	if !c.InBounds(x, y) {
		return Black
	}
	return c.pixels[c.Index(x, y)]
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}

// ColorModel converts any color.Color to a Color. Alpha is dropped, so
// translucent inputs keep their premultiplied channels.
var ColorModel color.Model = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if col, ok := c.(Color); ok {
		return col
	}
	r, g, b, _ := c.RGBA()
	return Color{R: float32(r) / 0xffff, G: float32(g) / 0xffff, B: float32(b) / 0xffff}
}
