package trtc

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default black canvas
//	c := trtc.NewCanvas(800, 600)
//
//	// Canvas cleared to white
//	c := trtc.NewCanvas(800, 600, trtc.WithBackground(trtc.White))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	background Color
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		background: Black,
	}
}

// WithBackground sets the color every cell starts with.
// Without it, cells start black.
func WithBackground(c Color) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}
