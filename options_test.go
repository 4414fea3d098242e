package trtc

import "testing"

func TestDefaultCanvasOptions(t *testing.T) {
	o := defaultCanvasOptions()
	if o.background != Black {
		t.Errorf("default background = %v, want black", o.background)
	}
}

func TestWithBackground(t *testing.T) {
	o := defaultCanvasOptions()
	WithBackground(White)(&o)
	if o.background != White {
		t.Errorf("background = %v, want white", o.background)
	}
}

func TestCanvasOptions_LastWins(t *testing.T) {
	c := NewCanvas(1, 1, WithBackground(Red), WithBackground(Green))
	if got := c.PixelAt(0, 0); got != Green {
		t.Errorf("PixelAt(0, 0) = %v, want green", got)
	}
}
