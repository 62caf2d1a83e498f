package render

import (
	"github.com/willbeason/mandelbrot/pkg/escape"
	"image"
	"testing"
)

func TestViewport(t *testing.T) {
	p := Params{Width: 500, Height: 400, CaptureRadius: 2.0, MaxIterations: 255, Scale: 3.0 / 500}
	view := p.Viewport()

	if view.Offset != complex(250, 200) {
		t.Errorf("Offset: got %v, want (250+200i)", view.Offset)
	}
	if view.Scale != p.Scale {
		t.Errorf("Scale: got %v, want %v", view.Scale, p.Scale)
	}

	if got := view.Pixel(250, 200); got != 0 {
		t.Errorf("Pixel(250, 200): got %v, want 0", got)
	}
}

func TestDraw_TwoByTwo(t *testing.T) {
	img := Draw(Params{Width: 2, Height: 2, CaptureRadius: 2.0, MaxIterations: 10, Scale: 1.0})

	if b := img.Bounds(); b != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds: got %v, want (0,0)-(2,2)", b)
	}

	// Pixels map to -1-1i, 0-1i, -1+0i and 0+0i. Only -1-1i escapes, at i=2.
	want := map[image.Point]uint8{
		image.Pt(0, 0): 51,
		image.Pt(1, 0): 0,
		image.Pt(0, 1): 0,
		image.Pt(1, 1): 0,
	}

	for pt, v := range want {
		c := img.NRGBAAt(pt.X, pt.Y)
		if c.R != c.G || c.G != c.B {
			t.Errorf("pixel %v is not gray: %v", pt, c)
		}
		if c.R != v {
			t.Errorf("pixel %v: got %d, want %d", pt, c.R, v)
		}
		if c.A != 0xff {
			t.Errorf("pixel %v: alpha %d, want 255", pt, c.A)
		}
	}
}

func TestDraw_MatchesEvaluator(t *testing.T) {
	p := Params{Width: 97, Height: 61, CaptureRadius: 2.0, MaxIterations: 64, Scale: 3.0 / 97}
	img := Draw(p)
	view := p.Viewport()

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			want := escape.Intensity(view.Pixel(x, y), p.MaxIterations, p.CaptureRadius)

			c := img.NRGBAAt(x, y)
			if c.R != want || c.G != want || c.B != want {
				t.Fatalf("pixel (%d,%d): got %v, want gray %d", x, y, c, want)
			}
		}
	}
}

func TestDraw_EveryPixelWritten(t *testing.T) {
	// Tall enough that rows are split across several goroutines.
	p := Params{Width: 13, Height: 1031, CaptureRadius: 2.0, MaxIterations: 8, Scale: 0.01}
	img := Draw(p)

	// A fresh NRGBA buffer is all zeros; rendered pixels are always opaque.
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if a := img.NRGBAAt(x, y).A; a != 0xff {
				t.Fatalf("pixel (%d,%d) not written: alpha %d", x, y, a)
			}
		}
	}
}

func TestDraw_ProducesGradient(t *testing.T) {
	img := Draw(Params{Width: 200, Height: 200, CaptureRadius: 2.0, MaxIterations: 255, Scale: 3.0 / 200})

	seen := make(map[uint8]bool)
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			seen[img.NRGBAAt(x, y).R] = true
		}
	}

	if len(seen) < 3 {
		t.Errorf("expected several distinct intensities, got %d", len(seen))
	}
}

func TestDraw_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"zero width", Params{Width: 0, Height: 10, CaptureRadius: 2, MaxIterations: 10, Scale: 1}},
		{"zero height", Params{Width: 10, Height: 0, CaptureRadius: 2, MaxIterations: 10, Scale: 1}},
		{"negative", Params{Width: -3, Height: 5, CaptureRadius: 2, MaxIterations: 10, Scale: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Draw(tt.p)
			if !img.Bounds().Empty() {
				t.Errorf("bounds: got %v, want empty", img.Bounds())
			}
		})
	}
}

func TestDraw_ZeroIterations(t *testing.T) {
	img := Draw(Params{Width: 4, Height: 3, CaptureRadius: 2, MaxIterations: 0, Scale: 1})

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := img.NRGBAAt(x, y); c.R != 0 || c.A != 0xff {
				t.Errorf("pixel (%d,%d): got %v, want opaque black", x, y, c)
			}
		}
	}
}
