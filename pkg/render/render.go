// Package render fills a pixel buffer with the escape-time intensities of
// the Mandelbrot set.
package render

import (
	"github.com/anthonynsimon/bild/parallel"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/transforms"
	"image"
)

// Params are the inputs of a single render.
type Params struct {
	Width, Height int

	// CaptureRadius is the escape threshold on |z|. It also sets the framing:
	// the pixel (Width/CaptureRadius, Height/CaptureRadius) maps to the origin.
	CaptureRadius float64

	MaxIterations int

	// Scale is the size of one pixel in the complex plane.
	Scale float64
}

// Viewport is the map from pixel coordinates to the complex plane.
func (p Params) Viewport() transforms.Linear {
	return transforms.Linear{
		Offset: complex(
			float64(p.Width)/p.CaptureRadius,
			float64(p.Height)/p.CaptureRadius,
		),
		Scale: p.Scale,
	}
}

// Draw renders p into a new Width x Height image. Every pixel is opaque gray,
// with R = G = B = escape.Intensity of the pixel's point.
//
// Rows are split into bands rendered concurrently. Bands never overlap, so
// the shared buffer needs no locking.
func Draw(p Params) *image.NRGBA {
	if p.Width <= 0 || p.Height <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}

	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	view := p.Viewport()

	parallel.Line(p.Height, func(start, end int) {
		for y := start; y < end; y++ {
			row := img.Pix[y*img.Stride : y*img.Stride+p.Width*4]

			for x := 0; x < p.Width; x++ {
				v := escape.Intensity(view.Pixel(x, y), p.MaxIterations, p.CaptureRadius)

				px := row[x*4 : x*4+4 : x*4+4]
				px[0] = v
				px[1] = v
				px[2] = v
				px[3] = 0xff
			}
		}
	})

	return img
}
