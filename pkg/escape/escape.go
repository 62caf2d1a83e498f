// Package escape computes escape-time intensities for points of the
// complex plane under the Mandelbrot recurrence.
package escape

import (
	"github.com/willbeason/mandelbrot/pkg/transforms"
	"math/cmplx"
)

// MaxIntensity is the upper end of the 8-bit intensity range.
const MaxIntensity = 255.0

// Iterations iterates z -> z^2 + c from z = 0 at most maxIterations times.
// It returns the zero-based index of the first iteration whose modulus
// exceeds captureRadius, and whether that happened at all.
//
// A modulus of NaN never compares greater than captureRadius, so orbits
// that overflow to NaN count as not escaping.
func Iterations(c complex128, maxIterations int, captureRadius float64) (int, bool) {
	m := transforms.Mandelbrot{}
	z := complex(0, 0)

	for i := 0; i < maxIterations; i++ {
		z = m.Next(z, c)

		if cmplx.Abs(z) > captureRadius {
			return i, true
		}
	}

	return maxIterations, false
}

// Shade maps an escape index onto 0..255 as floor(i / maxIterations * 255).
func Shade(i int, maxIterations int) uint8 {
	return uint8(float64(i) / float64(maxIterations) * MaxIntensity)
}

// Intensity is the grayscale value of c. Points that never escape within
// maxIterations are 0, as are points escaping on the very first iteration.
func Intensity(c complex128, maxIterations int, captureRadius float64) uint8 {
	i, escaped := Iterations(c, maxIterations, captureRadius)
	if !escaped {
		return 0
	}

	return Shade(i, maxIterations)
}
