package transforms

// Mandelbrot is the quadratic recurrence z -> z^2 + c whose bounded orbits
// starting from z = 0 define the Mandelbrot set.
type Mandelbrot struct{}

func (Mandelbrot) Next(z complex128, c complex128) complex128 {
	return z*z + c
}
