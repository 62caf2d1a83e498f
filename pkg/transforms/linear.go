package transforms

// Linear maps a point in pixel space onto the complex plane.
// Each axis is shifted by the matching component of Offset and then
// multiplied by Scale.
type Linear struct {
	Offset complex128
	Scale  float64
}

func (l Linear) Next(z complex128) complex128 {
	return complex(
		(real(z)-real(l.Offset))*l.Scale,
		(imag(z)-imag(l.Offset))*l.Scale,
	)
}

// Pixel is Next applied to the integer pixel coordinate (x, y).
func (l Linear) Pixel(x, y int) complex128 {
	return l.Next(complex(float64(x), float64(y)))
}
