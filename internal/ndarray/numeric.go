package ndarray

import "math"

// Default tolerances for close comparisons. Chosen so that a value near
// zero still compares close to a small-magnitude counterpart.
const (
	DefaultAtol = 1e-8
	DefaultRtol = 1e-5
)

// Modulo wraps v into [0, n) using Euclidean modulo, so negative values
// wrap from the top.
func Modulo(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

// CloseEnough reports whether a and b are equal within the combined
// tolerance atol + rtol*|b|. With both tolerances zero it reduces to
// exact equality.
func CloseEnough[T Numeric](a, b T, atol, rtol float64) bool {
	fa, fb := float64(a), float64(b)
	return math.Abs(fa-fb) <= atol+rtol*math.Abs(fb)
}
