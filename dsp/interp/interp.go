package interp

// Linear blends a and b by t. t is not clamped: values outside [0, 1]
// extrapolate along the same line.
func Linear(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Fraction returns i/n, or 0 when n <= 0.
func Fraction(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i) / float64(n)
}
