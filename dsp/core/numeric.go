package core

import "math"

// NearlyEqual reports whether a and b agree within eps, either absolutely
// or relative to the larger magnitude. A non-positive eps means 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = 1e-12
	}
	d := math.Abs(a - b)
	return d <= eps || d <= eps*math.Max(math.Abs(a), math.Abs(b))
}

// LinearToDB converts an amplitude ratio to decibels.
func LinearToDB(linear float64) float64 {
	return 2 * PowerToDB(linear)
}

// PowerToDB converts a power ratio to decibels: -Inf for 0, NaN below 0.
func PowerToDB(power float64) float64 {
	switch {
	case power < 0:
		return math.NaN()
	case power == 0:
		return math.Inf(-1)
	}
	return 10 * math.Log10(power)
}
