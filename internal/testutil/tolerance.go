package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and agree element-wise within eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	d, err := MaxAbsDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if d <= eps {
		return
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > eps {
			t.Fatalf("[%d] got %v, want %v (tolerance %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireFinite fails t on the first NaN or infinity.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("[%d] is %v", i, v)
		}
	}
}

// RequireZero fails t unless every element is exactly zero.
func RequireZero(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if v != 0 {
			t.Fatalf("[%d] got %v, want exact 0", i, v)
		}
	}
}

// MaxAbsDiff returns the largest element-wise distance between a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("testutil: lengths differ: %d vs %d", len(a), len(b))
	}
	var d float64
	for i := range a {
		d = max(d, math.Abs(a[i]-b[i]))
	}
	return d, nil
}
