package spectrum

import (
	"errors"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// ErrEmpty is returned by the smoothing helpers for empty input.
var ErrEmpty = errors.New("spectrum: empty input")

// splitPool recycles the real/imaginary planes handed to vecmath.
var splitPool = sync.Pool{New: func() any { return new([]float64) }}

// Magnitude returns |X[k]| for every bin. Only the result is allocated in
// steady state.
func Magnitude(bins []complex128) []float64 {
	n := len(bins)
	if n == 0 {
		return nil
	}

	planes := splitPool.Get().(*[]float64)
	if cap(*planes) < 2*n {
		*planes = make([]float64, 2*n)
	}
	re, im := (*planes)[:n], (*planes)[n:2*n]
	for k, c := range bins {
		re[k], im[k] = real(c), imag(c)
	}

	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)
	splitPool.Put(planes)
	return out
}

// SmoothMovingAverage averages each value with halfWidth neighbours on
// either side. The window shrinks at the edges.
func SmoothMovingAverage(values []float64, halfWidth int) ([]float64, error) {
	switch {
	case len(values) == 0:
		return nil, ErrEmpty
	case halfWidth < 0:
		return nil, errors.New("spectrum: negative smoothing half width")
	}

	running := make([]float64, len(values)+1)
	for i, v := range values {
		running[i+1] = running[i] + v
	}
	out := make([]float64, len(values))
	for i := range out {
		lo, hi := max(0, i-halfWidth), min(len(values), i+halfWidth+1)
		out[i] = (running[hi] - running[lo]) / float64(hi-lo)
	}
	return out, nil
}
