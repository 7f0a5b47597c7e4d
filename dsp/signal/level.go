package signal

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// PeakAbs returns the largest absolute sample value, 0 for empty input.
func PeakAbs(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return vecmath.MaxAbs(data)
}

// Normalize scales data to target peak amplitude and returns a new slice.
// Silent input yields zeros.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	out := make([]float64, len(data))
	maxAbs := PeakAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
