package spectrum

import "sort"

// Peak is a local maximum located with sub-bin precision.
type Peak struct {
	Bin   int     // index of the local maximum
	Pos   float64 // interpolated fractional bin
	Value float64 // interpolated height
}

// FindPeaks returns strict local maxima of values that reach at least
// threshold, ordered by bin. Endpoints are never reported.
func FindPeaks(values []float64, threshold float64) []Peak {
	var peaks []Peak
	for i := 1; i < len(values)-1; i++ {
		v := values[i]
		if v < threshold || v <= values[i-1] || v < values[i+1] {
			continue
		}
		pos, height := ParabolicInterpolate(values[i-1], v, values[i+1])
		peaks = append(peaks, Peak{Bin: i, Pos: float64(i) + pos, Value: height})
	}
	return peaks
}

// Strongest returns the n highest peaks, re-sorted by bin.
func Strongest(peaks []Peak, n int) []Peak {
	if n <= 0 {
		return nil
	}
	sorted := append([]Peak(nil), peaks...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Bin < sorted[j].Bin })
	return sorted
}

// ParabolicInterpolate fits a parabola through three equally spaced points
// and returns the vertex offset (in [-0.5, 0.5] for a true maximum) relative
// to the centre point and the vertex height.
func ParabolicInterpolate(left, centre, right float64) (offset, height float64) {
	den := left - 2*centre + right
	if den == 0 {
		return 0, centre
	}
	offset = 0.5 * (left - right) / den
	height = centre - 0.25*(left-right)*offset
	return offset, height
}
