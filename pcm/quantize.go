package pcm

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-formant/dsp/signal"
)

// MaxAmplitude is the largest 16-bit sample magnitude produced.
const MaxAmplitude = 32767

// Peak returns the largest absolute sample value.
func Peak(samples []float64) float64 {
	return signal.PeakAbs(samples)
}

// Scale returns the factor that maps the peak of samples to MaxAmplitude,
// or 0 for silent input.
func Scale(samples []float64) float64 {
	peak := Peak(samples)
	if peak == 0 {
		return 0
	}
	return MaxAmplitude / peak
}

// Quantize normalizes samples and truncates them to 16-bit integers.
// Samples at the peak map to exactly ±MaxAmplitude.
func Quantize(samples []float64) []int {
	out := make([]int, len(samples))
	peak := Peak(samples)
	if peak == 0 {
		return out
	}

	scaled := make([]float64, len(samples))
	vecmath.ScaleBlock(scaled, samples, MaxAmplitude/peak)
	for i, v := range scaled {
		switch {
		case samples[i] == peak:
			out[i] = MaxAmplitude
		case samples[i] == -peak:
			out[i] = -MaxAmplitude
		default:
			out[i] = int(math.Trunc(v))
		}
	}
	return out
}
