package testutil

import (
	"math"
	"math/rand/v2"
)

// Sine returns length samples of amplitude*sin(2*pi*freqHz*n/sampleRate).
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	return Tones(sampleRate, length, []float64{freqHz}, []float64{amplitude})
}

// Tones sums zero-phase sines. Frequencies without a matching amplitude
// are skipped.
func Tones(sampleRate float64, length int, freqs, amps []float64) []float64 {
	out := make([]float64, length)
	for k := range min(len(freqs), len(amps)) {
		w := 2 * math.Pi * freqs[k] / sampleRate
		for n := range out {
			out[n] += amps[k] * math.Sin(w*float64(n))
		}
	}
	return out
}

// Noise returns uniform noise in [-amplitude, amplitude) seeded from a PCG
// source, so the same seed always yields the same samples.
func Noise(seed uint64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
	out := make([]float64, length)
	for n := range out {
		out[n] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// Constant returns length copies of v.
func Constant(v float64, length int) []float64 {
	out := make([]float64, length)
	for n := range out {
		out[n] = v
	}
	return out
}
