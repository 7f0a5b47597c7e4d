// Package dcblock designs the first-order DC-removal high-pass applied to
// the summed formant output.
//
//	y[n] = b0*(x[n] - x[n-1]) + a*y[n-1]
//	a    = (1 - wc) / (1 + wc),  wc = 2*pi*fc/fs
//	b0   = (1 + a) / 2
//
// The gain b0 normalises the response to unity at Nyquist. The feedback
// term is added, so the pole sits at z = +a and the stage is a true
// high-pass; subtracting it would move the pole to -a, boosting the band
// near Nyquist by tens of decibels.
package dcblock

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-formant/dsp/filter/biquad"
)

// DefaultCutoffHz is the cutoff used by the synthesizer.
const DefaultCutoffHz = 50.0

// Design returns the blocker as biquad coefficients. The caller must pass
// 0 < cutoffHz < sampleRate/2.
func Design(cutoffHz, sampleRate float64) biquad.Coefficients {
	wc := 2 * math.Pi * cutoffHz / sampleRate
	a := (1 - wc) / (1 + wc)
	b0 := (1 + a) / 2
	return biquad.Coefficients{B0: b0, B1: -b0, A1: -a}
}

// New validates the arguments and returns a zero-state section running the
// designed blocker.
func New(cutoffHz, sampleRate float64) (*biquad.Section, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("dcblock sample rate must be > 0 and finite: %f", sampleRate)
	}
	if cutoffHz <= 0 || cutoffHz >= sampleRate/2 || math.IsNaN(cutoffHz) {
		return nil, fmt.Errorf("dcblock cutoff must be in (0, %f): %f", sampleRate/2, cutoffHz)
	}
	return biquad.NewSection(Design(cutoffHz, sampleRate)), nil
}
