package resonator

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-formant/dsp/filter/biquad"
)

// Resonator is a two-pole all-pole section with its own sample history.
type Resonator struct {
	sampleRate float64
	dt         float64

	freq, bw float64
	a1, a2   float64
	y1, y2   float64
}

// New returns a disabled resonator for the given sample rate.
func New(sampleRate float64) (*Resonator, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("resonator sample rate must be > 0 and finite: %f", sampleRate)
	}
	return &Resonator{sampleRate: sampleRate, dt: 1 / sampleRate}, nil
}

// Init derives coefficients for freq/bw and clears the history.
func (r *Resonator) Init(freq, bw float64) {
	r.SetTarget(freq, bw)
	r.y1 = 0
	r.y2 = 0
}

// SetTarget re-derives the coefficients for freq/bw. History is kept so
// parameter changes between frames do not click.
func (r *Resonator) SetTarget(freq, bw float64) {
	r.freq = freq
	r.bw = bw
	if freq == 0 || bw == 0 {
		r.a1 = 0
		r.a2 = 0
		return
	}
	radius := math.Exp(-math.Pi * bw * r.dt)
	theta := 2 * math.Pi * freq * r.dt
	r.a1 = -2 * radius * math.Cos(theta)
	r.a2 = radius * radius
}

// ProcessSample filters one sample. A disabled resonator returns x.
func (r *Resonator) ProcessSample(x float64) float64 {
	if !r.Enabled() {
		return x
	}
	y := x - r.a1*r.y1 - r.a2*r.y2
	r.y2 = r.y1
	r.y1 = y
	return y
}

// Reset clears the history without touching the coefficients.
func (r *Resonator) Reset() {
	r.y1 = 0
	r.y2 = 0
}

// Enabled reports whether the resonator filters (freq and bw both non-zero).
func (r *Resonator) Enabled() bool {
	return r.freq != 0 && r.bw != 0
}

// SampleRate returns the sample rate in Hz.
func (r *Resonator) SampleRate() float64 { return r.sampleRate }

// Frequency returns the current centre frequency in Hz.
func (r *Resonator) Frequency() float64 { return r.freq }

// Bandwidth returns the current bandwidth in Hz.
func (r *Resonator) Bandwidth() float64 { return r.bw }

// Radius returns the pole radius r, or 0 when disabled.
func (r *Resonator) Radius() float64 {
	return math.Sqrt(r.a2)
}

// Angle returns the pole angle in radians, or 0 when disabled.
func (r *Resonator) Angle() float64 {
	if !r.Enabled() {
		return 0
	}
	return 2 * math.Pi * r.freq * r.dt
}

// Coefficients returns the recursion as biquad coefficients with B0 = 1.
// A disabled resonator maps to a passthrough section.
func (r *Resonator) Coefficients() biquad.Coefficients {
	return biquad.Coefficients{B0: 1, A1: r.a1, A2: r.a2}
}

// State returns the history [y1, y2].
func (r *Resonator) State() [2]float64 {
	return [2]float64{r.y1, r.y2}
}
