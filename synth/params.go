package synth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-formant/dsp/interp"
)

// NumFormants is the number of parallel formant resonators.
const NumFormants = 6

// Formant is a resonance target in Hz.
type Formant struct {
	Freq float64
	BW   float64
}

// Params holds the per-frame synthesis targets of one phoneme.
type Params struct {
	F0       float64              // fundamental frequency, Hz
	Formants [NumFormants]Formant // F1..F6 with bandwidths
	Nasal    Formant              // noise-branch shaping resonance
	AF       float64              // voiced amplitude
	AN       float64              // unvoiced amplitude
}

// Validate rejects non-finite values and negative frequencies or bandwidths.
func (p *Params) Validate() error {
	check := func(name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite: %f", name, v)
		}
		return nil
	}
	checkFormant := func(name string, f Formant) error {
		if err := check(name+" frequency", f.Freq); err != nil {
			return err
		}
		if err := check(name+" bandwidth", f.BW); err != nil {
			return err
		}
		if f.Freq < 0 || f.BW < 0 {
			return fmt.Errorf("%s must be >= 0: %g/%g", name, f.Freq, f.BW)
		}
		return nil
	}

	if err := check("f0", p.F0); err != nil {
		return err
	}
	for i, f := range p.Formants {
		if err := checkFormant(fmt.Sprintf("formant %d", i+1), f); err != nil {
			return err
		}
	}
	if err := checkFormant("nasal formant", p.Nasal); err != nil {
		return err
	}
	if err := check("voiced amplitude", p.AF); err != nil {
		return err
	}
	return check("unvoiced amplitude", p.AN)
}

// Interpolate blends every parameter of p1 towards p2 by frame/totalFrames.
// The fraction is not clamped. totalFrames <= 0 returns p1.
func Interpolate(p1, p2 Params, totalFrames, frame int) Params {
	if totalFrames <= 0 {
		return p1
	}
	t := interp.Fraction(frame, totalFrames)

	out := Params{
		F0: interp.Linear(p1.F0, p2.F0, t),
		AF: interp.Linear(p1.AF, p2.AF, t),
		AN: interp.Linear(p1.AN, p2.AN, t),
		Nasal: Formant{
			Freq: interp.Linear(p1.Nasal.Freq, p2.Nasal.Freq, t),
			BW:   interp.Linear(p1.Nasal.BW, p2.Nasal.BW, t),
		},
	}
	for i := range out.Formants {
		out.Formants[i] = Formant{
			Freq: interp.Linear(p1.Formants[i].Freq, p2.Formants[i].Freq, t),
			BW:   interp.Linear(p1.Formants[i].BW, p2.Formants[i].BW, t),
		}
	}
	return out
}
