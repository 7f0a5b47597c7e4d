package synth

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDiphone is returned for diphones with missing parameters or
// negative frame counts.
var ErrInvalidDiphone = errors.New("synth: invalid diphone")

// Diphone is a transition between two phoneme targets: StartFrames held at
// From, TransitionFrames interpolated towards To, then EndFrames held at To.
type Diphone struct {
	Name             string
	From             *Params
	To               *Params
	StartFrames      int
	TransitionFrames int
	EndFrames        int
}

// Frames returns the total frame count, saturating at math.MaxInt.
func (d *Diphone) Frames() int {
	return addSat(addSat(d.StartFrames, d.TransitionFrames), d.EndFrames)
}

// Validate checks the parameter pointers, frame counts and parameter values.
func (d *Diphone) Validate() error {
	if d.From == nil || d.To == nil {
		return fmt.Errorf("%w %q: missing phoneme parameters", ErrInvalidDiphone, d.Name)
	}
	if d.StartFrames < 0 || d.TransitionFrames < 0 || d.EndFrames < 0 {
		return fmt.Errorf("%w %q: negative frame count %d/%d/%d",
			ErrInvalidDiphone, d.Name, d.StartFrames, d.TransitionFrames, d.EndFrames)
	}
	if err := d.From.Validate(); err != nil {
		return fmt.Errorf("%w %q: from: %w", ErrInvalidDiphone, d.Name, err)
	}
	if err := d.To.Validate(); err != nil {
		return fmt.Errorf("%w %q: to: %w", ErrInvalidDiphone, d.Name, err)
	}
	return nil
}

// addSat and mulSat clamp non-negative counts to math.MaxInt instead of
// wrapping, so oversized utterances still fail the length check.
func addSat(a, b int) int {
	if a > 0 && b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}

func mulSat(a, b int) int {
	if a > 0 && b > 0 && a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
