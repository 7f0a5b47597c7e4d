// Package window generates the analysis windows used before spectral
// measurement of rendered speech.
package window

import (
	"errors"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// ErrLengthMismatch is returned when samples and coefficients differ in length.
var ErrLengthMismatch = errors.New("window: samples and coefficients differ in length")

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

var names = [...]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(names) {
		return "unknown"
	}
	return names[t]
}

// ParseType resolves a window name, ignoring case.
func ParseType(name string) (Type, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return Type(i), true
		}
	}
	return TypeRectangular, false
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic drops the final endpoint so the window tiles an FFT frame.
func WithPeriodic() Option {
	return func(c *config) { c.periodic = true }
}

// Generate returns length coefficients of window t.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	span := float64(length - 1)
	if cfg.periodic || length == 1 {
		span = float64(length)
	}
	a0, a1, a2 := t.terms()
	out := make([]float64, length)
	for i := range out {
		phase := 2 * math.Pi * float64(i) / span
		out[i] = a0 - a1*math.Cos(phase) + a2*math.Cos(2*phase)
	}
	return out
}

// ApplyCoefficients returns samples multiplied element-wise by coeffs.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)
	return out, nil
}

// terms returns the generalized cosine coefficients of t.
func (t Type) terms() (a0, a1, a2 float64) {
	switch t {
	case TypeHann:
		return 0.5, 0.5, 0
	case TypeHamming:
		return 0.54, 0.46, 0
	case TypeBlackman:
		return 0.42, 0.5, 0.08
	default:
		return 1, 0, 0
	}
}
