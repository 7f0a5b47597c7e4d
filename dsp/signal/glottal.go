package signal

import (
	"fmt"
	"math"
)

const (
	// DefaultOpenQuotient is the opening-phase fraction of the pitch period.
	DefaultOpenQuotient = 0.3
	// DefaultClosingQuotient is the closing-phase fraction of the pitch period.
	DefaultClosingQuotient = 0.05
)

// GlottalOption mutates glottal construction parameters.
type GlottalOption func(*glottalConfig) error

type glottalConfig struct {
	open    float64
	closing float64
}

func defaultGlottalConfig() glottalConfig {
	return glottalConfig{open: DefaultOpenQuotient, closing: DefaultClosingQuotient}
}

// WithGlottalQuotients sets the opening and closing fractions of the period.
// Both must be positive with open+closing <= 1.
func WithGlottalQuotients(open, closing float64) GlottalOption {
	return func(cfg *glottalConfig) error {
		if open <= 0 || math.IsNaN(open) || math.IsInf(open, 0) {
			return fmt.Errorf("glottal open quotient must be > 0 and finite: %f", open)
		}
		if closing <= 0 || math.IsNaN(closing) || math.IsInf(closing, 0) {
			return fmt.Errorf("glottal closing quotient must be > 0 and finite: %f", closing)
		}
		if open+closing > 1 {
			return fmt.Errorf("glottal open+closing quotient must be <= 1: %f", open+closing)
		}
		cfg.open = open
		cfg.closing = closing
		return nil
	}
}

// Glottal generates the first difference of a pulse that rises as a half
// sine over the opening phase, falls as a negative half sine over the
// closing phase and stays at zero for the rest of the period.
type Glottal struct {
	dt      float64
	open    float64
	closing float64

	phase   float64
	lastRaw float64
}

// NewGlottal creates a glottal source at the given sample rate.
func NewGlottal(sampleRate float64, opts ...GlottalOption) (*Glottal, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("glottal sample rate must be > 0 and finite: %f", sampleRate)
	}

	cfg := defaultGlottalConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Glottal{
		dt:      1 / sampleRate,
		open:    cfg.open,
		closing: cfg.closing,
	}, nil
}

// Next returns the next sample for fundamental f0 (Hz) and amplitude.
// f0 <= 0 or a zero amplitude silences the source and restarts the period.
func (g *Glottal) Next(f0, amplitude float64) float64 {
	if f0 <= 0 || amplitude == 0 {
		g.phase = 0
		g.lastRaw = 0
		return 0
	}

	t0 := 1 / f0
	g.phase = math.Mod(g.phase+g.dt, t0)

	openLen := g.open * t0
	closeLen := g.closing * t0

	var raw float64
	switch {
	case g.phase < openLen:
		raw = math.Sin(math.Pi * g.phase / openLen)
	case g.phase < openLen+closeLen:
		raw = -math.Sin(math.Pi * (g.phase - openLen) / closeLen)
	}

	out := (raw - g.lastRaw) * amplitude
	g.lastRaw = raw
	return out
}

// Reset restarts the period and clears the differentiator.
func (g *Glottal) Reset() {
	g.phase = 0
	g.lastRaw = 0
}

// Phase returns the position within the current period in seconds.
func (g *Glottal) Phase() float64 { return g.phase }

// Quotients returns the opening and closing fractions.
func (g *Glottal) Quotients() (open, closing float64) { return g.open, g.closing }
