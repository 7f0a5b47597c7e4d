package synth

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-formant/dsp/buffer"
	"github.com/cwbudde/algo-formant/dsp/core"
	"github.com/cwbudde/algo-formant/dsp/filter/dcblock"
	"github.com/cwbudde/algo-formant/dsp/signal"
)

const (
	// DefaultWordPause is the silence inserted between words of a phrase.
	DefaultWordPause = 0.25
	// DefaultMaxDuration bounds a rendered utterance in seconds.
	DefaultMaxDuration = 10.0
)

// Option mutates session construction parameters.
type Option func(*config) error

type config struct {
	proc        core.ProcessorConfig
	seed        uint32
	open        float64
	closing     float64
	dcCutoff    float64
	wordPause   float64
	maxDuration float64
	overrun     buffer.Policy
	logger      *slog.Logger
}

func defaultConfig() config {
	return config{
		proc:        core.ApplyProcessorOptions(),
		seed:        signal.DefaultSeed,
		open:        signal.DefaultOpenQuotient,
		closing:     signal.DefaultClosingQuotient,
		dcCutoff:    dcblock.DefaultCutoffHz,
		wordPause:   DefaultWordPause,
		maxDuration: DefaultMaxDuration,
		overrun:     buffer.PolicyFail,
	}
}

func positiveFinite(name string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be > 0 and finite: %f", name, v)
	}
	return nil
}

// WithSampleRate sets the output sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) error {
		if err := positiveFinite("synth sample rate", sampleRate); err != nil {
			return err
		}
		core.WithSampleRate(sampleRate)(&cfg.proc)
		return nil
	}
}

// WithFramePeriod sets the frame period in seconds.
func WithFramePeriod(seconds float64) Option {
	return func(cfg *config) error {
		if err := positiveFinite("synth frame period", seconds); err != nil {
			return err
		}
		core.WithFramePeriod(seconds)(&cfg.proc)
		return nil
	}
}

// WithSeed sets the noise generator state restored by Reset.
func WithSeed(seed uint32) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		return nil
	}
}

// WithGlottalQuotients sets the opening and closing fractions of the pitch
// period.
func WithGlottalQuotients(open, closing float64) Option {
	return func(cfg *config) error {
		cfg.open = open
		cfg.closing = closing
		return nil
	}
}

// WithDCCutoff sets the DC blocker cutoff in Hz.
func WithDCCutoff(hz float64) Option {
	return func(cfg *config) error {
		if err := positiveFinite("synth dc cutoff", hz); err != nil {
			return err
		}
		cfg.dcCutoff = hz
		return nil
	}
}

// WithWordPause sets the silence between phrase words in seconds. Zero
// disables the pause.
func WithWordPause(seconds float64) Option {
	return func(cfg *config) error {
		if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return fmt.Errorf("synth word pause must be >= 0 and finite: %f", seconds)
		}
		cfg.wordPause = seconds
		return nil
	}
}

// WithMaxDuration bounds rendered utterances in seconds.
func WithMaxDuration(seconds float64) Option {
	return func(cfg *config) error {
		if err := positiveFinite("synth max duration", seconds); err != nil {
			return err
		}
		cfg.maxDuration = seconds
		return nil
	}
}

// WithOverrunPolicy selects what rendered buffers do when synthesis writes
// past their length.
func WithOverrunPolicy(p buffer.Policy) Option {
	return func(cfg *config) error {
		switch p {
		case buffer.PolicyFail, buffer.PolicyGrow, buffer.PolicyTruncate:
			cfg.overrun = p
			return nil
		default:
			return fmt.Errorf("synth overrun policy unknown: %d", p)
		}
	}
}

// WithLogger routes debug records to l. Sessions are silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = l
		return nil
	}
}
