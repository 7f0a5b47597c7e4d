package synth

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/cwbudde/algo-formant/dsp/buffer"
	"github.com/cwbudde/algo-formant/dsp/core"
	"github.com/cwbudde/algo-formant/dsp/filter/biquad"
	"github.com/cwbudde/algo-formant/dsp/filter/dcblock"
	"github.com/cwbudde/algo-formant/dsp/filter/resonator"
	"github.com/cwbudde/algo-formant/dsp/signal"
)

// Session holds the complete synthesis state of one voice.
type Session struct {
	mu sync.Mutex

	cfg             config
	samplesPerFrame int
	logger          *slog.Logger

	formants [NumFormants]*resonator.Resonator
	nasal    *resonator.Resonator
	glottal  *signal.Glottal
	noise    *signal.Noise
	dc       *biquad.Section

	pool *buffer.Pool
}

// NewSession validates the options and returns a session in reset state.
func NewSession(opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	s := &Session{
		cfg:             cfg,
		samplesPerFrame: cfg.proc.SamplesPerFrame(),
		logger:          cfg.logger,
		pool:            buffer.NewPool(),
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.samplesPerFrame < 1 {
		return nil, fmt.Errorf("synth frame period must span at least one sample: %f s", cfg.proc.FramePeriod)
	}
	if exact := cfg.proc.SampleRate * cfg.proc.FramePeriod; !core.NearlyEqual(exact, float64(s.samplesPerFrame), 1e-9) {
		s.logger.Warn("frame period rounded",
			slog.Float64("exact_samples", exact),
			slog.Int("samples_per_frame", s.samplesPerFrame))
	}

	var err error
	for i := range s.formants {
		if s.formants[i], err = resonator.New(cfg.proc.SampleRate); err != nil {
			return nil, err
		}
	}
	if s.nasal, err = resonator.New(cfg.proc.SampleRate); err != nil {
		return nil, err
	}
	s.glottal, err = signal.NewGlottal(cfg.proc.SampleRate,
		signal.WithGlottalQuotients(cfg.open, cfg.closing))
	if err != nil {
		return nil, err
	}
	s.noise = signal.NewNoise(cfg.seed, s.nasal)
	if s.dc, err = dcblock.New(cfg.dcCutoff, cfg.proc.SampleRate); err != nil {
		return nil, err
	}

	s.reset()
	return s, nil
}

// SampleRate returns the output sample rate in Hz.
func (s *Session) SampleRate() float64 {
	return s.cfg.proc.SampleRate
}

// SamplesPerFrame returns the number of samples written per frame.
func (s *Session) SamplesPerFrame() int {
	return s.samplesPerFrame
}

// Reset returns every filter and source to its initial state. Rendering
// after Reset is bit-for-bit reproducible.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	for _, r := range s.formants {
		r.Init(0, 0)
	}
	s.nasal.Init(0, 0)
	s.glottal.Reset()
	s.noise.Reset(s.cfg.seed)
	s.dc.Reset()
}

// SynthesizeFrame writes one frame of p into buf and reports the buffer's
// overrun state.
func (s *Session) SynthesizeFrame(p Params, buf *buffer.Buffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.synthesizeFrame(&p, buf)
	return buf.Err()
}

// SynthesizeDiphone writes all frames of d into buf. Filter and source state
// carries over from whatever was synthesized before.
func (s *Session) SynthesizeDiphone(d *Diphone, buf *buffer.Buffer) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.synthesizeDiphone(d, buf)
}

func (s *Session) synthesizeDiphone(d *Diphone, buf *buffer.Buffer) error {
	start := buf.Cursor()

	for range d.StartFrames {
		s.synthesizeFrame(d.From, buf)
	}
	for i := range d.TransitionFrames {
		p := Interpolate(*d.From, *d.To, d.TransitionFrames, i)
		s.synthesizeFrame(&p, buf)
	}
	for range d.EndFrames {
		s.synthesizeFrame(d.To, buf)
	}

	s.logger.Debug("diphone",
		slog.String("name", d.Name),
		slog.Int("frames", d.Frames()),
		slog.Int("start", start),
		slog.Int("end", buf.Cursor()))

	return buf.Err()
}

func (s *Session) synthesizeFrame(p *Params, buf *buffer.Buffer) {
	for i, r := range s.formants {
		r.SetTarget(p.Formants[i].Freq, p.Formants[i].BW)
	}
	s.nasal.SetTarget(p.Nasal.Freq, p.Nasal.BW)

	for range s.samplesPerFrame {
		excitation := s.glottal.Next(p.F0, p.AF) + s.noise.Next(p.AN)

		var sum float64
		for _, r := range s.formants {
			sum += r.ProcessSample(excitation)
		}
		buf.Write(s.dc.ProcessSample(sum))
	}
}
