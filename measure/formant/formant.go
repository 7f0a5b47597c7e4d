// Package formant locates spectral peaks in rendered speech so formant
// placement can be checked against the phoneme targets.
package formant

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/cwbudde/algo-formant/dsp/core"
	"github.com/cwbudde/algo-formant/dsp/spectrum"
	"github.com/cwbudde/algo-formant/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
)

const (
	defaultMinFreq     = 150.0
	defaultMaxPeaks    = 6
	defaultThresholdDB = -40.0
)

var (
	// ErrEmptySignal is returned when there is nothing to analyze.
	ErrEmptySignal = errors.New("formant: empty signal")
	// ErrInvalidConfig is returned for unusable analysis settings.
	ErrInvalidConfig = errors.New("formant: invalid config")
)

// Config holds peak analysis parameters.
type Config struct {
	SampleRate  float64
	FFTSize     int         // 0 selects the next power of two >= len(signal)
	Window      window.Type // applied in periodic form
	SmoothBins  int         // moving-average half width, 0 disables
	MinFreq     float64
	MaxFreq     float64 // 0 selects Nyquist
	MaxPeaks    int
	ThresholdDB float64 // relative to the strongest bin in range
}

// DefaultConfig returns a Hann-windowed analysis reporting up to six peaks
// above 150 Hz.
func DefaultConfig(sampleRate float64) Config {
	return Config{
		SampleRate:  sampleRate,
		Window:      window.TypeHann,
		MinFreq:     defaultMinFreq,
		MaxPeaks:    defaultMaxPeaks,
		ThresholdDB: defaultThresholdDB,
	}
}

// Peak is one spectral maximum.
type Peak struct {
	Freq    float64 // Hz, sub-bin interpolated
	LevelDB float64 // relative to the strongest peak in range
}

// Result holds the detected peaks ordered by frequency.
type Result struct {
	BinHz float64
	Peaks []Peak
}

// Nearest returns the detected peak closest to freq.
func (r Result) Nearest(freq float64) (Peak, bool) {
	if len(r.Peaks) == 0 {
		return Peak{}, false
	}
	best := r.Peaks[0]
	for _, p := range r.Peaks[1:] {
		if math.Abs(p.Freq-freq) < math.Abs(best.Freq-freq) {
			best = p
		}
	}
	return best, true
}

// AnalyzeSignal windows signal, zero-pads it to the FFT size and reports
// the strongest spectral peaks.
func AnalyzeSignal(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}
	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidConfig, cfg.SampleRate)
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}
	if fftSize < len(signal) || fftSize < 2 {
		return Result{}, fmt.Errorf("%w: fft size %d shorter than signal %d", ErrInvalidConfig, fftSize, len(signal))
	}

	windowed, err := window.ApplyCoefficients(signal,
		window.Generate(cfg.Window, len(signal), window.WithPeriodic()))
	if err != nil {
		return Result{}, err
	}

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, err
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, err
	}

	cfg.FFTSize = fftSize
	return Analyze(spectrum.Magnitude(out[:fftSize/2+1]), cfg)
}

// Analyze finds peaks in a magnitude spectrum holding bins [0..Nyquist].
func Analyze(mag []float64, cfg Config) (Result, error) {
	if len(mag) < 3 {
		return Result{}, ErrEmptySignal
	}
	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidConfig, cfg.SampleRate)
	}
	if cfg.FFTSize <= 0 {
		cfg.FFTSize = 2 * (len(mag) - 1)
	}
	if cfg.MaxPeaks <= 0 {
		cfg.MaxPeaks = defaultMaxPeaks
	}

	binHz := cfg.SampleRate / float64(cfg.FFTSize)
	maxBin := len(mag) - 1
	maxFreq := cfg.MaxFreq
	if maxFreq <= 0 {
		maxFreq = cfg.SampleRate / 2
	}
	lo := clampInt(int(math.Floor(cfg.MinFreq/binHz)), 0, maxBin)
	hi := clampInt(int(math.Ceil(maxFreq/binHz)), lo, maxBin)

	env := mag
	if cfg.SmoothBins > 0 {
		var err error
		if env, err = spectrum.SmoothMovingAverage(mag, cfg.SmoothBins); err != nil {
			return Result{}, err
		}
	}

	ref := 0.0
	for _, v := range env[lo : hi+1] {
		ref = max(ref, v)
	}
	res := Result{BinHz: binHz}
	if ref == 0 {
		return res, nil
	}

	threshold := ref * math.Pow(10, cfg.ThresholdDB/20)
	// Include one guard bin either side so edge bins of the range qualify.
	glo := max(lo-1, 0)
	ghi := min(hi+1, maxBin)
	candidates := spectrum.FindPeaks(env[glo:ghi+1], threshold)

	inRange := candidates[:0]
	for _, p := range candidates {
		bin := p.Bin + glo
		if bin < lo || bin > hi {
			continue
		}
		p.Bin = bin
		p.Pos += float64(glo)
		inRange = append(inRange, p)
	}

	strongest := spectrum.Strongest(inRange, cfg.MaxPeaks)
	top := 0.0
	for _, p := range strongest {
		top = max(top, p.Value)
	}
	for _, p := range strongest {
		res.Peaks = append(res.Peaks, Peak{
			Freq:    p.Pos * binHz,
			LevelDB: core.LinearToDB(p.Value / top),
		})
	}
	return res, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
