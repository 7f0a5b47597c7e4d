// Package level computes amplitude statistics of rendered speech and splits
// it into frames marked active or silent.
package level

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-formant/dsp/core"
)

// ErrInvalidFrame is returned for unusable framing parameters.
var ErrInvalidFrame = errors.New("level: invalid frame config")

// Stats holds whole-signal amplitude statistics. Levels are in dB relative
// to full scale 1.0; silent input reports -Inf.
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMSdB         float64
	Peak          float64
	PeakdB        float64
	CrestFactordB float64 // 0 for silent input
	ZeroCrossings int
}

func ampTodB(value float64) float64 {
	return core.LinearToDB(math.Abs(value))
}

// Calculate computes Stats for signal.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{RMSdB: math.Inf(-1), PeakdB: math.Inf(-1)}
	}

	nf := float64(n)
	rms := math.Sqrt(vecmath.DotProduct(signal, signal) / nf)
	peak := vecmath.MaxAbs(signal)

	s := Stats{
		Length:        n,
		DC:            vecmath.Sum(signal) / nf,
		RMS:           rms,
		RMSdB:         ampTodB(rms),
		Peak:          peak,
		PeakdB:        ampTodB(peak),
		ZeroCrossings: ZeroCrossings(signal),
	}
	if rms > 0 {
		s.CrestFactordB = 20 * math.Log10(peak/rms)
	}
	return s
}

// ZeroCrossings counts sign changes between consecutive samples.
func ZeroCrossings(signal []float64) int {
	count := 0
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}
	return count
}

// FrameConfig controls framing.
type FrameConfig struct {
	Length      int     // samples per frame
	ThresholdDB float64 // frames below peak level + ThresholdDB are silent
}

// Frame summarizes one analysis frame.
type Frame struct {
	Start  int
	RMSdB  float64
	ZCR    float64 // zero crossings per sample
	Active bool
}

// Frames splits signal into consecutive frames of cfg.Length samples. A
// short final frame is kept. The activity threshold is relative to the
// loudest frame, so silent input has no active frames.
func Frames(signal []float64, cfg FrameConfig) ([]Frame, error) {
	if cfg.Length <= 0 {
		return nil, fmt.Errorf("%w: length must be > 0: %d", ErrInvalidFrame, cfg.Length)
	}
	if cfg.ThresholdDB > 0 || math.IsNaN(cfg.ThresholdDB) {
		return nil, fmt.Errorf("%w: threshold must be <= 0 dB: %f", ErrInvalidFrame, cfg.ThresholdDB)
	}

	frames := make([]Frame, 0, (len(signal)+cfg.Length-1)/cfg.Length)
	loudest := math.Inf(-1)
	for start := 0; start < len(signal); start += cfg.Length {
		seg := signal[start:min(start+cfg.Length, len(signal))]
		rms := math.Sqrt(vecmath.DotProduct(seg, seg) / float64(len(seg)))
		f := Frame{
			Start: start,
			RMSdB: ampTodB(rms),
			ZCR:   float64(ZeroCrossings(seg)) / float64(len(seg)),
		}
		loudest = max(loudest, f.RMSdB)
		frames = append(frames, f)
	}

	if math.IsInf(loudest, -1) {
		return frames, nil
	}
	for i := range frames {
		frames[i].Active = frames[i].RMSdB >= loudest+cfg.ThresholdDB
	}
	return frames, nil
}

// ActiveSpan returns the first and one-past-last active sample covered by
// frames, or ok == false when no frame is active.
func ActiveSpan(frames []Frame, frameLen int) (start, end int, ok bool) {
	first, last := -1, -1
	for i, f := range frames {
		if f.Active {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0, 0, false
	}
	return frames[first].Start, frames[last].Start + frameLen, true
}
