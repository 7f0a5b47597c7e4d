package core

import "math"

// ProcessorConfig defines the timing settings shared by the synthesis stages.
type ProcessorConfig struct {
	SampleRate  float64
	FramePeriod float64 // seconds per synthesis frame
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns 16 kHz audio with 10 ms frames.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:  16000,
		FramePeriod: 0.010,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 0) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFramePeriod sets the frame period in seconds.
func WithFramePeriod(seconds float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if seconds > 0 && !math.IsInf(seconds, 0) {
			cfg.FramePeriod = seconds
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SamplesPerFrame returns round(SampleRate * FramePeriod).
func (c ProcessorConfig) SamplesPerFrame() int {
	return int(math.Round(c.SampleRate * c.FramePeriod))
}

// DurationSamples converts a duration in seconds to a whole sample count.
func (c ProcessorConfig) DurationSamples(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Round(c.SampleRate * seconds))
}
