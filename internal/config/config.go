// Package config loads the saydate configuration from YAML with FORMANT_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-formant/dsp/buffer"
	"github.com/cwbudde/algo-formant/synth"
)

type SynthConfig struct {
	SampleRate    int     `yaml:"sample_rate"`
	FramePeriodMS float64 `yaml:"frame_period_ms"`
	WordPauseMS   int     `yaml:"word_pause_ms"`
	MaxDurationMS int     `yaml:"max_duration_ms"`
	DCCutoffHz    float64 `yaml:"dc_cutoff_hz"`
	Seed          int64   `yaml:"seed"`
	Overrun       string  `yaml:"overrun"` // fail, grow, truncate
}

type LexiconConfig struct {
	PhonemesPath string `yaml:"phonemes_path"`
	WordsPath    string `yaml:"words_path"`
}

type OutputConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text, json
}

type Config struct {
	Synth   SynthConfig   `yaml:"synth"`
	Lexicon LexiconConfig `yaml:"lexicon"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

func Default() Config {
	return Config{
		Synth: SynthConfig{
			SampleRate:    16000,
			FramePeriodMS: 10,
			WordPauseMS:   250,
			MaxDurationMS: 10000,
			DCCutoffHz:    50,
			Seed:          1,
			Overrun:       "fail",
		},
		Output: OutputConfig{
			Path: "date.wav",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, fmt.Errorf("config file not found: %w", err)
			}
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrideInt(&cfg.Synth.SampleRate, "FORMANT_SYNTH_SAMPLE_RATE")
	overrideFloat(&cfg.Synth.FramePeriodMS, "FORMANT_SYNTH_FRAME_PERIOD_MS")
	overrideInt(&cfg.Synth.WordPauseMS, "FORMANT_SYNTH_WORD_PAUSE_MS")
	overrideInt(&cfg.Synth.MaxDurationMS, "FORMANT_SYNTH_MAX_DURATION_MS")
	overrideFloat(&cfg.Synth.DCCutoffHz, "FORMANT_SYNTH_DC_CUTOFF_HZ")
	overrideInt64(&cfg.Synth.Seed, "FORMANT_SYNTH_SEED")
	overrideString(&cfg.Synth.Overrun, "FORMANT_SYNTH_OVERRUN")
	overrideString(&cfg.Lexicon.PhonemesPath, "FORMANT_LEXICON_PHONEMES_PATH")
	overrideString(&cfg.Lexicon.WordsPath, "FORMANT_LEXICON_WORDS_PATH")
	overrideString(&cfg.Output.Path, "FORMANT_OUTPUT_PATH")
	overrideString(&cfg.Log.Level, "FORMANT_LOG_LEVEL")
	overrideString(&cfg.Log.Format, "FORMANT_LOG_FORMAT")
}

func overrideString(target *string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		*target = value
	}
}

func overrideInt(target *int, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func overrideInt64(target *int64, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			*target = parsed
		}
	}
}

func overrideFloat(target *float64, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			*target = parsed
		}
	}
}

func validate(cfg Config) error {
	s := cfg.Synth
	if s.SampleRate <= 0 {
		return errors.New("synth.sample_rate must be positive")
	}
	if s.FramePeriodMS <= 0 || math.IsInf(s.FramePeriodMS, 0) || math.IsNaN(s.FramePeriodMS) {
		return errors.New("synth.frame_period_ms must be positive")
	}
	if float64(s.SampleRate)*s.FramePeriodMS/1000 < 1 {
		return errors.New("synth.frame_period_ms must span at least one sample")
	}
	if s.WordPauseMS < 0 {
		return errors.New("synth.word_pause_ms must be >= 0")
	}
	if s.MaxDurationMS <= 0 {
		return errors.New("synth.max_duration_ms must be positive")
	}
	if s.DCCutoffHz <= 0 || s.DCCutoffHz >= float64(s.SampleRate)/2 {
		return errors.New("synth.dc_cutoff_hz must be between 0 and half the sample rate")
	}
	if s.Seed < 0 || s.Seed > math.MaxUint32 {
		return errors.New("synth.seed must fit in 32 bits")
	}
	if _, err := buffer.ParsePolicy(s.Overrun); err != nil {
		return errors.New("synth.overrun must be one of fail|grow|truncate")
	}
	if cfg.Output.Path == "" {
		return errors.New("output.path must not be empty")
	}
	if _, err := parseLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return errors.New("log.format must be one of text|json")
	}
	return nil
}

// SynthOptions converts the synth section into session options.
func (c Config) SynthOptions(logger *slog.Logger) ([]synth.Option, error) {
	policy, err := buffer.ParsePolicy(c.Synth.Overrun)
	if err != nil {
		return nil, err
	}
	return []synth.Option{
		synth.WithSampleRate(float64(c.Synth.SampleRate)),
		synth.WithFramePeriod(c.Synth.FramePeriodMS / 1000),
		synth.WithWordPause(float64(c.Synth.WordPauseMS) / 1000),
		synth.WithMaxDuration(float64(c.Synth.MaxDurationMS) / 1000),
		synth.WithDCCutoff(c.Synth.DCCutoffHz),
		synth.WithSeed(uint32(c.Synth.Seed)),
		synth.WithOverrunPolicy(policy),
		synth.WithLogger(logger),
	}, nil
}

// Logger builds the slog logger described by the log section.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, errors.New("log.level must be one of debug|info|warn|error")
	}
	return level, nil
}
