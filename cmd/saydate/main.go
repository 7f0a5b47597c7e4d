// Command saydate speaks a date (or a list of lexicon words) into a WAV file.
//
// Usage:
//
//	saydate [flags]
//
// Without -date or -words it says today's date as "<weekday> <ordinal>
// <month>".
//
// Examples:
//
//	saydate
//	saydate -date 2024-03-17 -out sunday.wav
//	saydate -words hello,world -verify
//	saydate -config formant.yaml -analyze -window blackman
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-formant/dsp/signal"
	"github.com/cwbudde/algo-formant/dsp/window"
	"github.com/cwbudde/algo-formant/internal/config"
	"github.com/cwbudde/algo-formant/internal/datephrase"
	"github.com/cwbudde/algo-formant/lexicon"
	"github.com/cwbudde/algo-formant/measure/formant"
	"github.com/cwbudde/algo-formant/measure/level"
	"github.com/cwbudde/algo-formant/pcm"
	"github.com/cwbudde/algo-formant/synth"
)

var version = "0.1.0-dev"

var errVerify = errors.New("verification failed")

const activityThresholdDB = -40

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, time.Now); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		logger.Error("saydate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, now func() time.Time) error {
	fs := flag.NewFlagSet("saydate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  string
		outPath     string
		dateFlag    string
		wordsFlag   string
		verify      bool
		analyze     bool
		windowName  string
		showVersion bool
	)
	fs.StringVar(&configPath, "config", "", "Path to configuration file")
	fs.StringVar(&outPath, "out", "", "Output WAV path (overrides output.path)")
	fs.StringVar(&dateFlag, "date", "", "Date to speak as YYYY-MM-DD (default today)")
	fs.StringVar(&wordsFlag, "words", "", "Comma-separated lexicon words to speak instead of a date")
	fs.BoolVar(&verify, "verify", false, "Decode the written file and check it")
	fs.BoolVar(&analyze, "analyze", false, "Print the strongest spectral peaks of the rendered audio")
	fs.StringVar(&windowName, "window", "hann", "Analysis window for -analyze (rectangular, hann, hamming, blackman)")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showVersion {
		fmt.Fprintln(stdout, version)
		return nil
	}

	win, ok := window.ParseType(windowName)
	if !ok {
		return fmt.Errorf("unknown -window %q", windowName)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outPath != "" {
		cfg.Output.Path = outPath
	}
	logger, err := cfg.Logger(stderr)
	if err != nil {
		return err
	}

	words, err := phraseWords(wordsFlag, dateFlag, now)
	if err != nil {
		return err
	}

	lex, err := lexicon.LoadFiles(cfg.Lexicon.PhonemesPath, cfg.Lexicon.WordsPath)
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}
	phrase, err := lex.Phrase(words)
	if err != nil {
		return err
	}

	opts, err := cfg.SynthOptions(logger)
	if err != nil {
		return err
	}
	session, err := synth.NewSession(opts...)
	if err != nil {
		return err
	}
	samples, err := session.RenderPhrase(phrase)
	if err != nil {
		return err
	}

	sampleRate := int(session.SampleRate())
	if err := pcm.WriteFile(cfg.Output.Path, samples, sampleRate); err != nil {
		return err
	}
	logger.Info("wrote phrase",
		slog.String("path", cfg.Output.Path),
		slog.String("words", strings.Join(words, " ")),
		slog.Int("samples", len(samples)),
		slog.Float64("seconds", float64(len(samples))/session.SampleRate()))

	if verify {
		if err := verifyFile(cfg.Output.Path, len(samples), sampleRate); err != nil {
			return err
		}
		logger.Info("verified", slog.String("path", cfg.Output.Path))
	}

	if analyze {
		acfg := formant.DefaultConfig(session.SampleRate())
		acfg.Window = win
		res, err := formant.AnalyzeSignal(samples, acfg)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		frames, err := level.Frames(samples, level.FrameConfig{
			Length:      session.SamplesPerFrame(),
			ThresholdDB: activityThresholdDB,
		})
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		normalized, err := signal.Normalize(samples, 1)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		printLevels(stdout, level.Calculate(normalized), frames, session.SamplesPerFrame(), sampleRate)
		printPeaks(stdout, res)
	}
	return nil
}

func phraseWords(wordsFlag, dateFlag string, now func() time.Time) ([]string, error) {
	if wordsFlag != "" {
		var words []string
		for _, w := range strings.Split(wordsFlag, ",") {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				words = append(words, w)
			}
		}
		if len(words) == 0 {
			return nil, errors.New("-words must name at least one word")
		}
		return words, nil
	}

	date := now()
	if dateFlag != "" {
		var err error
		if date, err = time.ParseInLocation(time.DateOnly, dateFlag, time.Local); err != nil {
			return nil, fmt.Errorf("invalid -date: %w", err)
		}
	}
	return datephrase.Words(date), nil
}

func verifyFile(path string, wantSamples, wantRate int) error {
	clip, err := pcm.ReadFile(path)
	if err != nil {
		return err
	}
	switch {
	case clip.SampleRate != wantRate:
		return fmt.Errorf("%w: sample rate %d, want %d", errVerify, clip.SampleRate, wantRate)
	case clip.Channels != 1 || clip.BitDepth != pcm.BitDepth:
		return fmt.Errorf("%w: %d channels at %d bits", errVerify, clip.Channels, clip.BitDepth)
	case len(clip.Samples) != wantSamples:
		return fmt.Errorf("%w: %d samples, want %d", errVerify, len(clip.Samples), wantSamples)
	case wantSamples > 0 && clip.Peak() != 0 && clip.Peak() != pcm.MaxAmplitude:
		return fmt.Errorf("%w: peak %d, want %d", errVerify, clip.Peak(), pcm.MaxAmplitude)
	}
	return nil
}

func printLevels(w io.Writer, st level.Stats, frames []level.Frame, frameLen, sampleRate int) {
	active := 0
	for _, f := range frames {
		if f.Active {
			active++
		}
	}
	fmt.Fprintf(w, "level: rms %.1f dB, peak %.1f dB, crest %.1f dB\n", st.RMSdB, st.PeakdB, st.CrestFactordB)
	fmt.Fprintf(w, "frames: %d of %d active", active, len(frames))
	if start, end, ok := level.ActiveSpan(frames, frameLen); ok {
		fmt.Fprintf(w, ", speech %.3fs..%.3fs", float64(start)/float64(sampleRate), float64(end)/float64(sampleRate))
	}
	fmt.Fprintln(w)
}

func printPeaks(w io.Writer, res formant.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "peak\tfreq (Hz)\tlevel (dB)")
	for i, p := range res.Peaks {
		fmt.Fprintf(tw, "%d\t%.1f\t%.1f\n", i+1, p.Freq, p.LevelDB)
	}
	tw.Flush()
}
