// Command phoninfo prints the resonator properties of lexicon phonemes.
//
// Usage:
//
//	phoninfo [flags] [phoneme-name ...]
//
// Without arguments it prints every phoneme of the lexicon.
//
// Examples:
//
//	phoninfo ae_vowel
//	phoninfo -rate 22050 m_nasal n_nasal
//	phoninfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-formant/dsp/filter/resonator"
	"github.com/cwbudde/algo-formant/lexicon"
	"github.com/cwbudde/algo-formant/synth"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("phoninfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rate := fs.Float64("rate", 16000, "sample rate in Hz")
	phonemesPath := fs.String("phonemes", "", "phoneme table (default built-in)")
	wordsPath := fs.String("words", "", "word table (default built-in)")
	list := fs.Bool("list", false, "list phoneme names")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: phoninfo [flags] [phoneme-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints pole radius and peak gain of each phoneme's resonators.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	lex, err := lexicon.LoadFiles(*phonemesPath, *wordsPath)
	if err != nil {
		return err
	}

	if *list {
		for _, n := range lex.PhonemeNames() {
			fmt.Fprintln(stdout, n)
		}
		return nil
	}

	names := fs.Args()
	if len(names) == 0 {
		names = lex.PhonemeNames()
	}

	r, err := resonator.New(*rate)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Phoneme\tFilter\tFreq [Hz]\tBW [Hz]\tRadius\tPeak Gain [dB]\tStable\n")
	fmt.Fprintf(tw, "-------\t------\t---------\t-------\t------\t--------------\t------\n")
	for _, name := range names {
		p, err := lex.Phoneme(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return err
		}
		for i, f := range p.Formants {
			writeRow(tw, r, name, fmt.Sprintf("F%d", i+1), f)
		}
		writeRow(tw, r, name, "FN", p.Nasal)
	}
	return tw.Flush()
}

func writeRow(w io.Writer, r *resonator.Resonator, phoneme, label string, f synth.Formant) {
	r.Init(f.Freq, f.BW)
	if !r.Enabled() {
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\toff\t-\t-\n", phoneme, label, f.Freq, f.BW)
		return
	}
	c := r.Coefficients()
	fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%.5f\t%.2f\t%t\n",
		phoneme, label, f.Freq, f.BW, r.Radius(), c.MagnitudeDB(f.Freq, r.SampleRate()), c.Stable())
}
