// Package lexicon holds the phoneme targets and word diphone tables that
// drive the synthesizer.
//
// The built-in tables are embedded YAML; [Load] and [LoadFiles] accept
// replacement tables in the same format. A Lexicon is immutable once
// loaded and safe for concurrent use.
package lexicon

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-formant/synth"
)

var (
	// ErrUnknownWord is returned for words missing from the word table.
	ErrUnknownWord = errors.New("lexicon: unknown word")
	// ErrUnknownPhoneme is returned for phoneme names missing from the
	// phoneme table.
	ErrUnknownPhoneme = errors.New("lexicon: unknown phoneme")
)

//go:embed data/phonemes.yaml data/words.yaml
var builtin embed.FS

// Lexicon maps phoneme names to synthesis targets and words to diphone
// sequences.
type Lexicon struct {
	phonemes map[string]*synth.Params
	words    map[string][]synth.Diphone
}

var defaultLexicon = sync.OnceValues(func() (*Lexicon, error) {
	ph, err := builtin.Open("data/phonemes.yaml")
	if err != nil {
		return nil, err
	}
	defer ph.Close()
	wd, err := builtin.Open("data/words.yaml")
	if err != nil {
		return nil, err
	}
	defer wd.Close()
	return Load(ph, wd)
})

// Default returns the built-in lexicon. It is parsed once.
func Default() (*Lexicon, error) {
	return defaultLexicon()
}

// LoadFiles reads the tables at the given paths. An empty path selects the
// corresponding built-in table.
func LoadFiles(phonemesPath, wordsPath string) (*Lexicon, error) {
	open := func(path, builtinName string) (io.ReadCloser, error) {
		if path == "" {
			return builtin.Open(builtinName)
		}
		return os.Open(path)
	}

	ph, err := open(phonemesPath, "data/phonemes.yaml")
	if err != nil {
		return nil, fmt.Errorf("open phoneme table: %w", err)
	}
	defer ph.Close()
	wd, err := open(wordsPath, "data/words.yaml")
	if err != nil {
		return nil, fmt.Errorf("open word table: %w", err)
	}
	defer wd.Close()
	return Load(ph, wd)
}

// Load parses a phoneme table and a word table and cross-checks them.
func Load(phonemes, words io.Reader) (*Lexicon, error) {
	var phDoc phonemeFile
	if err := yaml.NewDecoder(phonemes).Decode(&phDoc); err != nil {
		return nil, fmt.Errorf("parse phoneme table: %w", err)
	}
	var wdDoc wordFile
	if err := yaml.NewDecoder(words).Decode(&wdDoc); err != nil {
		return nil, fmt.Errorf("parse word table: %w", err)
	}

	lex := &Lexicon{
		phonemes: make(map[string]*synth.Params, len(phDoc.Phonemes)),
		words:    make(map[string][]synth.Diphone, len(wdDoc.Words)),
	}
	for name, doc := range phDoc.Phonemes {
		p, err := doc.params()
		if err != nil {
			return nil, fmt.Errorf("phoneme %q: %w", name, err)
		}
		lex.phonemes[name] = p
	}

	for word, rows := range wdDoc.Words {
		seq := make([]synth.Diphone, 0, len(rows))
		for _, row := range rows {
			from, ok := lex.phonemes[row.From]
			if !ok {
				return nil, fmt.Errorf("word %q diphone %q: %w: %s", word, row.Name, ErrUnknownPhoneme, row.From)
			}
			to, ok := lex.phonemes[row.To]
			if !ok {
				return nil, fmt.Errorf("word %q diphone %q: %w: %s", word, row.Name, ErrUnknownPhoneme, row.To)
			}
			d := synth.Diphone{
				Name:             row.Name,
				From:             from,
				To:               to,
				StartFrames:      row.Start,
				TransitionFrames: row.Transition,
				EndFrames:        row.End,
			}
			if err := d.Validate(); err != nil {
				return nil, fmt.Errorf("word %q: %w", word, err)
			}
			seq = append(seq, d)
		}
		lex.words[word] = seq
	}
	return lex, nil
}

// Phoneme returns a copy of the named phoneme's targets.
func (l *Lexicon) Phoneme(name string) (synth.Params, error) {
	p, ok := l.phonemes[name]
	if !ok {
		return synth.Params{}, fmt.Errorf("%w: %s", ErrUnknownPhoneme, name)
	}
	return *p, nil
}

// Word returns the diphone sequence of a word. The slice is a copy; the
// parameter pointers are shared and must not be modified.
func (l *Lexicon) Word(name string) ([]synth.Diphone, error) {
	seq, ok := l.words[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWord, name)
	}
	return slices.Clone(seq), nil
}

// Phrase resolves every word of a phrase.
func (l *Lexicon) Phrase(words []string) ([][]synth.Diphone, error) {
	out := make([][]synth.Diphone, 0, len(words))
	for _, w := range words {
		seq, err := l.Word(w)
		if err != nil {
			return nil, err
		}
		out = append(out, seq)
	}
	return out, nil
}

// PhonemeNames returns all phoneme names in sorted order.
func (l *Lexicon) PhonemeNames() []string {
	return sortedKeys(l.phonemes)
}

// WordNames returns all word names in sorted order.
func (l *Lexicon) WordNames() []string {
	return sortedKeys(l.words)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
