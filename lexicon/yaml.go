package lexicon

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-formant/synth"
)

type phonemeFile struct {
	Phonemes map[string]phonemeDoc `yaml:"phonemes"`
}

type formantDoc struct {
	Freq float64 `yaml:"freq"`
	BW   float64 `yaml:"bw"`
}

type phonemeDoc struct {
	F0       float64      `yaml:"f0"`
	Formants []formantDoc `yaml:"formants"`
	Nasal    formantDoc   `yaml:"nasal"`
	AV       float64      `yaml:"av"`
	AN       float64      `yaml:"an"`
}

func (d phonemeDoc) params() (*synth.Params, error) {
	if len(d.Formants) != synth.NumFormants {
		return nil, fmt.Errorf("want %d formants, got %d", synth.NumFormants, len(d.Formants))
	}
	p := &synth.Params{
		F0:    d.F0,
		Nasal: synth.Formant{Freq: d.Nasal.Freq, BW: d.Nasal.BW},
		AF:    d.AV,
		AN:    d.AN,
	}
	for i, f := range d.Formants {
		p.Formants[i] = synth.Formant{Freq: f.Freq, BW: f.BW}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

type wordFile struct {
	Words map[string][]diphoneRow `yaml:"words"`
}

// diphoneRow is a flow sequence [name, from, to, start, transition, end].
type diphoneRow struct {
	Name       string
	From       string
	To         string
	Start      int
	Transition int
	End        int
}

func (r *diphoneRow) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 6 {
		return fmt.Errorf("line %d: diphone row must be [name, from, to, start, transition, end]", node.Line)
	}
	fields := []any{&r.Name, &r.From, &r.To, &r.Start, &r.Transition, &r.End}
	for i, dst := range fields {
		if err := node.Content[i].Decode(dst); err != nil {
			return fmt.Errorf("line %d field %d: %w", node.Line, i+1, err)
		}
	}
	return nil
}
