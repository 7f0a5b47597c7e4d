package synth

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrTooLong is returned when an utterance exceeds the configured maximum
// duration. No samples are synthesized in that case.
var ErrTooLong = errors.New("synth: utterance too long")

// WordSamples returns the exact sample count of a word. Counts that do not
// fit in an int saturate at math.MaxInt.
func (s *Session) WordSamples(word []Diphone) int {
	frames := 0
	for i := range word {
		frames = addSat(frames, word[i].Frames())
	}
	return mulSat(frames, s.samplesPerFrame)
}

// PhraseSamples returns the exact sample count of a phrase including the
// pauses between words. There is no pause after the last word. Like
// WordSamples it saturates instead of overflowing.
func (s *Session) PhraseSamples(words [][]Diphone) int {
	total := 0
	for _, w := range words {
		total = addSat(total, s.WordSamples(w))
	}
	if len(words) > 1 {
		total = addSat(total, mulSat(len(words)-1, s.pauseSamples()))
	}
	return total
}

// MaxSamples returns the largest utterance the session renders.
func (s *Session) MaxSamples() int {
	return s.cfg.proc.DurationSamples(s.cfg.maxDuration)
}

func (s *Session) pauseSamples() int {
	return s.cfg.proc.DurationSamples(s.cfg.wordPause)
}

// RenderWord resets the session and renders the diphones of one word.
func (s *Session) RenderWord(word []Diphone) ([]float64, error) {
	return s.RenderPhrase([][]Diphone{word})
}

// RenderPhrase resets the session once and renders all words, separated by
// the configured pause. The returned slice is owned by the caller.
func (s *Session) RenderPhrase(words [][]Diphone) ([]float64, error) {
	for _, w := range words {
		for i := range w {
			if err := w[i].Validate(); err != nil {
				return nil, err
			}
		}
	}

	total := s.PhraseSamples(words)
	if limit := s.MaxSamples(); total > limit {
		return nil, fmt.Errorf("%w: %d samples, limit %d", ErrTooLong, total, limit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	buf := s.pool.Get(total)
	defer s.pool.Put(buf)
	buf.SetPolicy(s.cfg.overrun)

	s.reset()
	for wi, w := range words {
		if wi > 0 {
			buf.WriteSilence(s.pauseSamples())
		}
		for i := range w {
			if err := s.synthesizeDiphone(&w[i], buf); err != nil {
				return nil, err
			}
		}
	}

	s.logger.Debug("rendered",
		slog.Int("words", len(words)),
		slog.Int("samples", buf.Cursor()),
		slog.Int("dropped", buf.Dropped()))

	if err := buf.Err(); err != nil {
		return nil, err
	}
	return buf.Copy(), nil
}
