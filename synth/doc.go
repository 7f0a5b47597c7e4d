// Package synth is the parallel formant synthesis engine.
//
// A [Session] owns all mutable synthesis state: six formant resonators, a
// noise-branch resonator, the glottal and noise sources and the DC blocker.
// Diphones are expanded frame by frame into a [buffer.Buffer]; each frame
// holds one set of [Params] and lasts round(sampleRate*framePeriod)
// samples.
//
//	s, _ := synth.NewSession()
//	pcm, err := s.RenderWord(diphones)
//
// Sessions are safe for concurrent use, but calls on one session are
// serialised. Use one session per goroutine for parallel rendering.
package synth
