// Package signal provides the excitation sources of the formant
// synthesizer and whole-buffer level helpers.
//
// [Glottal] produces the differentiated Rosenberg-style pulse train used for
// voiced sounds, [Noise] produces the shaped pseudo-random excitation used
// for frication and aspiration. Both are stateful and deterministic.
//
// The glottal pulse is zero for the part of each period after the closing
// phase (closed glottis). The closing sine is not continued past its own
// length; continuing it would keep the pulse oscillating until the next
// opening phase.
package signal
