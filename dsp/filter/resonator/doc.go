// Package resonator implements the two-pole formant resonator used by the
// parallel formant synthesizer.
//
// A Resonator is tuned by a centre frequency and a bandwidth in Hz. The
// recursion is
//
//	y[n] = x[n] - A1*y[n-1] - A2*y[n-2]
//
// with A1 = -2r*cos(theta), A2 = r*r, r = exp(-pi*bw/fs) and
// theta = 2*pi*freq/fs. A zero frequency or bandwidth disables the filter:
// the input passes through unchanged and the history is left alone.
package resonator
