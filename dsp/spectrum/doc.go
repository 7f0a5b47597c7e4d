// Package spectrum turns FFT bins into a magnitude envelope and picks its
// peaks. The transform itself is left to algo-fft.
package spectrum
