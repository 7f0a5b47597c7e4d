// Package biquad provides second-order IIR filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. The synthesizer runs its
// DC-blocking stage on a Section, and resonators expose their recursion as
// Coefficients so the response and pole helpers here can analyse them.
package biquad
