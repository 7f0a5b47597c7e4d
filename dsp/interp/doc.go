// Package interp provides interpolation primitives used for parameter
// trajectories between frames.
//
//   - [Linear]:   2-point linear blend, unclamped
//   - [Fraction]: position of step i within n steps
package interp
