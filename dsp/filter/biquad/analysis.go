package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-formant/dsp/core"
)

// MagnitudeSquared returns |H|^2 at freqHz without complex arithmetic.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	k := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	num := (c.B0-c.B2)*(c.B0-c.B2) + c.B1*c.B1 + (c.B1*(c.B0+c.B2)+c.B0*c.B2*k)*k
	den := (1-c.A2)*(1-c.A2) + c.A1*c.A1 + (c.A1*(1+c.A2)+c.A2*k)*k
	return num / den
}

// MagnitudeDB is MagnitudeSquared in decibels.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.PowerToDB(c.MagnitudeSquared(freqHz, sampleRate))
}

// Poles returns the roots of z^2 + A1 z + A2. A first-order section has
// one pole at the origin.
func (c Coefficients) Poles() [2]complex128 {
	return roots(1, c.A1, c.A2)
}

// Zeros returns the roots of B0 z^2 + B1 z + B2.
func (c Coefficients) Zeros() [2]complex128 {
	return roots(c.B0, c.B1, c.B2)
}

// Stable reports whether both poles are strictly inside the unit circle.
func (c Coefficients) Stable() bool {
	p := c.Poles()
	return cmplx.Abs(p[0]) < 1 && cmplx.Abs(p[1]) < 1
}

func roots(a, b, c float64) [2]complex128 {
	switch {
	case a == 0 && b == 0:
		return [2]complex128{}
	case a == 0:
		return [2]complex128{complex(-c/b, 0), 0}
	}
	sq := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	return [2]complex128{
		(complex(-b, 0) + sq) / complex(2*a, 0),
		(complex(-b, 0) - sq) / complex(2*a, 0),
	}
}
