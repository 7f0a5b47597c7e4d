package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

// direct evaluates H(e^jw) from the transfer function.
func direct(c Coefficients, freq, fs float64) complex128 {
	z1 := cmplx.Exp(complex(0, -2*math.Pi*freq/fs))
	z2 := z1 * z1
	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	return num / den
}

func TestMagnitudeSquaredMatchesTransferFunction(t *testing.T) {
	sections := []Coefficients{
		twoPole,
		{B0: 0.99, B1: -0.99, A1: -0.98},
		{B0: 0.3, B1: -0.1, B2: 0.2, A1: -1.1, A2: 0.6},
	}
	const fs = 16000.0
	for _, c := range sections {
		for _, f := range []float64{0, 50, 250, 700, 1220, 2600, 5000, 7999} {
			h := cmplx.Abs(direct(c, f, fs))
			want := h * h
			got := c.MagnitudeSquared(f, fs)
			if math.Abs(got-want) > 1e-9*math.Max(1, want) {
				t.Fatalf("%+v at %v Hz: %v, want %v", c, f, got, want)
			}
			if db := c.MagnitudeDB(f, fs); math.Abs(db-10*math.Log10(got)) > 1e-9 {
				t.Fatalf("%+v at %v Hz: %v dB", c, f, db)
			}
		}
	}
}

func TestPolesOfTwoPole(t *testing.T) {
	for _, p := range twoPole.Poles() {
		if math.Abs(cmplx.Abs(p)-0.5) > eps {
			t.Fatalf("|p|=%v, want 0.5", cmplx.Abs(p))
		}
		if math.Abs(math.Abs(cmplx.Phase(p))-math.Pi/3) > eps {
			t.Fatalf("arg p=%v, want ±pi/3", cmplx.Phase(p))
		}
	}
}

func TestFirstOrderRoots(t *testing.T) {
	c := Coefficients{B0: 0.99, B1: -0.99, A1: -0.98}
	p := c.Poles()
	if !rootSet(p, 0.98, 0) {
		t.Fatalf("poles %v, want {0.98, 0}", p)
	}
	z := c.Zeros()
	if !rootSet(z, 1, 0) {
		t.Fatalf("zeros %v, want {1, 0}", z)
	}

	if z := (Coefficients{A1: -0.5}).Zeros(); z != [2]complex128{} {
		t.Fatalf("empty numerator zeros %v", z)
	}
}

func rootSet(got [2]complex128, a, b complex128) bool {
	near := func(x, y complex128) bool { return cmplx.Abs(x-y) < eps }
	return (near(got[0], a) && near(got[1], b)) || (near(got[0], b) && near(got[1], a))
}

func TestStable(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want bool
	}{
		{"identity", Coefficients{B0: 1}, true},
		{"narrow formant", Coefficients{B0: 1, A1: -2 * 0.999 * math.Cos(0.2), A2: 0.999 * 0.999}, true},
		{"dc blocker", Coefficients{B0: 0.99, B1: -0.99, A1: -0.98}, true},
		{"integrator", Coefficients{B0: 1, A1: -1}, false},
		{"growing", Coefficients{B0: 1, A1: -2.2, A2: 1.21}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Stable(); got != tt.want {
				t.Fatalf("Stable()=%v, want %v (poles %v)", got, tt.want, tt.c.Poles())
			}
		})
	}
}
