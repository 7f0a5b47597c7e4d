package testutil

import (
	"math"
	"slices"
	"testing"
)

func TestSine(t *testing.T) {
	s := Sine(2000, 16000, 0.5, 8)
	want := []float64{0, 0.5 * math.Sqrt2 / 2, 0.5, 0.5 * math.Sqrt2 / 2, 0}
	for i, w := range want {
		if math.Abs(s[i]-w) > 1e-15 {
			t.Fatalf("s[%d]=%v, want %v", i, s[i], w)
		}
	}
	if math.Abs(s[6]+0.5) > 1e-15 {
		t.Fatalf("s[6]=%v, want -0.5", s[6])
	}
}

func TestTones(t *testing.T) {
	sum := Tones(16000, 64, []float64{500, 1500, 2500}, []float64{1, 0.5})
	a := Sine(500, 16000, 1, 64)
	b := Sine(1500, 16000, 0.5, 64)
	for i := range sum {
		if math.Abs(sum[i]-(a[i]+b[i])) > 1e-12 {
			t.Fatalf("sum[%d]=%v, want %v", i, sum[i], a[i]+b[i])
		}
	}
	if got := Tones(16000, 4, nil, nil); !slices.Equal(got, make([]float64, 4)) {
		t.Fatalf("no tones: %v", got)
	}
}

func TestNoise(t *testing.T) {
	a := Noise(42, 0.25, 256)
	if !slices.Equal(a, Noise(42, 0.25, 256)) {
		t.Fatal("same seed gave different noise")
	}
	if slices.Equal(a, Noise(43, 0.25, 256)) {
		t.Fatal("different seeds gave identical noise")
	}
	for i, v := range a {
		if v < -0.25 || v >= 0.25 {
			t.Fatalf("noise[%d]=%v outside amplitude", i, v)
		}
	}
}

func TestConstant(t *testing.T) {
	if got := Constant(0.5, 3); !slices.Equal(got, []float64{0.5, 0.5, 0.5}) {
		t.Fatalf("Constant=%v", got)
	}
	if got := Constant(1, 0); len(got) != 0 {
		t.Fatalf("empty Constant=%v", got)
	}
}
