package signal

import (
	"math"
	"testing"
)

const testRate = 16000.0

func mustGlottal(t *testing.T, opts ...GlottalOption) *Glottal {
	t.Helper()
	g, err := NewGlottal(testRate, opts...)
	if err != nil {
		t.Fatalf("NewGlottal: %v", err)
	}
	return g
}

func TestNewGlottalValidation(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		opts []GlottalOption
	}{
		{"zero rate", 0, nil},
		{"nan rate", math.NaN(), nil},
		{"zero open", testRate, []GlottalOption{WithGlottalQuotients(0, 0.05)}},
		{"negative closing", testRate, []GlottalOption{WithGlottalQuotients(0.3, -0.1)}},
		{"sum above one", testRate, []GlottalOption{WithGlottalQuotients(0.8, 0.3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGlottal(tt.rate, tt.opts...); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	g := mustGlottal(t, nil, WithGlottalQuotients(0.4, 0.1))
	if open, closing := g.Quotients(); open != 0.4 || closing != 0.1 {
		t.Fatalf("quotients=%v,%v", open, closing)
	}
}

func TestGlottalSilentResetsState(t *testing.T) {
	tests := []struct {
		name      string
		f0, ampli float64
	}{
		{"zero f0", 0, 1},
		{"negative f0", -50, 1},
		{"zero amplitude", 120, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGlottal(t)
			for range 10 {
				g.Next(100, 1)
			}
			if got := g.Next(tt.f0, tt.ampli); got != 0 {
				t.Fatalf("got %v, want 0", got)
			}
			if g.Phase() != 0 {
				t.Fatalf("phase=%v, want 0", g.Phase())
			}
			fresh := mustGlottal(t)
			if a, b := g.Next(100, 1), fresh.Next(100, 1); a != b {
				t.Fatalf("after silence %v, fresh %v", a, b)
			}
		})
	}
}

func TestGlottalFirstSample(t *testing.T) {
	g := mustGlottal(t)
	got := g.Next(100, 2)
	want := 2 * math.Sin(math.Pi*(1/testRate)/(0.3*0.01))
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGlottalDifferentiatorTelescopes(t *testing.T) {
	// The outputs are first differences, so their running sum equals the
	// current raw pulse value times the amplitude.
	g := mustGlottal(t)
	var sum float64
	for i := 1; i <= 40; i++ {
		sum += g.Next(100, 0.5)
		phase := float64(i) / testRate
		want := 0.5 * math.Sin(math.Pi*phase/0.003)
		if math.Abs(sum-want) > 1e-9 {
			t.Fatalf("sample %d: running sum %v, want %v", i, sum, want)
		}
	}
}

func TestGlottalClosedRemainderIsSilent(t *testing.T) {
	g := mustGlottal(t)
	out := make([]float64, 160)
	for i := range out {
		out[i] = g.Next(100, 1)
	}
	// Samples 1..47 open, 48..55 close, the rest of the 160-sample period
	// is closed.
	for i := 60; i < 150; i++ {
		if out[i] != 0 {
			t.Fatalf("sample %d: %v, want 0 in closed phase", i+1, out[i])
		}
	}
	var peak float64
	for _, v := range out[:60] {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 {
		t.Fatal("no excitation in open/closing phases")
	}
}

func TestGlottalPeriodic(t *testing.T) {
	g := mustGlottal(t)
	const period = 160
	out := make([]float64, 4*period)
	for i := range out {
		out[i] = g.Next(100, 1)
	}
	for i := period; i < 3*period; i++ {
		if math.Abs(out[i]-out[i+period]) > 1e-6 {
			t.Fatalf("sample %d differs one period later: %v vs %v", i, out[i], out[i+period])
		}
	}
}

func TestGlottalReset(t *testing.T) {
	g := mustGlottal(t)
	first := make([]float64, 50)
	for i := range first {
		first[i] = g.Next(130, 1)
	}
	g.Reset()
	for i := range first {
		if got := g.Next(130, 1); got != first[i] {
			t.Fatalf("sample %d after reset: %v, want %v", i, got, first[i])
		}
	}
}
