package interp

import "testing"

func TestLinear(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{a: 120, b: 100, t: 0, want: 120},
		{a: 120, b: 100, t: 1, want: 100},
		{a: 0, b: 700, t: 0.5, want: 350},
		{a: 2, b: 4, t: 0.25, want: 2.5},
		{a: 0, b: 10, t: 1.5, want: 15},
		{a: 0, b: 10, t: -0.5, want: -5},
	}
	for _, tc := range tests {
		if got := Linear(tc.a, tc.b, tc.t); got != tc.want {
			t.Errorf("Linear(%v,%v,%v)=%v, want %v", tc.a, tc.b, tc.t, got, tc.want)
		}
	}
}

func TestFraction(t *testing.T) {
	if got := Fraction(0, 10); got != 0 {
		t.Fatalf("got %v", got)
	}
	if got := Fraction(10, 10); got != 1 {
		t.Fatalf("got %v", got)
	}
	if got := Fraction(3, 4); got != 0.75 {
		t.Fatalf("got %v", got)
	}
	if got := Fraction(3, 0); got != 0 {
		t.Fatalf("got %v", got)
	}
}
