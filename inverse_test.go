package homotopy

import "testing"

func TestInverse(t *testing.T) {
	a := Lerp(Float(2), Float(4))
	b := Inverse(a)
	if !CheckU(b) {
		t.Error("boundary contract violated for Inverse")
	}
	if got := Hu(b, 0); got != 4 {
		t.Errorf("got %v at s=0, want 4", got)
	}
	if got := Hu(b, 1); got != 2 {
		t.Errorf("got %v at s=1, want 2", got)
	}
}

func TestInverseInvolution(t *testing.T) {
	a := QuadBez(Float(0.3), Float(0.7), Float(0.9))
	b := Inverse(Inverse(a))
	// Sampling dyadic parameters keeps 1-(1-s) exact, so the involution can
	// be checked with exact equality.
	const n = 8
	for i := 0; i <= n; i++ {
		s := float64(i) / float64(n)
		if got, want := Hu(b, s), Hu(a, s); got != want {
			t.Errorf("got %v at s=%g, want %v", got, s, want)
		}
	}
}
