package homotopy

import "testing"

func TestCubicBez(t *testing.T) {
	cb := CubicBez(Float(0.3), Float(0.7), Float(0.8), Float(0.9))
	if !CheckU(cb) {
		t.Error("boundary contract violated for CubicBez")
	}
}

func TestCubicBezFromQuadEqualsQuadBez(t *testing.T) {
	cb := CubicBezFromQuad(Float(0), Float(0.3), Float(0.9))
	qb := QuadBez(Float(0), Float(0.3), Float(0.9))
	// With the middle control point duplicated, the reduced two-level form
	// evaluates the exact same expression as the quadratic, so equality is
	// exact.
	const n = 10
	for i := 0; i <= n; i++ {
		s := float64(i) / float64(n)
		if got, want := Hu(cb, s), Hu(qb, s); got != want {
			t.Errorf("got %v at s=%g, want %v", got, s, want)
		}
	}
}
