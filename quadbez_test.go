package homotopy

import (
	"math"
	"testing"
)

func TestQuadBez(t *testing.T) {
	qb := QuadBez(Float(0.3), Float(0.7), Float(0.9))
	if !CheckU(qb) {
		t.Error("boundary contract violated for QuadBez")
	}
}

func TestQuadBezVec(t *testing.T) {
	qb := QuadBez(Vec2[Float]{0, 0}, Vec2[Float]{1, 2}, Vec2[Float]{3, 0})
	if !CheckU(qb) {
		t.Error("boundary contract violated for QuadBez over Vec2")
	}
	diff(t, Vec2[Float]{1.25, 1}, Hu(qb, 0.5))
}

func TestQuadBezFromLinearEqualsLerp(t *testing.T) {
	qb := QuadBezFromLinear(Float(0), Float(1))
	l := Lerp(Float(0), Float(1))
	const n = 10
	for i := 0; i <= n; i++ {
		s := float64(i) / float64(n)
		if d := math.Abs(float64(Hu(qb, s) - Hu(l, s))); d > 1e-6 {
			t.Errorf("got difference %g at s=%g, want at most 1e-6", d, s)
		}
	}
}
