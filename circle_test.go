package homotopy

import "testing"

func TestCircleCanonicalPoints(t *testing.T) {
	a := Circle([2]Float{0, 0}, Float(1))
	if !Check(a, Unit{}) {
		t.Error("boundary contract violated for Circle")
	}
	diff(t, [2]Float{1, 0}, Hu(a, 0))
	diff(t, [2]Float{0, 1}, Hu(a, 0.25))
	diff(t, [2]Float{-1, 0}, Hu(a, 0.5))
	diff(t, [2]Float{0, -1}, Hu(a, 0.75))
	diff(t, [2]Float{1, 0}, Hu(a, 1))
}

func TestCircleSquare(t *testing.T) {
	a := Circle([2]Float{0, 0}, Float(1))
	b := Circle([2]Float{0, 0}, Float(2))
	c := AsVec(Square(a, b))
	if !CheckU2(c) {
		t.Error("boundary contract violated for a square of circles")
	}
	diff(t, [2][2]Float{{-1, 0}, {0, 2}}, Hu(c, [2]float64{0.5, 0.25}))

	// The diagonal of a square of two circles is a sector sweep.
	d := Diagonal(c)
	if !CheckU(d) {
		t.Error("boundary contract violated for the diagonal")
	}
	diff(t, [2][2]Float{{1, 0}, {2, 0}}, Hu(d, 0))
	diff(t, [2][2]Float{{0, 1}, {0, 2}}, Hu(d, 0.25))
	diff(t, [2][2]Float{{-1, 0}, {-2, 0}}, Hu(d, 0.5))
	diff(t, [2][2]Float{{0, -1}, {0, -2}}, Hu(d, 0.75))
	diff(t, [2][2]Float{{1, 0}, {2, 0}}, Hu(d, 1))

	// The left side locks the inner circle, the top side the outer one.
	diff(t, [2][2]Float{{1, 0}, {-2, 0}}, Hu(Left(c), 0.5))
	diff(t, [2][2]Float{{-1, 0}, {2, 0}}, Hu(Top(c), 0.5))
}

func TestSweep(t *testing.T) {
	a := Circle([2]Float{0, 0}, Float(1))
	b := Circle([2]Float{0, 0}, Float(2))
	s := Sweep(a, b)
	if !CheckU2(s) {
		t.Error("boundary contract violated for Sweep")
	}
	// Axis 0 rotates both circles together, axis 1 interpolates between them.
	diff(t, [2]Float{1, 0}, Hu(s, [2]float64{0, 0}))
	diff(t, [2]Float{2, 0}, Hu(s, [2]float64{0, 1}))
	diff(t, [2]Float{0, 1}, Hu(s, [2]float64{0.25, 0}))
	diff(t, [2]Float{0, 2}, Hu(s, [2]float64{0.25, 1}))
	diff(t, [2]Float{0, 1.5}, Hu(s, [2]float64{0.25, 0.5}))
	diff(t, [2]Float{-2, 0}, Hu(s, [2]float64{0.5, 1}))
}
