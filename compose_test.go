package homotopy

import "testing"

func TestCompose(t *testing.T) {
	// A linear interpolation, composed with a two-branch step that separates
	// the start of the line from the rest of the line.
	a := Lerp(Float(3), Float(10))
	if got := Hu(a, 0.5); got != 6.5 {
		t.Errorf("got %v at s=0.5, want 6.5", got)
	}
	b := DiracFrom(
		func(x Float) Float { return x - 2 },
		func(x Float) Float { return x + 2 },
	)
	c := Compose(a, b)
	if !CheckU2(c) {
		t.Error("boundary contract violated for Compose")
	}

	for _, tt := range []struct {
		s    [2]float64
		want Float
	}{
		{[2]float64{0, 0}, 1},
		{[2]float64{0.5, 0}, 4.5},
		{[2]float64{1, 0}, 8},
		{[2]float64{0, 1}, 5},
		{[2]float64{0.5, 1}, 8.5},
		{[2]float64{1, 1}, 12},
	} {
		if got := Hu(c, tt.s); got != tt.want {
			t.Errorf("got %v at s=%v, want %v", got, tt.s, tt.want)
		}
	}

	d := Diagonal(c)
	if got := Hu(d, 0.0); got != 1 {
		t.Errorf("got %v at s=0, want 1", got)
	}
	if got := Hu(d, 1e-16); got != 5 {
		t.Errorf("got %v just past s=0, want 5", got)
	}
	if got := Hu(d, 0.5); got != 8.5 {
		t.Errorf("got %v at s=0.5, want 8.5", got)
	}
	if got := Hu(d, 1.0); got != 12 {
		t.Errorf("got %v at s=1, want 12", got)
	}
}

func TestComposeTranslate(t *testing.T) {
	a := Lerp(Float(1), Float(2))
	b := Translate(Float(3))
	c := Compose(a, b)
	if !CheckU2(c) {
		t.Error("boundary contract violated for Compose with Translate")
	}
	for _, tt := range []struct {
		s    [2]float64
		want Float
	}{
		{[2]float64{0, 0}, 1},
		{[2]float64{1, 0}, 2},
		{[2]float64{0, 1}, 4},
		{[2]float64{1, 1}, 5},
	} {
		if got := Hu(c, tt.s); got != tt.want {
			t.Errorf("got %v at s=%v, want %v", got, tt.s, tt.want)
		}
	}
}

func TestComposeVecTranslate(t *testing.T) {
	sq := AsVec(Square(Lerp(Float(1), Float(2)), Lerp(Float(3), Float(4))))
	c := Compose21(sq, Translate2([2]Float{10, 20}))
	if !CheckU3(c) {
		t.Error("boundary contract violated for Compose21 with Translate2")
	}
	diff(t, [2]Float{1, 3}, Hu(c, [3]float64{0, 0, 0}))
	diff(t, [2]Float{11, 23}, Hu(c, [3]float64{0, 0, 1}))
	diff(t, [2]Float{2, 3}, Hu(c, [3]float64{1, 0, 0}))
	diff(t, [2]Float{12, 23}, Hu(c, [3]float64{1, 0, 1}))

	unit := AsVec3(Cube(Lerp(Float(0), Float(1)), Lerp(Float(0), Float(1)), Lerp(Float(0), Float(1))))
	c4 := Compose31(unit, Translate3([3]Float{10, 20, 30}))
	if !CheckU4(c4) {
		t.Error("boundary contract violated for Compose31 with Translate3")
	}
	diff(t, [3]Float{0, 0, 0}, Hu(c4, [4]float64{0, 0, 0, 0}))
	diff(t, [3]Float{11, 21, 31}, Hu(c4, [4]float64{1, 1, 1, 1}))
}

func TestComposeParameterOrder(t *testing.T) {
	// Parameter slots apply left to right in construction order: the leading
	// axes drive the innermost homotopy.
	a := Lerp(Float(1), Float(2))
	b := Translate(Float(10))
	d := Compose21(Compose(a, b), b)
	if !CheckU3(d) {
		t.Error("boundary contract violated for chained Compose")
	}
	for _, tt := range []struct {
		s    [3]float64
		want Float
	}{
		{[3]float64{0, 0, 0}, 1},
		{[3]float64{0, 0, 1}, 11},
		{[3]float64{0, 1, 0}, 11},
		{[3]float64{0, 1, 1}, 21},
		{[3]float64{1, 1, 1}, 22},
	} {
		if got := Hu(d, tt.s); got != tt.want {
			t.Errorf("got %v at s=%v, want %v", got, tt.s, tt.want)
		}
	}
}

func TestComposeShapes(t *testing.T) {
	lift := func(y Float, s float64) Float { return y.Add(Float(s)) }
	one := Lerp(Float(0), Float(1))
	two := Map(
		Square(Lerp(Float(0), Float(1)), Lerp(Float(0), Float(1))),
		func(p Pair[Float, Float]) Float { return p.A.Add(p.B) },
	)
	lift2 := SMap(Identity[Float](), lift)
	lift3 := SMap2(lift2, lift)

	if !CheckU3(Compose12(one, lift2)) {
		t.Error("boundary contract violated for Compose12")
	}
	if !CheckU4(Compose13(one, lift3)) {
		t.Error("boundary contract violated for Compose13")
	}
	if !CheckU4(Compose22(two, lift2)) {
		t.Error("boundary contract violated for Compose22")
	}
}
