package homotopy

// composition chains two homotopies end to end: the first's output feeds the
// second's input, and the combined parameter is the concatenation of both
// parameter spaces. The split function carves the combined parameter into the
// leading prefix for a and the trailing suffix for b, which is the only part
// that depends on the concrete shapes.
type composition[X, Y, Z, S1, S2, S any] struct {
	a     Homotopy[X, S1, Y]
	b     Homotopy[Y, S2, Z]
	split func(S) (S1, S2)
}

func (c composition[X, Y, Z, S1, S2, S]) F(x X) Z { return c.b.F(c.a.F(x)) }
func (c composition[X, Y, Z, S1, S2, S]) G(x X) Z { return c.b.G(c.a.G(x)) }
func (c composition[X, Y, Z, S1, S2, S]) H(x X, s S) Z {
	s1, s2 := c.split(s)
	return c.b.H(c.a.H(x, s1), s2)
}

// Compose chains two one-dimensional homotopies into a two-dimensional one.
// Axis 0 drives a and axis 1 drives b, so the stages stay independently
// controllable instead of collapsing into a single parameter. F(x) is
// b.F(a.F(x)) and G(x) is b.G(a.G(x)).
func Compose[X, Y, Z any](
	a Homotopy[X, float64, Y],
	b Homotopy[Y, float64, Z],
) Homotopy[X, [2]float64, Z] {
	return composition[X, Y, Z, float64, float64, [2]float64]{
		a: a, b: b,
		split: func(s [2]float64) (float64, float64) { return s[0], s[1] },
	}
}

// Compose21 chains a two-dimensional homotopy with a one-dimensional one,
// yielding a three-dimensional homotopy whose leading two axes drive a.
func Compose21[X, Y, Z any](
	a Homotopy[X, [2]float64, Y],
	b Homotopy[Y, float64, Z],
) Homotopy[X, [3]float64, Z] {
	return composition[X, Y, Z, [2]float64, float64, [3]float64]{
		a: a, b: b,
		split: func(s [3]float64) ([2]float64, float64) {
			return [2]float64{s[0], s[1]}, s[2]
		},
	}
}

// Compose12 chains a one-dimensional homotopy with a two-dimensional one,
// yielding a three-dimensional homotopy whose leading axis drives a.
func Compose12[X, Y, Z any](
	a Homotopy[X, float64, Y],
	b Homotopy[Y, [2]float64, Z],
) Homotopy[X, [3]float64, Z] {
	return composition[X, Y, Z, float64, [2]float64, [3]float64]{
		a: a, b: b,
		split: func(s [3]float64) (float64, [2]float64) {
			return s[0], [2]float64{s[1], s[2]}
		},
	}
}

// Compose31 chains a three-dimensional homotopy with a one-dimensional one,
// yielding a four-dimensional homotopy whose leading three axes drive a.
func Compose31[X, Y, Z any](
	a Homotopy[X, [3]float64, Y],
	b Homotopy[Y, float64, Z],
) Homotopy[X, [4]float64, Z] {
	return composition[X, Y, Z, [3]float64, float64, [4]float64]{
		a: a, b: b,
		split: func(s [4]float64) ([3]float64, float64) {
			return [3]float64{s[0], s[1], s[2]}, s[3]
		},
	}
}

// Compose13 chains a one-dimensional homotopy with a three-dimensional one,
// yielding a four-dimensional homotopy whose leading axis drives a.
func Compose13[X, Y, Z any](
	a Homotopy[X, float64, Y],
	b Homotopy[Y, [3]float64, Z],
) Homotopy[X, [4]float64, Z] {
	return composition[X, Y, Z, float64, [3]float64, [4]float64]{
		a: a, b: b,
		split: func(s [4]float64) (float64, [3]float64) {
			return s[0], [3]float64{s[1], s[2], s[3]}
		},
	}
}

// Compose22 chains two two-dimensional homotopies, yielding a
// four-dimensional homotopy whose leading two axes drive a.
func Compose22[X, Y, Z any](
	a Homotopy[X, [2]float64, Y],
	b Homotopy[Y, [2]float64, Z],
) Homotopy[X, [4]float64, Z] {
	return composition[X, Y, Z, [2]float64, [2]float64, [4]float64]{
		a: a, b: b,
		split: func(s [4]float64) ([2]float64, [2]float64) {
			return [2]float64{s[0], s[1]}, [2]float64{s[2], s[3]}
		},
	}
}
