package homotopy

type mapped[X, S, Y1, Y2 any] struct {
	inner Homotopy[X, S, Y1]
	fn    func(Y1) Y2
}

func (m mapped[X, S, Y1, Y2]) F(x X) Y2      { return m.fn(m.inner.F(x)) }
func (m mapped[X, S, Y1, Y2]) G(x X) Y2      { return m.fn(m.inner.G(x)) }
func (m mapped[X, S, Y1, Y2]) H(x X, s S) Y2 { return m.fn(m.inner.H(x, s)) }

// Map applies fn to the output of h at every evaluation point. The parameter
// shape is unchanged, and the boundary contract is preserved for any pure fn.
func Map[X, S, Y1, Y2 any](h Homotopy[X, S, Y1], fn func(Y1) Y2) Homotopy[X, S, Y2] {
	return mapped[X, S, Y1, Y2]{inner: h, fn: fn}
}

// smap lifts an N-dimensional homotopy into an N+1-dimensional one. The
// leading axes drive the inner homotopy unchanged; the final axis is consumed
// directly by the transform, which receives 0.0 in F and 1.0 in G.
type smap[X, SN, S, Y1, Y2 any] struct {
	inner Homotopy[X, S, Y1]
	fn    func(Y1, float64) Y2
	split func(SN) (S, float64)
}

func (m smap[X, SN, S, Y1, Y2]) F(x X) Y2 { return m.fn(m.inner.F(x), 0) }
func (m smap[X, SN, S, Y1, Y2]) G(x X) Y2 { return m.fn(m.inner.G(x), 1) }
func (m smap[X, SN, S, Y1, Y2]) H(x X, s SN) Y2 {
	inner, last := m.split(s)
	return m.fn(m.inner.H(x, inner), last)
}

// SMap lifts a one-dimensional homotopy into a two-dimensional one whose
// second axis is consumed by fn. This is used when the output contains extra
// structure to interpolate over, or to extend a shape along a new dimension;
// see [Sweep] for an example.
func SMap[X, Y1, Y2 any](h Homotopy[X, float64, Y1], fn func(Y1, float64) Y2) Homotopy[X, [2]float64, Y2] {
	return smap[X, [2]float64, float64, Y1, Y2]{
		inner: h, fn: fn,
		split: func(s [2]float64) (float64, float64) { return s[0], s[1] },
	}
}

// SMap2 lifts a two-dimensional homotopy into a three-dimensional one whose
// final axis is consumed by fn.
func SMap2[X, Y1, Y2 any](h Homotopy[X, [2]float64, Y1], fn func(Y1, float64) Y2) Homotopy[X, [3]float64, Y2] {
	return smap[X, [3]float64, [2]float64, Y1, Y2]{
		inner: h, fn: fn,
		split: func(s [3]float64) ([2]float64, float64) {
			return [2]float64{s[0], s[1]}, s[2]
		},
	}
}

// SMap3 lifts a three-dimensional homotopy into a four-dimensional one whose
// final axis is consumed by fn.
func SMap3[X, Y1, Y2 any](h Homotopy[X, [3]float64, Y1], fn func(Y1, float64) Y2) Homotopy[X, [4]float64, Y2] {
	return smap[X, [4]float64, [3]float64, Y1, Y2]{
		inner: h, fn: fn,
		split: func(s [4]float64) ([3]float64, float64) {
			return [3]float64{s[0], s[1], s[2]}, s[3]
		},
	}
}
