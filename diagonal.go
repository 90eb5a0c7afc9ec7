package homotopy

// diagonal collapses every axis of the inner parameter to a shared scalar.
// F and G pass through unchanged: the all-zero and all-one corners are fixed
// points of equalizing axes.
type diagonal[X, S, Y any] struct {
	inner Homotopy[X, S, Y]
	fill  func(float64) S
}

func (d diagonal[X, S, Y]) F(x X) Y            { return d.inner.F(x) }
func (d diagonal[X, S, Y]) G(x X) Y            { return d.inner.G(x) }
func (d diagonal[X, S, Y]) H(x X, s float64) Y { return d.inner.H(x, d.fill(s)) }

// Diagonal returns the diagonal of a two-dimensional homotopy: the
// one-dimensional homotopy that drives both axes with the same value.
func Diagonal[X, Y any](h Homotopy[X, [2]float64, Y]) Homotopy[X, float64, Y] {
	return diagonal[X, [2]float64, Y]{
		inner: h,
		fill:  func(s float64) [2]float64 { return [2]float64{s, s} },
	}
}

// Diagonal3 returns the diagonal of a three-dimensional homotopy.
func Diagonal3[X, Y any](h Homotopy[X, [3]float64, Y]) Homotopy[X, float64, Y] {
	return diagonal[X, [3]float64, Y]{
		inner: h,
		fill:  func(s float64) [3]float64 { return [3]float64{s, s, s} },
	}
}

// Diagonal4 returns the diagonal of a four-dimensional homotopy.
func Diagonal4[X, Y any](h Homotopy[X, [4]float64, Y]) Homotopy[X, float64, Y] {
	return diagonal[X, [4]float64, Y]{
		inner: h,
		fill:  func(s float64) [4]float64 { return [4]float64{s, s, s, s} },
	}
}
