package homotopy

type inverse[X, Y any] struct {
	inner Homotopy[X, float64, Y]
}

func (i inverse[X, Y]) F(x X) Y            { return i.inner.G(x) }
func (i inverse[X, Y]) G(x X) Y            { return i.inner.F(x) }
func (i inverse[X, Y]) H(x X, s float64) Y { return i.inner.H(x, 1-s) }

// Inverse reverses the direction of a homotopy: F and G swap and H runs the
// parameter backwards. Reversing is an involution, so the boundary contract
// is preserved automatically.
func Inverse[X, Y any](h Homotopy[X, float64, Y]) Homotopy[X, float64, Y] {
	return inverse[X, Y]{inner: h}
}
