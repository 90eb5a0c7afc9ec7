package homotopy

type square[X1, X2, Y1, Y2 any] struct {
	h1 Homotopy[X1, float64, Y1]
	h2 Homotopy[X2, float64, Y2]
}

func (q square[X1, X2, Y1, Y2]) F(x Pair[X1, X2]) Pair[Y1, Y2] {
	return Pair[Y1, Y2]{q.h1.F(x.A), q.h2.F(x.B)}
}

func (q square[X1, X2, Y1, Y2]) G(x Pair[X1, X2]) Pair[Y1, Y2] {
	return Pair[Y1, Y2]{q.h1.G(x.A), q.h2.G(x.B)}
}

func (q square[X1, X2, Y1, Y2]) H(x Pair[X1, X2], s [2]float64) Pair[Y1, Y2] {
	return Pair[Y1, Y2]{q.h1.H(x.A, s[0]), q.h2.H(x.B, s[1])}
}

// Square combines two independent homotopies into a two-dimensional one. Axis
// 0 of the parameter drives h1 and axis 1 drives h2; F and G apply the inner
// F and G componentwise.
func Square[X1, X2, Y1, Y2 any](
	h1 Homotopy[X1, float64, Y1],
	h2 Homotopy[X2, float64, Y2],
) Homotopy[Pair[X1, X2], [2]float64, Pair[Y1, Y2]] {
	return square[X1, X2, Y1, Y2]{h1: h1, h2: h2}
}

type cube[X1, X2, X3, Y1, Y2, Y3 any] struct {
	h1 Homotopy[X1, float64, Y1]
	h2 Homotopy[X2, float64, Y2]
	h3 Homotopy[X3, float64, Y3]
}

func (c cube[X1, X2, X3, Y1, Y2, Y3]) F(x Triple[X1, X2, X3]) Triple[Y1, Y2, Y3] {
	return Triple[Y1, Y2, Y3]{c.h1.F(x.A), c.h2.F(x.B), c.h3.F(x.C)}
}

func (c cube[X1, X2, X3, Y1, Y2, Y3]) G(x Triple[X1, X2, X3]) Triple[Y1, Y2, Y3] {
	return Triple[Y1, Y2, Y3]{c.h1.G(x.A), c.h2.G(x.B), c.h3.G(x.C)}
}

func (c cube[X1, X2, X3, Y1, Y2, Y3]) H(x Triple[X1, X2, X3], s [3]float64) Triple[Y1, Y2, Y3] {
	return Triple[Y1, Y2, Y3]{c.h1.H(x.A, s[0]), c.h2.H(x.B, s[1]), c.h3.H(x.C, s[2])}
}

// Cube combines three independent homotopies into a three-dimensional one,
// with axis k driving the k-th inner homotopy.
func Cube[X1, X2, X3, Y1, Y2, Y3 any](
	h1 Homotopy[X1, float64, Y1],
	h2 Homotopy[X2, float64, Y2],
	h3 Homotopy[X3, float64, Y3],
) Homotopy[Triple[X1, X2, X3], [3]float64, Triple[Y1, Y2, Y3]] {
	return cube[X1, X2, X3, Y1, Y2, Y3]{h1: h1, h2: h2, h3: h3}
}

type cube4[X1, X2, X3, X4, Y1, Y2, Y3, Y4 any] struct {
	h1 Homotopy[X1, float64, Y1]
	h2 Homotopy[X2, float64, Y2]
	h3 Homotopy[X3, float64, Y3]
	h4 Homotopy[X4, float64, Y4]
}

func (c cube4[X1, X2, X3, X4, Y1, Y2, Y3, Y4]) F(x Quad[X1, X2, X3, X4]) Quad[Y1, Y2, Y3, Y4] {
	return Quad[Y1, Y2, Y3, Y4]{c.h1.F(x.A), c.h2.F(x.B), c.h3.F(x.C), c.h4.F(x.D)}
}

func (c cube4[X1, X2, X3, X4, Y1, Y2, Y3, Y4]) G(x Quad[X1, X2, X3, X4]) Quad[Y1, Y2, Y3, Y4] {
	return Quad[Y1, Y2, Y3, Y4]{c.h1.G(x.A), c.h2.G(x.B), c.h3.G(x.C), c.h4.G(x.D)}
}

func (c cube4[X1, X2, X3, X4, Y1, Y2, Y3, Y4]) H(x Quad[X1, X2, X3, X4], s [4]float64) Quad[Y1, Y2, Y3, Y4] {
	return Quad[Y1, Y2, Y3, Y4]{
		c.h1.H(x.A, s[0]),
		c.h2.H(x.B, s[1]),
		c.h3.H(x.C, s[2]),
		c.h4.H(x.D, s[3]),
	}
}

// Cube4 combines four independent homotopies into a four-dimensional one,
// with axis k driving the k-th inner homotopy.
func Cube4[X1, X2, X3, X4, Y1, Y2, Y3, Y4 any](
	h1 Homotopy[X1, float64, Y1],
	h2 Homotopy[X2, float64, Y2],
	h3 Homotopy[X3, float64, Y3],
	h4 Homotopy[X4, float64, Y4],
) Homotopy[Quad[X1, X2, X3, X4], [4]float64, Quad[Y1, Y2, Y3, Y4]] {
	return cube4[X1, X2, X3, X4, Y1, Y2, Y3, Y4]{h1: h1, h2: h2, h3: h3, h4: h4}
}
