package homotopy

type asVec2[X, S, Y any] struct {
	inner Homotopy[Pair[X, X], S, Pair[Y, Y]]
}

func (a asVec2[X, S, Y]) F(x [2]X) [2]Y {
	p := a.inner.F(Pair[X, X]{x[0], x[1]})
	return [2]Y{p.A, p.B}
}

func (a asVec2[X, S, Y]) G(x [2]X) [2]Y {
	p := a.inner.G(Pair[X, X]{x[0], x[1]})
	return [2]Y{p.A, p.B}
}

func (a asVec2[X, S, Y]) H(x [2]X, s S) [2]Y {
	p := a.inner.H(Pair[X, X]{x[0], x[1]}, s)
	return [2]Y{p.A, p.B}
}

// AsVec reinterprets a homotopy over uniform pairs as a homotopy over
// two-element arrays. Evaluated values are unchanged; this is purely a
// representation bridge, letting componentwise outputs such as 2D points be
// treated as vectors. The parameter shape is untouched.
func AsVec[X, S, Y any](h Homotopy[Pair[X, X], S, Pair[Y, Y]]) Homotopy[[2]X, S, [2]Y] {
	return asVec2[X, S, Y]{inner: h}
}

type asVec3[X, S, Y any] struct {
	inner Homotopy[Triple[X, X, X], S, Triple[Y, Y, Y]]
}

func (a asVec3[X, S, Y]) F(x [3]X) [3]Y {
	p := a.inner.F(Triple[X, X, X]{x[0], x[1], x[2]})
	return [3]Y{p.A, p.B, p.C}
}

func (a asVec3[X, S, Y]) G(x [3]X) [3]Y {
	p := a.inner.G(Triple[X, X, X]{x[0], x[1], x[2]})
	return [3]Y{p.A, p.B, p.C}
}

func (a asVec3[X, S, Y]) H(x [3]X, s S) [3]Y {
	p := a.inner.H(Triple[X, X, X]{x[0], x[1], x[2]}, s)
	return [3]Y{p.A, p.B, p.C}
}

// AsVec3 is [AsVec] for homotopies over uniform triples.
func AsVec3[X, S, Y any](h Homotopy[Triple[X, X, X], S, Triple[Y, Y, Y]]) Homotopy[[3]X, S, [3]Y] {
	return asVec3[X, S, Y]{inner: h}
}

type asVec4[X, S, Y any] struct {
	inner Homotopy[Quad[X, X, X, X], S, Quad[Y, Y, Y, Y]]
}

func (a asVec4[X, S, Y]) F(x [4]X) [4]Y {
	p := a.inner.F(Quad[X, X, X, X]{x[0], x[1], x[2], x[3]})
	return [4]Y{p.A, p.B, p.C, p.D}
}

func (a asVec4[X, S, Y]) G(x [4]X) [4]Y {
	p := a.inner.G(Quad[X, X, X, X]{x[0], x[1], x[2], x[3]})
	return [4]Y{p.A, p.B, p.C, p.D}
}

func (a asVec4[X, S, Y]) H(x [4]X, s S) [4]Y {
	p := a.inner.H(Quad[X, X, X, X]{x[0], x[1], x[2], x[3]}, s)
	return [4]Y{p.A, p.B, p.C, p.D}
}

// AsVec4 is [AsVec] for homotopies over uniform quadruples.
func AsVec4[X, S, Y any](h Homotopy[Quad[X, X, X, X], S, Quad[Y, Y, Y, Y]]) Homotopy[[4]X, S, [4]Y] {
	return asVec4[X, S, Y]{inner: h}
}
