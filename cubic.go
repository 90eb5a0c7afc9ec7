package homotopy

type cubicBez[Y Linear[Y]] struct {
	p0 Y
	p1 Y
	p2 Y
	p3 Y
}

func (c cubicBez[Y]) F(Unit) Y { return c.p0 }
func (c cubicBez[Y]) G(Unit) Y { return c.p3 }
func (c cubicBez[Y]) H(_ Unit, s float64) Y {
	a := lerp(c.p0, c.p1, s)
	b := lerp(c.p2, c.p3, s)
	return lerp(a, b, s)
}

// CubicBez returns the cubic Bézier homotopy from p0 to p3 with control
// points p1 and p2.
//
// H uses the reduced two-level form lerp(lerp(p0, p1, s), lerp(p2, p3, s), s)
// rather than full three-level de Casteljau. The two agree exactly when
// p1 == p2, which is what [CubicBezFromQuad] produces; for independent
// control points the curve differs from the standard cubic Bézier.
func CubicBez[Y Linear[Y]](p0, p1, p2, p3 Y) Homotopy[Unit, float64, Y] {
	return cubicBez[Y]{p0: p0, p1: p1, p2: p2, p3: p3}
}

// CubicBezFromQuad returns a cubic Bézier that traces the same values as
// [QuadBez](a, b, c), by using b for both control points.
func CubicBezFromQuad[Y Linear[Y]](a, b, c Y) Homotopy[Unit, float64, Y] {
	return CubicBez(a, b, b, c)
}
