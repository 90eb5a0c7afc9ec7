package homotopy

type quadBez[Y Linear[Y]] struct {
	p0 Y
	p1 Y
	p2 Y
}

func (q quadBez[Y]) F(Unit) Y { return q.p0 }
func (q quadBez[Y]) G(Unit) Y { return q.p2 }
func (q quadBez[Y]) H(_ Unit, s float64) Y {
	a := lerp(q.p0, q.p1, s)
	b := lerp(q.p1, q.p2, s)
	return lerp(a, b, s)
}

// QuadBez returns the quadratic Bézier homotopy from p0 to p2 with control
// point p1, evaluated by de Casteljau's algorithm.
func QuadBez[Y Linear[Y]](p0, p1, p2 Y) Homotopy[Unit, float64, Y] {
	return quadBez[Y]{p0: p0, p1: p1, p2: p2}
}

// QuadBezFromLinear returns a quadratic Bézier that traces the same values as
// [Lerp](a, b), by placing the control point at the midpoint of a and b.
func QuadBezFromLinear[Y Linear[Y]](a, b Y) Homotopy[Unit, float64, Y] {
	return QuadBez(a, a.Mul(0.5).Add(b.Mul(0.5)), b)
}
