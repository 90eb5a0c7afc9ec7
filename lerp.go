package homotopy

type lerpHomotopy[Y Linear[Y]] struct {
	a Y
	b Y
}

func (l lerpHomotopy[Y]) F(Unit) Y { return l.a }
func (l lerpHomotopy[Y]) G(Unit) Y { return l.b }
func (l lerpHomotopy[Y]) H(_ Unit, s float64) Y {
	return lerp(l.a, l.b, s)
}

// Lerp returns the linear interpolation homotopy between the values a and b.
// H computes a*(1-s) + b*s, so the endpoints are reproduced exactly.
//
// Lerp is the simplest non-trivial homotopy and the building block of the
// Bézier primitives; see [QuadBez] and [CubicBez].
func Lerp[Y Linear[Y]](a, b Y) Homotopy[Unit, float64, Y] {
	return lerpHomotopy[Y]{a: a, b: b}
}
