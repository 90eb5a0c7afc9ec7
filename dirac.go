package homotopy

type dirac struct{}

func (dirac) F(Unit) Float { return 1 }
func (dirac) G(Unit) Float { return 0 }
func (dirac) H(_ Unit, s float64) Float {
	if s == 0 {
		return 1
	}
	return 0
}

// Dirac returns the Dirac step homotopy: 1.0 at s == 0 and 0.0 everywhere
// else. Since H is 0.0 at s == 1, the boundary contract holds.
func Dirac() Homotopy[Unit, float64, Float] {
	return dirac{}
}

type diracFrom[X, Y any] struct {
	fx func(X) Y
	gx func(X) Y
}

func (d diracFrom[X, Y]) F(x X) Y { return d.fx(x) }
func (d diracFrom[X, Y]) G(x X) Y { return d.gx(x) }
func (d diracFrom[X, Y]) H(x X, s float64) Y {
	if s == 0 {
		return d.fx(x)
	}
	return d.gx(x)
}

// DiracFrom returns the two-branch step homotopy between f and g: H is f(x)
// at s == 0 and g(x) everywhere else. Since H is g(x) at s == 1, the boundary
// contract holds.
func DiracFrom[X, Y any](f, g func(X) Y) Homotopy[X, float64, Y] {
	return diracFrom[X, Y]{fx: f, gx: g}
}
