package homotopy

import "math"

type circle[T Linear[T]] struct {
	center [2]T
	radius T
}

func (c circle[T]) F(Unit) [2]T {
	return [2]T{c.center[0].Add(c.radius), c.center[1]}
}

// The curve is closed, so G coincides with F.
func (c circle[T]) G(Unit) [2]T {
	return [2]T{c.center[0].Add(c.radius), c.center[1]}
}

func (c circle[T]) H(_ Unit, s float64) [2]T {
	// Force exact values at the canonical angles. The contract checkers use
	// exact equality, and Sincos drifts at multiples of π/2.
	switch s {
	case 1.0:
		return c.G(Unit{})
	case 0.5:
		return [2]T{c.center[0].Sub(c.radius), c.center[1]}
	case 0.25:
		return [2]T{c.center[0], c.center[1].Add(c.radius)}
	case 0.75:
		return [2]T{c.center[0], c.center[1].Sub(c.radius)}
	}
	sin, cos := math.Sincos(s * 2 * math.Pi)
	return [2]T{
		c.center[0].Add(c.radius.Mul(cos)),
		c.center[1].Add(c.radius.Mul(sin)),
	}
}

// Circle returns the homotopy that generates points on a circle, starting and
// ending at angle 0 (the point center + (radius, 0)). As the curve is closed,
// F and G coincide.
//
// The canonical parameters 0, 0.25, 0.5, 0.75 and 1 evaluate to exact
// coordinates instead of trigonometric approximations.
func Circle[T Linear[T]](center [2]T, radius T) Homotopy[Unit, float64, [2]T] {
	return circle[T]{center: center, radius: radius}
}

// Sweep interpolates between two circle-like homotopies, such as two
// [Circle] values.
//
// It is constructed by taking the diagonal of the square of a and b, making
// both rotate together under a single parameter, and lifting the result with
// [SMap] so that the new second axis interpolates componentwise between the
// two rotating points.
func Sweep[T Linear[T]](a, b Homotopy[Unit, float64, [2]T]) Homotopy[Pair[Unit, Unit], [2]float64, [2]T] {
	return SMap(Diagonal(Square(a, b)), func(p Pair[[2]T, [2]T], s float64) [2]T {
		return [2]T{
			lerp(p.A[0], p.B[0], s),
			lerp(p.A[1], p.B[1], s),
		}
	})
}
