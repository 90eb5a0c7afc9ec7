package homotopy

// Homotopy describes a continuous map between two functions f and g over a
// shared input domain X.
//
// F evaluates the function being mapped from, G the function being mapped to,
// and H the map itself at an interpolation parameter s. The parameter shape S
// is float64 for one-dimensional homotopies and [2]float64, [3]float64 or
// [4]float64 for higher-dimensional ones, with one scalar per axis. Every axis
// ranges over [0, 1].
//
// Implementations must uphold the boundary contract: H(x, start) == F(x) and
// H(x, end) == G(x) for every x, where start is the zero scalar or all-zero
// array and end is 1.0 or the all-one array. The combinators in this package
// preserve the contract by construction; [Check] and its higher-dimensional
// variants verify it for a given input.
//
// Values implementing Homotopy are immutable after construction and may be
// evaluated concurrently without synchronization.
type Homotopy[X, S, Y any] interface {
	// F evaluates the function being mapped from.
	F(x X) Y
	// G evaluates the function being mapped to.
	G(x X) Y
	// H evaluates the map at parameter s, such that H(x, start) == F(x) and
	// H(x, end) == G(x).
	H(x X, s S) Y
}

// Unit is the input type of homotopies whose shape is fully captured by the
// parameter, such as [Lerp] and [Circle].
type Unit struct{}

// Hu evaluates h at the zero value of X.
//
// This is often used with homotopies whose input is [Unit] or a tuple of
// units, where only the parameter varies.
func Hu[X, S, Y any](h Homotopy[X, S, Y], s S) Y {
	var x X
	return h.H(x, s)
}

type identity[X any] struct{}

func (identity[X]) F(x X) X            { return x }
func (identity[X]) G(x X) X            { return x }
func (identity[X]) H(x X, _ float64) X { return x }

// Identity returns the identity homotopy: F, G and H all return their input
// unchanged, ignoring the parameter.
func Identity[X any]() Homotopy[X, float64, X] {
	return identity[X]{}
}
