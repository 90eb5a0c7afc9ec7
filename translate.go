package homotopy

type translate[Y Linear[Y]] struct {
	delta Y
}

func (t translate[Y]) F(x Y) Y            { return x }
func (t translate[Y]) G(x Y) Y            { return x.Add(t.delta) }
func (t translate[Y]) H(x Y, s float64) Y { return x.Add(t.delta.Mul(s)) }

// Translate returns the homotopy that moves its input by delta: F is the
// identity, G adds delta, and H adds s*delta.
func Translate[Y Linear[Y]](delta Y) Homotopy[Y, float64, Y] {
	return translate[Y]{delta: delta}
}

type translate2[T Linear[T]] struct {
	delta [2]T
}

func (t translate2[T]) F(x [2]T) [2]T { return x }
func (t translate2[T]) G(x [2]T) [2]T {
	return [2]T{x[0].Add(t.delta[0]), x[1].Add(t.delta[1])}
}
func (t translate2[T]) H(x [2]T, s float64) [2]T {
	return [2]T{x[0].Add(t.delta[0].Mul(s)), x[1].Add(t.delta[1].Mul(s))}
}

// Translate2 is [Translate] for plain two-element arrays, as produced by
// [AsVec] and [Circle].
func Translate2[T Linear[T]](delta [2]T) Homotopy[[2]T, float64, [2]T] {
	return translate2[T]{delta: delta}
}

type translate3[T Linear[T]] struct {
	delta [3]T
}

func (t translate3[T]) F(x [3]T) [3]T { return x }
func (t translate3[T]) G(x [3]T) [3]T {
	return [3]T{x[0].Add(t.delta[0]), x[1].Add(t.delta[1]), x[2].Add(t.delta[2])}
}
func (t translate3[T]) H(x [3]T, s float64) [3]T {
	return [3]T{
		x[0].Add(t.delta[0].Mul(s)),
		x[1].Add(t.delta[1].Mul(s)),
		x[2].Add(t.delta[2].Mul(s)),
	}
}

// Translate3 is [Translate] for plain three-element arrays, as produced by
// [AsVec3].
func Translate3[T Linear[T]](delta [3]T) Homotopy[[3]T, float64, [3]T] {
	return translate3[T]{delta: delta}
}

type translate4[T Linear[T]] struct {
	delta [4]T
}

func (t translate4[T]) F(x [4]T) [4]T { return x }
func (t translate4[T]) G(x [4]T) [4]T {
	return [4]T{
		x[0].Add(t.delta[0]),
		x[1].Add(t.delta[1]),
		x[2].Add(t.delta[2]),
		x[3].Add(t.delta[3]),
	}
}
func (t translate4[T]) H(x [4]T, s float64) [4]T {
	return [4]T{
		x[0].Add(t.delta[0].Mul(s)),
		x[1].Add(t.delta[1].Mul(s)),
		x[2].Add(t.delta[2].Mul(s)),
		x[3].Add(t.delta[3].Mul(s)),
	}
}

// Translate4 is [Translate] for plain four-element arrays, as produced by
// [AsVec4].
func Translate4[T Linear[T]](delta [4]T) Homotopy[[4]T, float64, [4]T] {
	return translate4[T]{delta: delta}
}
