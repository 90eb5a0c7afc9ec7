package homotopy

// Vec2 is a two-component coordinate vector. Its arithmetic is componentwise,
// so Vec2[Float] satisfies [Linear] and can serve as the output type of any
// primitive in this package. Vectors nest: Vec2[Vec2[Float]] is itself Linear.
type Vec2[T Linear[T]] [2]T

// Add adds two vectors and returns the resulting vector.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0].Add(o[0]), v[1].Add(o[1])}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0].Sub(o[0]), v[1].Sub(o[1])}
}

func (v Vec2[T]) Mul(s float64) Vec2[T] {
	return Vec2[T]{v[0].Mul(s), v[1].Mul(s)}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2[T]) Lerp(o Vec2[T], s float64) Vec2[T] {
	return lerp(v, o, s)
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vec2[T]) Negate() Vec2[T] {
	return v.Mul(-1)
}

// Vec3 is a three-component coordinate vector with componentwise arithmetic.
type Vec3[T Linear[T]] [3]T

// Add adds two vectors and returns the resulting vector.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0].Add(o[0]), v[1].Add(o[1]), v[2].Add(o[2])}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0].Sub(o[0]), v[1].Sub(o[1]), v[2].Sub(o[2])}
}

func (v Vec3[T]) Mul(s float64) Vec3[T] {
	return Vec3[T]{v[0].Mul(s), v[1].Mul(s), v[2].Mul(s)}
}

// Lerp linearly interpolates between two vectors.
func (v Vec3[T]) Lerp(o Vec3[T], s float64) Vec3[T] {
	return lerp(v, o, s)
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vec3[T]) Negate() Vec3[T] {
	return v.Mul(-1)
}

// Vec4 is a four-component coordinate vector with componentwise arithmetic.
type Vec4[T Linear[T]] [4]T

// Add adds two vectors and returns the resulting vector.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0].Add(o[0]), v[1].Add(o[1]), v[2].Add(o[2]), v[3].Add(o[3])}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0].Sub(o[0]), v[1].Sub(o[1]), v[2].Sub(o[2]), v[3].Sub(o[3])}
}

func (v Vec4[T]) Mul(s float64) Vec4[T] {
	return Vec4[T]{v[0].Mul(s), v[1].Mul(s), v[2].Mul(s), v[3].Mul(s)}
}

// Lerp linearly interpolates between two vectors.
func (v Vec4[T]) Lerp(o Vec4[T], s float64) Vec4[T] {
	return lerp(v, o, s)
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vec4[T]) Negate() Vec4[T] {
	return v.Mul(-1)
}
