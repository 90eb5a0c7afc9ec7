package homotopy

// Linear constrains output types that support addition, subtraction, and
// scaling by a scalar. These are the only arithmetic capabilities the
// primitives in this package require; any affine combination of values can be
// expressed with them.
type Linear[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float64) T
}

// Float is a float64 satisfying [Linear]. It is the element type used by the
// scalar-valued primitives and by [Vec2] and friends.
type Float float64

// Add returns f+o.
func (f Float) Add(o Float) Float { return f + o }

// Sub returns f−o.
func (f Float) Sub(o Float) Float { return f - o }

// Mul returns f scaled by s.
func (f Float) Mul(s float64) Float { return f * Float(s) }

// lerp computes the affine combination a*(1-s) + b*s.
func lerp[T Linear[T]](a, b T, s float64) T {
	return a.Mul(1 - s).Add(b.Mul(s))
}
