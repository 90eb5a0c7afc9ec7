package homotopy

// pinned lowers an N-dimensional homotopy by one dimension by fixing a single
// axis of the inner parameter. The extend function inserts the pinned axis
// into a reduced-shape parameter; zero and one are the reduced shape's
// corners, so F and G satisfy the reduced boundary contract.
//
// Faces pin an axis to 0 or 1, slices pin it to an arbitrary value.
type pinned[X, SR, S, Y any] struct {
	inner  Homotopy[X, S, Y]
	extend func(SR) S
	zero   SR
	one    SR
}

func (p pinned[X, SR, S, Y]) F(x X) Y       { return p.inner.H(x, p.extend(p.zero)) }
func (p pinned[X, SR, S, Y]) G(x X) Y       { return p.inner.H(x, p.extend(p.one)) }
func (p pinned[X, SR, S, Y]) H(x X, s SR) Y { return p.inner.H(x, p.extend(s)) }

// insertAxis writes src into dst, skipping index axis, which is set to v.
// dst must be exactly one element longer than src.
func insertAxis(dst, src []float64, axis int, v float64) {
	j := 0
	for i := range dst {
		if i == axis {
			dst[i] = v
		} else {
			dst[i] = src[j]
			j++
		}
	}
}

func pin2[X, Y any](h Homotopy[X, [2]float64, Y], axis int, v float64) Homotopy[X, float64, Y] {
	return pinned[X, float64, [2]float64, Y]{
		inner: h,
		extend: func(s float64) [2]float64 {
			var out [2]float64
			out[axis] = v
			out[1-axis] = s
			return out
		},
		zero: 0,
		one:  1,
	}
}

func pin3[X, Y any](h Homotopy[X, [3]float64, Y], axis int, v float64) Homotopy[X, [2]float64, Y] {
	return pinned[X, [2]float64, [3]float64, Y]{
		inner: h,
		extend: func(s [2]float64) [3]float64 {
			var out [3]float64
			insertAxis(out[:], s[:], axis, v)
			return out
		},
		zero: [2]float64{0, 0},
		one:  [2]float64{1, 1},
	}
}

func pin4[X, Y any](h Homotopy[X, [4]float64, Y], axis int, v float64) Homotopy[X, [3]float64, Y] {
	return pinned[X, [3]float64, [4]float64, Y]{
		inner: h,
		extend: func(s [3]float64) [4]float64 {
			var out [4]float64
			insertAxis(out[:], s[:], axis, v)
			return out
		},
		zero: [3]float64{0, 0, 0},
		one:  [3]float64{1, 1, 1},
	}
}

// Left returns the left face of a two-dimensional homotopy, pinning axis 0 to
// 0 and leaving axis 1 as the remaining parameter. The face's F and G are the
// inner H with the free axis at 0 and 1 respectively, so the face again
// satisfies the boundary contract.
func Left[X, Y any](h Homotopy[X, [2]float64, Y]) Homotopy[X, float64, Y] {
	return pin2(h, 0, 0)
}

// Right returns the right face of a two-dimensional homotopy, pinning axis 0
// to 1.
func Right[X, Y any](h Homotopy[X, [2]float64, Y]) Homotopy[X, float64, Y] {
	return pin2(h, 0, 1)
}

// Top returns the top face of a two-dimensional homotopy, pinning axis 1 to
// 0.
func Top[X, Y any](h Homotopy[X, [2]float64, Y]) Homotopy[X, float64, Y] {
	return pin2(h, 1, 0)
}

// Bottom returns the bottom face of a two-dimensional homotopy, pinning axis
// 1 to 1.
func Bottom[X, Y any](h Homotopy[X, [2]float64, Y]) Homotopy[X, float64, Y] {
	return pin2(h, 1, 1)
}

// LeftRight returns the slice of a two-dimensional homotopy between its left
// and right faces, pinning axis 0 to s. Left and Right are the s == 0 and
// s == 1 slices.
func LeftRight[X, Y any](h Homotopy[X, [2]float64, Y], s float64) Homotopy[X, float64, Y] {
	return pin2(h, 0, s)
}

// TopBottom returns the slice of a two-dimensional homotopy between its top
// and bottom faces, pinning axis 1 to s.
func TopBottom[X, Y any](h Homotopy[X, [2]float64, Y], s float64) Homotopy[X, float64, Y] {
	return pin2(h, 1, s)
}

// Left3, Right3, Top3, Bottom3, Front3 and Back3 return the six faces of a
// three-dimensional homotopy: axis 0 pinned to 0 or 1, axis 1 pinned to 0 or
// 1, and axis 2 pinned to 0 or 1, respectively. The remaining axes are
// re-indexed contiguously.
func Left3[X, Y any](h Homotopy[X, [3]float64, Y]) Homotopy[X, [2]float64, Y] {
	return pin3(h, 0, 0)
}

func Right3[X, Y any](h Homotopy[X, [3]float64, Y]) Homotopy[X, [2]float64, Y] {
	return pin3(h, 0, 1)
}

func Top3[X, Y any](h Homotopy[X, [3]float64, Y]) Homotopy[X, [2]float64, Y] {
	return pin3(h, 1, 0)
}

func Bottom3[X, Y any](h Homotopy[X, [3]float64, Y]) Homotopy[X, [2]float64, Y] {
	return pin3(h, 1, 1)
}

func Front3[X, Y any](h Homotopy[X, [3]float64, Y]) Homotopy[X, [2]float64, Y] {
	return pin3(h, 2, 0)
}

func Back3[X, Y any](h Homotopy[X, [3]float64, Y]) Homotopy[X, [2]float64, Y] {
	return pin3(h, 2, 1)
}

// LeftRight3, TopBottom3 and FrontBack3 return slices of a three-dimensional
// homotopy, pinning axis 0, 1 or 2 to s.
func LeftRight3[X, Y any](h Homotopy[X, [3]float64, Y], s float64) Homotopy[X, [2]float64, Y] {
	return pin3(h, 0, s)
}

func TopBottom3[X, Y any](h Homotopy[X, [3]float64, Y], s float64) Homotopy[X, [2]float64, Y] {
	return pin3(h, 1, s)
}

func FrontBack3[X, Y any](h Homotopy[X, [3]float64, Y], s float64) Homotopy[X, [2]float64, Y] {
	return pin3(h, 2, s)
}

// Left4, Right4, Top4, Bottom4, Front4, Back4, Past4 and Future4 return the
// eight faces of a four-dimensional homotopy; Past4 and Future4 pin axis 3 to
// 0 and 1.
func Left4[X, Y any](h Homotopy[X, [4]float64, Y]) Homotopy[X, [3]float64, Y] {
	return pin4(h, 0, 0)
}

func Right4[X, Y any](h Homotopy[X, [4]float64, Y]) Homotopy[X, [3]float64, Y] {
	return pin4(h, 0, 1)
}

func Top4[X, Y any](h Homotopy[X, [4]float64, Y]) Homotopy[X, [3]float64, Y] {
	return pin4(h, 1, 0)
}

func Bottom4[X, Y any](h Homotopy[X, [4]float64, Y]) Homotopy[X, [3]float64, Y] {
	return pin4(h, 1, 1)
}

func Front4[X, Y any](h Homotopy[X, [4]float64, Y]) Homotopy[X, [3]float64, Y] {
	return pin4(h, 2, 0)
}

func Back4[X, Y any](h Homotopy[X, [4]float64, Y]) Homotopy[X, [3]float64, Y] {
	return pin4(h, 2, 1)
}

func Past4[X, Y any](h Homotopy[X, [4]float64, Y]) Homotopy[X, [3]float64, Y] {
	return pin4(h, 3, 0)
}

func Future4[X, Y any](h Homotopy[X, [4]float64, Y]) Homotopy[X, [3]float64, Y] {
	return pin4(h, 3, 1)
}

// LeftRight4, TopBottom4, FrontBack4 and PastFuture4 return slices of a
// four-dimensional homotopy, pinning axis 0, 1, 2 or 3 to s.
func LeftRight4[X, Y any](h Homotopy[X, [4]float64, Y], s float64) Homotopy[X, [3]float64, Y] {
	return pin4(h, 0, s)
}

func TopBottom4[X, Y any](h Homotopy[X, [4]float64, Y], s float64) Homotopy[X, [3]float64, Y] {
	return pin4(h, 1, s)
}

func FrontBack4[X, Y any](h Homotopy[X, [4]float64, Y], s float64) Homotopy[X, [3]float64, Y] {
	return pin4(h, 2, s)
}

func PastFuture4[X, Y any](h Homotopy[X, [4]float64, Y], s float64) Homotopy[X, [3]float64, Y] {
	return pin4(h, 3, s)
}
