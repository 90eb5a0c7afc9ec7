package homotopy

// Check reports whether the boundary contract holds for h at input x: H at 0
// must equal F and H at 1 must equal G. Equality is exact; callers that need
// tolerance-based comparison must supply their own.
func Check[X any, Y comparable](h Homotopy[X, float64, Y], x X) bool {
	return h.H(x, 0) == h.F(x) &&
		h.H(x, 1) == h.G(x)
}

// CheckU is [Check] at the zero value of X.
func CheckU[X any, Y comparable](h Homotopy[X, float64, Y]) bool {
	var x X
	return Check(h, x)
}

// Check2 reports whether the boundary contract holds for a two-dimensional
// homotopy at input x. It checks the full corners, then recursively checks
// every face.
func Check2[X any, Y comparable](h Homotopy[X, [2]float64, Y], x X) bool {
	return h.H(x, [2]float64{0, 0}) == h.F(x) &&
		h.H(x, [2]float64{1, 1}) == h.G(x) &&
		Check(Left(h), x) &&
		Check(Right(h), x) &&
		Check(Top(h), x) &&
		Check(Bottom(h), x)
}

// CheckU2 is [Check2] at the zero value of X.
func CheckU2[X any, Y comparable](h Homotopy[X, [2]float64, Y]) bool {
	var x X
	return Check2(h, x)
}

// Check3 reports whether the boundary contract holds for a three-dimensional
// homotopy at input x, recursing over all six faces.
func Check3[X any, Y comparable](h Homotopy[X, [3]float64, Y], x X) bool {
	return h.H(x, [3]float64{0, 0, 0}) == h.F(x) &&
		h.H(x, [3]float64{1, 1, 1}) == h.G(x) &&
		Check2(Left3(h), x) &&
		Check2(Right3(h), x) &&
		Check2(Top3(h), x) &&
		Check2(Bottom3(h), x) &&
		Check2(Front3(h), x) &&
		Check2(Back3(h), x)
}

// CheckU3 is [Check3] at the zero value of X.
func CheckU3[X any, Y comparable](h Homotopy[X, [3]float64, Y]) bool {
	var x X
	return Check3(h, x)
}

// Check4 reports whether the boundary contract holds for a four-dimensional
// homotopy at input x, recursing over all eight faces.
func Check4[X any, Y comparable](h Homotopy[X, [4]float64, Y], x X) bool {
	return h.H(x, [4]float64{0, 0, 0, 0}) == h.F(x) &&
		h.H(x, [4]float64{1, 1, 1, 1}) == h.G(x) &&
		Check3(Left4(h), x) &&
		Check3(Right4(h), x) &&
		Check3(Top4(h), x) &&
		Check3(Bottom4(h), x) &&
		Check3(Front4(h), x) &&
		Check3(Back4(h), x) &&
		Check3(Past4(h), x) &&
		Check3(Future4(h), x)
}

// CheckU4 is [Check4] at the zero value of X.
func CheckU4[X any, Y comparable](h Homotopy[X, [4]float64, Y]) bool {
	var x X
	return Check4(h, x)
}
