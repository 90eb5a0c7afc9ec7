package homotopy

import "fmt"

type list[S, Y any] struct {
	hs []Homotopy[Unit, S, Y]
}

func (l list[S, Y]) at(i int) Homotopy[Unit, S, Y] {
	if i < 0 || i >= len(l.hs) {
		panic(fmt.Sprintf("homotopy: list index %d out of range [0, %d)", i, len(l.hs)))
	}
	return l.hs[i]
}

func (l list[S, Y]) F(i int) Y      { return l.at(i).F(Unit{}) }
func (l list[S, Y]) G(i int) Y      { return l.at(i).G(Unit{}) }
func (l list[S, Y]) H(i int, s S) Y { return l.at(i).H(Unit{}, s) }

// List treats a sequence of homotopies over [Unit] as a single homotopy
// indexed by position. Evaluating an index outside [0, len(hs)) panics with a
// descriptive message.
func List[S, Y any](hs ...Homotopy[Unit, S, Y]) Homotopy[int, S, Y] {
	return list[S, Y]{hs: hs}
}

type listWith[X, S, Y any] struct {
	hs []Homotopy[X, S, Y]
}

func (l listWith[X, S, Y]) at(i int) Homotopy[X, S, Y] {
	if i < 0 || i >= len(l.hs) {
		panic(fmt.Sprintf("homotopy: list index %d out of range [0, %d)", i, len(l.hs)))
	}
	return l.hs[i]
}

func (l listWith[X, S, Y]) F(x Pair[int, X]) Y      { return l.at(x.A).F(x.B) }
func (l listWith[X, S, Y]) G(x Pair[int, X]) Y      { return l.at(x.A).G(x.B) }
func (l listWith[X, S, Y]) H(x Pair[int, X], s S) Y { return l.at(x.A).H(x.B, s) }

// ListWith is [List] for homotopies with a non-unit input: the combined input
// carries the index alongside the inner input.
func ListWith[X, S, Y any](hs ...Homotopy[X, S, Y]) Homotopy[Pair[int, X], S, Y] {
	return listWith[X, S, Y]{hs: hs}
}
