package homotopy

// Pair is the input and output carrier of [Square]. It is comparable whenever
// its fields are, which is what the contract checkers require.
type Pair[A, B any] struct {
	A A
	B B
}

// Triple is the input and output carrier of [Cube].
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// Quad is the input and output carrier of [Cube4].
type Quad[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}
