// Package homotopy provides an algebra of continuous deformations between
// functions. Given two functions f and g over the same domain, a homotopy is
// a map h with an extra parameter s in [0, 1] such that h(x, 0) == f(x) and
// h(x, 1) == g(x), called the boundary contract. The package's value is a
// composable combinator calculus over such maps: it builds
// higher-dimensional homotopies out of primitive ones, extracts
// lower-dimensional ones back out, transforms outputs, and verifies the
// boundary contract.
//
// # Homotopy
//
// This package is a manual, idiomatic Go port of the [homotopy] Rust crate.
// The Rust original expresses each combinator as a trait implementation
// selected per parameter shape; here the shared capability is the
// [Homotopy] interface, generic over input, parameter shape, and output,
// with the parameter shape drawn from the closed set float64, [2]float64,
// [3]float64 and [4]float64.
//
// # Primitives
//
// The primitive homotopies are [Identity], [Dirac], [DiracFrom], [Lerp],
// [QuadBez], [CubicBez], [Circle] and [Translate]. Their outputs are generic
// over any type satisfying [Linear], i.e. supporting addition, subtraction,
// and scaling by a scalar; [Float] and the [Vec2] family are ready-made
// implementations.
//
// # Combinators
//
// Dimension-raising combinators build an N-dimensional homotopy from
// lower-dimensional ones: [Square], [Cube] and [Cube4] run independent
// homotopies side by side, one per axis; [Compose] and its shape variants
// chain two homotopies end to end, concatenating their parameter spaces so
// that sequential stages remain independently controllable; [SMap] lifts a
// homotopy into one extra dimension consumed by an output transform.
//
// Dimension-lowering combinators go the other way: [Left], [Right], [Top],
// [Bottom] and their 3- and 4-dimensional counterparts extract a face by
// pinning one axis to its boundary, [LeftRight] and friends pin an axis to
// an arbitrary value, and [Diagonal] drives all axes with a single shared
// parameter.
//
// Shape-adapting combinators change representation without changing values:
// [AsVec] bridges between tuple and fixed-size array form, [Inverse]
// reverses direction, and [Map] transforms outputs in place.
//
// Within an N-dimensional parameter, the axes map to named face pairs by
// convention: axis 0 is left/right, axis 1 top/bottom, axis 2 front/back,
// and axis 3 past/future, with the first-named face of each pair at 0.
//
// # Checking the contract
//
// Every combinator preserves the boundary contract by construction. [Check],
// [Check2], [Check3] and [Check4] verify it for a given input, recursively
// descending into every face of higher-dimensional homotopies; the CheckU
// variants use the zero value of the input, for homotopies whose input is
// [Unit] or a tuple of units. Comparisons are exact, which the [Circle]
// primitive accommodates by returning exact coordinates at the canonical
// angles.
//
// All values in this package are immutable after construction. Evaluation is
// pure and terminates in time proportional to the depth of the combinator
// tree, and values may be shared freely between goroutines.
//
// [homotopy]: https://github.com/PistonDevelopers/homotopy
package homotopy
