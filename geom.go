// Package geom provides generic primitives for 2D geometry: points,
// vectors, sizes, rectangles, circles, and colors parameterized over
// a numeric scalar type, along with pairwise collision predicates
// between them.
//
// It is patterned after image.Point and image.Rectangle, but vastly
// extends their capabilities. All types are plain value aggregates
// with no hidden state, so every operation is exact for integer
// scalars and safe to use concurrently.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)
