package geom

import "math"

// A Vector is a displacement in 2D space, as produced by subtracting
// one Point from another.
type Vector[T Scalar] struct {
	X, Y T
}

// Vec is shorthand for Vector[T]{x, y}.
func Vec[T Scalar](x, y T) Vector[T] {
	return Vector[T]{x, y}
}

// VConv converts a Vector[In] to a Vector[Out] with possible loss of
// precision.
func VConv[Out Scalar, In Scalar](v Vector[In]) Vector[Out] {
	return Vec(Out(v.X), Out(v.Y))
}

func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return Vector[T]{v.X + w.X, v.Y + w.Y}
}

func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	return Vector[T]{v.X - w.X, v.Y - w.Y}
}

func (v Vector[T]) Neg() Vector[T] {
	return Vector[T]{-v.X, -v.Y}
}

func (v Vector[T]) Mul(k T) Vector[T] {
	return Vector[T]{v.X * k, v.Y * k}
}

func (v Vector[T]) Div(k T) Vector[T] {
	return Vector[T]{v.X / k, v.Y / k}
}

// Dot returns the dot product of v and w.
func (v Vector[T]) Dot(w Vector[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product of v and w, the signed area of
// the parallelogram that they span.
func (v Vector[T]) Cross(w Vector[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// Len2 returns the squared length of v. Unlike Len, it is exact for
// integer scalars.
func (v Vector[T]) Len2() T {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vector[T]) Len() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Map returns the vector produced by applying f to each component of
// v in turn.
func (v Vector[T]) Map(f func(T) T) Vector[T] {
	return Vector[T]{f(v.X), f(v.Y)}
}

func (v Vector[T]) IsZero() bool {
	return (v.X == 0) && (v.Y == 0)
}

// Point returns v reinterpreted as a position.
func (v Vector[T]) Point() Point[T] {
	return Point[T]{v.X, v.Y}
}

// Size returns v reinterpreted as a size.
func (v Vector[T]) Size() Size[T] {
	return Size[T]{v.X, v.Y}
}
