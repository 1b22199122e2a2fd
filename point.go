package geom

import (
	"image"

	"golang.org/x/exp/constraints"
)

// A Point is a position in 2D space. Subtracting two points yields
// the Vector between them; offsetting a point by a Vector yields
// another point.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{x, y}
}

func FromImagePoint(p image.Point) Point[int] {
	return Pt(p.X, p.Y)
}

// PConv converts a Point[In] to a Point[Out] with possible loss of
// precision.
func PConv[Out Scalar, In Scalar](p Point[In]) Point[Out] {
	return Pt(Out(p.X), Out(p.Y))
}

// Add returns p offset by v.
func (p Point[T]) Add(v Vector[T]) Point[T] {
	return Point[T]{p.X + v.X, p.Y + v.Y}
}

// Sub returns p offset by -v.
func (p Point[T]) Sub(v Vector[T]) Point[T] {
	return Point[T]{p.X - v.X, p.Y - v.Y}
}

// To returns the vector from p to q, i.e. q - p.
func (p Point[T]) To(q Point[T]) Vector[T] {
	return Vector[T]{q.X - p.X, q.Y - p.Y}
}

func (p Point[T]) Mul(k T) Point[T] {
	return Point[T]{p.X * k, p.Y * k}
}

func (p Point[T]) Div(k T) Point[T] {
	return Point[T]{p.X / k, p.Y / k}
}

// Map returns the point produced by applying f to each coordinate of
// p in turn.
func (p Point[T]) Map(f func(T) T) Point[T] {
	return Point[T]{f(p.X), f(p.Y)}
}

// In reports whether p lies within r, inclusive of r's boundary on
// all four edges.
func (p Point[T]) In(r Rect[T]) bool {
	ep := r.Endpoint()
	return p.X >= r.Origin.X && p.X <= ep.X &&
		p.Y >= r.Origin.Y && p.Y <= ep.Y
}

// Mod wraps p into r, yielding the point inside r that p would map to
// if r tiled the entire plane.
func Mod[T constraints.Integer](p Point[T], r Rect[T]) Point[T] {
	w, h := r.Dx(), r.Dy()
	d := r.Origin.To(p)
	d.X = d.X % w
	if d.X < 0 {
		d.X += w
	}
	d.Y = d.Y % h
	if d.Y < 0 {
		d.Y += h
	}
	return r.Origin.Add(d)
}

// Bounds returns the zero-size Rect at p.
func (p Point[T]) Bounds() Rect[T] {
	return Rect[T]{Origin: p}
}

func (p Point[T]) IsZero() bool {
	return (p.X == 0) && (p.Y == 0)
}

func (p Point[T]) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// Min returns the componentwise minimum of points.
func Min[T Scalar](points ...Point[T]) Point[T] {
	r := points[0]
	for _, p := range points[1:] {
		if p.X < r.X {
			r.X = p.X
		}
		if p.Y < r.Y {
			r.Y = p.Y
		}
	}
	return r
}

// Max returns the componentwise maximum of points.
func Max[T Scalar](points ...Point[T]) Point[T] {
	r := points[0]
	for _, p := range points[1:] {
		if p.X > r.X {
			r.X = p.X
		}
		if p.Y > r.Y {
			r.Y = p.Y
		}
	}
	return r
}
