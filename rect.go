package geom

import "image"

// A Rect is an axis-aligned rectangle described by its origin corner
// and its size. Its opposite corner is Origin + Size, available via
// Endpoint. A Rect is well-formed if both size components are
// non-negative; construction does not enforce this, and predicates
// evaluate an inverted rectangle algebraically as the degenerate
// interval that it describes. Use Canon to normalize.
type Rect[T Scalar] struct {
	Origin Point[T]
	Size   Size[T]
}

// Rt is shorthand for Rect[T]{Pt(x, y), Sz(w, h)}.
func Rt[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{Point[T]{x, y}, Size[T]{w, h}}
}

// RectFromPoints returns the well-formed Rect spanned by two opposite
// corners, given in either order.
func RectFromPoints[T Scalar](a, b Point[T]) Rect[T] {
	t := Min(a, b)
	return Rect[T]{Origin: t, Size: t.To(Max(a, b)).Size()}
}

func FromImageRect(r image.Rectangle) Rect[int] {
	return RectFromPoints(FromImagePoint(r.Min), FromImagePoint(r.Max))
}

// RConv converts a Rect[In] to a Rect[Out] with possible loss of
// precision.
func RConv[Out Scalar, In Scalar](r Rect[In]) Rect[Out] {
	return Rect[Out]{
		Origin: PConv[Out](r.Origin),
		Size:   SConv[Out](r.Size),
	}
}

// Endpoint returns the corner of r opposite its origin, Origin + Size.
func (r Rect[T]) Endpoint() Point[T] {
	return r.Origin.Add(r.Size.Vector())
}

func (r Rect[T]) Dx() T {
	return r.Size.Width
}

func (r Rect[T]) Dy() T {
	return r.Size.Height
}

// Translate returns r shifted by d.
func (r Rect[T]) Translate(d Vector[T]) Rect[T] {
	return Rect[T]{Origin: r.Origin.Add(d), Size: r.Size}
}

// Scale returns r with its size multiplied componentwise by x and y.
// The origin is unchanged.
func (r Rect[T]) Scale(x, y T) Rect[T] {
	return Rect[T]{Origin: r.Origin, Size: Sz(r.Size.Width*x, r.Size.Height*y)}
}

// Resize returns r with the same origin but the given size.
func (r Rect[T]) Resize(size Size[T]) Rect[T] {
	return Rect[T]{Origin: r.Origin, Size: size}
}

// Canon returns the well-formed rectangle covering the same region as
// r, flipping it across either axis with a negative size.
func (r Rect[T]) Canon() Rect[T] {
	if r.Size.Width < 0 {
		r.Origin.X += r.Size.Width
		r.Size.Width = -r.Size.Width
	}
	if r.Size.Height < 0 {
		r.Origin.Y += r.Size.Height
		r.Size.Height = -r.Size.Height
	}
	return r
}

// Center returns the point at the middle of r.
func (r Rect[T]) Center() Point[T] {
	return r.Origin.Add(r.Size.Div(2).Vector())
}

// CenterAt returns a rectangle with the same size as r but with its
// center at p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	return Rect[T]{
		Origin: p.Sub(r.Size.Div(2).Vector()),
		Size:   r.Size,
	}
}

// Inset returns r shrunk inwards by n on all four sides. If either
// dimension of r is less than 2*n, that dimension collapses to zero
// at its center instead.
func (r Rect[T]) Inset(n T) Rect[T] {
	return r.Inset2(Sz(n, n))
}

// Inset2 is like Inset but with independent amounts per axis.
func (r Rect[T]) Inset2(n Size[T]) Rect[T] {
	if r.Size.Width < 2*n.Width {
		r.Origin.X += r.Size.Width / 2
		r.Size.Width = 0
	} else {
		r.Origin.X += n.Width
		r.Size.Width -= 2 * n.Width
	}
	if r.Size.Height < 2*n.Height {
		r.Origin.Y += r.Size.Height / 2
		r.Size.Height = 0
	} else {
		r.Origin.Y += n.Height
		r.Size.Height -= 2 * n.Height
	}
	return r
}

// Empty reports whether r covers no area.
func (r Rect[T]) Empty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Intersect returns the largest rectangle covered by both r and s. If
// they do not overlap, the zero Rect is returned.
func (r Rect[T]) Intersect(s Rect[T]) Rect[T] {
	o := Max(r.Origin, s.Origin)
	ep := Min(r.Endpoint(), s.Endpoint())
	if ep.X < o.X || ep.Y < o.Y {
		return Rect[T]{}
	}
	t := Rect[T]{Origin: o, Size: o.To(ep).Size()}
	if t.Empty() {
		return Rect[T]{}
	}
	return t
}

// Union returns the smallest rectangle covering both r and s.
func (r Rect[T]) Union(s Rect[T]) Rect[T] {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	o := Min(r.Origin, s.Origin)
	ep := Max(r.Endpoint(), s.Endpoint())
	return Rect[T]{Origin: o, Size: o.To(ep).Size()}
}

// Bounds returns r.
func (r Rect[T]) Bounds() Rect[T] {
	return r
}

func (r Rect[T]) IsZero() bool {
	return r.Origin.IsZero() && r.Size.IsZero()
}

func (r Rect[T]) ImageRect() image.Rectangle {
	return image.Rectangle{
		Min: r.Origin.ImagePoint(),
		Max: r.Endpoint().ImagePoint(),
	}
}
