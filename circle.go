package geom

// A Circle is described by its center and radius. The radius is
// conventionally non-negative, but construction does not enforce
// this: predicates compare against the squared radius, so a negative
// radius behaves like its absolute value.
type Circle[T Scalar] struct {
	Center Point[T]
	Radius T
}

// Circ is shorthand for Circle[T]{Pt(x, y), r}.
func Circ[T Scalar](x, y, r T) Circle[T] {
	return Circle[T]{Point[T]{x, y}, r}
}

// CConv converts a Circle[In] to a Circle[Out] with possible loss of
// precision.
func CConv[Out Scalar, In Scalar](c Circle[In]) Circle[Out] {
	return Circle[Out]{
		Center: PConv[Out](c.Center),
		Radius: Out(c.Radius),
	}
}

// Translate returns c shifted by d.
func (c Circle[T]) Translate(d Vector[T]) Circle[T] {
	return Circle[T]{Center: c.Center.Add(d), Radius: c.Radius}
}

// Scale returns c with its radius multiplied by k. The center is
// unchanged.
func (c Circle[T]) Scale(k T) Circle[T] {
	return Circle[T]{Center: c.Center, Radius: c.Radius * k}
}

// Bounds returns the smallest Rect enclosing c.
func (c Circle[T]) Bounds() Rect[T] {
	return Rect[T]{
		Origin: c.Center.Sub(Vec(c.Radius, c.Radius)),
		Size:   Sz(c.Radius+c.Radius, c.Radius+c.Radius),
	}
}
