package geom

// A Shape is one of the shape kinds that the collision predicates
// Crosses and Contains operate on: Point, Circle, or Rect. Passing
// any other implementation to a predicate panics.
type Shape[T Scalar] interface {
	// Bounds returns the smallest Rect enclosing the shape.
	Bounds() Rect[T]
}

// Crosses reports whether a and b share at least one boundary or
// interior point. Touching counts as crossing: a point exactly on a
// circle's circumference or a rect's edge crosses it, and so do two
// shapes tangent to each other. The result is the same regardless of
// argument order. Two points cross iff they are equal.
func Crosses[T Scalar](a, b Shape[T]) bool {
	switch a := a.(type) {
	case Point[T]:
		switch b := b.(type) {
		case Point[T]:
			return a == b
		case Circle[T]:
			return b.CrossesPoint(a)
		case Rect[T]:
			return a.In(b)
		}
	case Circle[T]:
		switch b := b.(type) {
		case Point[T]:
			return a.CrossesPoint(b)
		case Circle[T]:
			return a.CrossesCircle(b)
		case Rect[T]:
			return a.CrossesRect(b)
		}
	case Rect[T]:
		switch b := b.(type) {
		case Point[T]:
			return a.CrossesPoint(b)
		case Circle[T]:
			return a.CrossesCircle(b)
		case Rect[T]:
			return a.CrossesRect(b)
		}
	}
	panic("geom: not a shape kind")
}

// Contains reports whether every point of inner lies within or on the
// boundary of outer. Unlike Crosses, argument order matters. A Point
// outer contains nothing, not even an equal point.
func Contains[T Scalar](outer, inner Shape[T]) bool {
	switch outer := outer.(type) {
	case Point[T]:
		switch inner.(type) {
		case Point[T], Circle[T], Rect[T]:
			return false
		}
	case Circle[T]:
		switch inner := inner.(type) {
		case Point[T]:
			return outer.ContainsPoint(inner)
		case Circle[T]:
			return outer.ContainsCircle(inner)
		case Rect[T]:
			return outer.ContainsRect(inner)
		}
	case Rect[T]:
		switch inner := inner.(type) {
		case Point[T]:
			return outer.ContainsPoint(inner)
		case Circle[T]:
			return outer.ContainsCircle(inner)
		case Rect[T]:
			return outer.ContainsRect(inner)
		}
	}
	panic("geom: not a shape kind")
}

// CrossesPoint reports whether p lies within or on c.
func (c Circle[T]) CrossesPoint(p Point[T]) bool {
	return p.To(c.Center).Len2() <= c.Radius*c.Radius
}

// CrossesCircle reports whether c and o overlap or touch.
func (c Circle[T]) CrossesCircle(o Circle[T]) bool {
	r := c.Radius + o.Radius
	return c.Center.To(o.Center).Len2() <= r*r
}

// CrossesRect reports whether c and r overlap or touch.
func (c Circle[T]) CrossesRect(r Rect[T]) bool {
	return r.CrossesCircle(c)
}

// ContainsPoint reports whether p lies within or on c. For a point
// this coincides with CrossesPoint.
func (c Circle[T]) ContainsPoint(p Point[T]) bool {
	return c.CrossesPoint(p)
}

// ContainsCircle reports whether o lies entirely within or on c.
func (c Circle[T]) ContainsCircle(o Circle[T]) bool {
	if o.Radius > c.Radius {
		return false
	}
	r := c.Radius - o.Radius
	return c.Center.To(o.Center).Len2() <= r*r
}

// ContainsRect reports whether r lies entirely within or on c. A
// circle is convex, so it contains r exactly when it contains all
// four of r's corners.
func (c Circle[T]) ContainsRect(r Rect[T]) bool {
	ep := r.Endpoint()
	return c.CrossesPoint(r.Origin) &&
		c.CrossesPoint(ep) &&
		c.CrossesPoint(Pt(r.Origin.X, ep.Y)) &&
		c.CrossesPoint(Pt(ep.X, r.Origin.Y))
}

// CrossesPoint reports whether p lies within or on r.
func (r Rect[T]) CrossesPoint(p Point[T]) bool {
	return p.In(r)
}

// CrossesRect reports whether r and s overlap or touch. This is the
// separating-axis test on both axes, with shared edges counting as
// crossing.
func (r Rect[T]) CrossesRect(s Rect[T]) bool {
	rep, sep := r.Endpoint(), s.Endpoint()
	return r.Origin.X <= sep.X && r.Origin.Y <= sep.Y &&
		rep.X >= s.Origin.X && rep.Y >= s.Origin.Y
}

// CrossesCircle reports whether r and c overlap or touch. Tangency
// anywhere on r's boundary, corners included, counts as crossing.
//
// The center is first tested against r inflated by the radius on all
// sides, which settles every case except the four diagonal corner
// regions, where the nearest feature of r is a corner point rather
// than an edge. A corner test only applies when the center is
// strictly beyond both of that corner's boundaries.
func (r Rect[T]) CrossesCircle(c Circle[T]) bool {
	rad := Vec(c.Radius, c.Radius)
	ct := c.Center
	min := r.Origin.Sub(rad)
	max := r.Endpoint().Add(rad)
	if ct.X < min.X || ct.Y < min.Y || ct.X > max.X || ct.Y > max.Y {
		return false
	}

	org, ep := r.Origin, r.Endpoint()
	rr := c.Radius * c.Radius
	near := func(corner Point[T]) bool {
		return ct.To(corner).Len2() <= rr
	}
	if org.X > ct.X && org.Y > ct.Y && !near(org) {
		return false
	}
	if ep.X < ct.X && org.Y > ct.Y && !near(Pt(ep.X, org.Y)) {
		return false
	}
	if org.X > ct.X && ep.Y < ct.Y && !near(Pt(org.X, ep.Y)) {
		return false
	}
	if ep.X < ct.X && ep.Y < ct.Y && !near(ep) {
		return false
	}
	return true
}

// ContainsPoint reports whether p lies within or on r. For a point
// this coincides with CrossesPoint.
func (r Rect[T]) ContainsPoint(p Point[T]) bool {
	return p.In(r)
}

// ContainsRect reports whether s lies entirely within or on r.
func (r Rect[T]) ContainsRect(s Rect[T]) bool {
	rep, sep := r.Endpoint(), s.Endpoint()
	return r.Origin.X <= s.Origin.X && r.Origin.Y <= s.Origin.Y &&
		rep.X >= sep.X && rep.Y >= sep.Y
}

// ContainsCircle reports whether c lies entirely within or on r. For
// an axis-aligned rectangle this reduces exactly to containment of
// c's bounding box.
func (r Rect[T]) ContainsCircle(c Circle[T]) bool {
	return r.ContainsRect(c.Bounds())
}
