package geom

// A Size is the extent of a rectangular region. Components may be
// zero or negative; see Rect.Canon.
type Size[T Scalar] struct {
	Width, Height T
}

// Sz is shorthand for Size[T]{w, h}.
func Sz[T Scalar](w, h T) Size[T] {
	return Size[T]{w, h}
}

// SConv converts a Size[In] to a Size[Out] with possible loss of
// precision.
func SConv[Out Scalar, In Scalar](s Size[In]) Size[Out] {
	return Sz(Out(s.Width), Out(s.Height))
}

func (s Size[T]) Add(t Size[T]) Size[T] {
	return Size[T]{s.Width + t.Width, s.Height + t.Height}
}

func (s Size[T]) Sub(t Size[T]) Size[T] {
	return Size[T]{s.Width - t.Width, s.Height - t.Height}
}

func (s Size[T]) Mul(k T) Size[T] {
	return Size[T]{s.Width * k, s.Height * k}
}

func (s Size[T]) Div(k T) Size[T] {
	return Size[T]{s.Width / k, s.Height / k}
}

// Map returns the size produced by applying f to each component of s
// in turn.
func (s Size[T]) Map(f func(T) T) Size[T] {
	return Size[T]{f(s.Width), f(s.Height)}
}

// Area returns s's width multiplied by its height.
func (s Size[T]) Area() T {
	return s.Width * s.Height
}

func (s Size[T]) IsZero() bool {
	return (s.Width == 0) && (s.Height == 0)
}

// Vector returns s reinterpreted as a displacement.
func (s Size[T]) Vector() Vector[T] {
	return Vector[T]{s.Width, s.Height}
}
