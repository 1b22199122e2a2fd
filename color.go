package geom

import (
	"image/color"

	"golang.org/x/exp/constraints"
)

// An Rgba is a color with red, green, blue, and alpha channels. The
// channel range is up to the caller: 0-255 is typical for integer
// scalars and 0-1 for floats, matching what Hex and Hexf produce.
type Rgba[T Scalar] struct {
	R, G, B, A T
}

// RGBA is shorthand for Rgba[T]{r, g, b, a}.
func RGBA[T Scalar](r, g, b, a T) Rgba[T] {
	return Rgba[T]{r, g, b, a}
}

// Hex unpacks a 0xRRGGBB value into per-channel values in 0-255,
// combined with the given alpha.
func Hex[T constraints.Integer](rgb uint32, alpha T) Rgba[T] {
	return Rgba[T]{
		R: T((rgb >> 16) & 0xFF),
		G: T((rgb >> 8) & 0xFF),
		B: T(rgb & 0xFF),
		A: alpha,
	}
}

// Hexf unpacks a 0xRRGGBB value into per-channel values in 0-1,
// combined with the given alpha.
func Hexf[T constraints.Float](rgb uint32, alpha T) Rgba[T] {
	return Rgba[T]{
		R: T((rgb>>16)&0xFF) / 0xFF,
		G: T((rgb>>8)&0xFF) / 0xFF,
		B: T(rgb&0xFF) / 0xFF,
		A: alpha,
	}
}

// RGBAConv converts an Rgba[In] to an Rgba[Out] with possible loss of
// precision. It does not rescale channels between integer and float
// ranges.
func RGBAConv[Out Scalar, In Scalar](c Rgba[In]) Rgba[Out] {
	return Rgba[Out]{Out(c.R), Out(c.G), Out(c.B), Out(c.A)}
}

func (c Rgba[T]) Add(d Rgba[T]) Rgba[T] {
	return Rgba[T]{c.R + d.R, c.G + d.G, c.B + d.B, c.A + d.A}
}

func (c Rgba[T]) Sub(d Rgba[T]) Rgba[T] {
	return Rgba[T]{c.R - d.R, c.G - d.G, c.B - d.B, c.A - d.A}
}

func (c Rgba[T]) Mul(k T) Rgba[T] {
	return Rgba[T]{c.R * k, c.G * k, c.B * k, c.A * k}
}

func (c Rgba[T]) Div(k T) Rgba[T] {
	return Rgba[T]{c.R / k, c.G / k, c.B / k, c.A / k}
}

// Map returns the color produced by applying f to each channel of c
// in turn.
func (c Rgba[T]) Map(f func(T) T) Rgba[T] {
	return Rgba[T]{f(c.R), f(c.G), f(c.B), f(c.A)}
}

// NRGBA converts a 0-255 channel color to its non-alpha-premultiplied
// image/color equivalent.
func NRGBA(c Rgba[uint8]) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromNRGBA converts a non-alpha-premultiplied image/color value to
// an Rgba with 0-255 channels.
func FromNRGBA(c color.NRGBA) Rgba[uint8] {
	return Rgba[uint8]{c.R, c.G, c.B, c.A}
}
