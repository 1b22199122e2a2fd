package geom_test

import (
	"testing"

	"deedles.dev/geom"
	"github.com/stretchr/testify/require"
)

func TestCircleCrossesPoint(t *testing.T) {
	a := geom.Circ(10, 10, 5)
	require.True(t, geom.Crosses(a, geom.Pt(5, 10)))
	require.True(t, geom.Crosses(a, geom.Pt(15, 10)))
	require.True(t, geom.Crosses(a, geom.Pt(10, 5)))
	require.True(t, geom.Crosses(a, geom.Pt(10, 15)))
	require.True(t, geom.Crosses(a, geom.Pt(10, 10)))
	require.False(t, geom.Crosses(a, geom.Pt(1, 1)))
	require.False(t, geom.Crosses(a, geom.Pt(10, 16)))
	require.False(t, geom.Crosses(a, geom.Pt(16, 10)))
	require.True(t, geom.Crosses(geom.Pt(5, 10), a))
}

func TestCircleCrossesCircle(t *testing.T) {
	a := geom.Circ(10, 10, 5)
	require.True(t, geom.Crosses(a, geom.Circ(20, 10, 5)))
	require.False(t, geom.Crosses(a, geom.Circ(20, 10, 4)))
	require.True(t, geom.Crosses(geom.Circ(20, 10, 5), a))
}

func TestRectCrossesPoint(t *testing.T) {
	a := geom.Rt(10, 10, 10, 10)
	require.True(t, geom.Crosses(a, geom.Pt(10, 10)))
	require.True(t, geom.Crosses(a, geom.Pt(20, 10)))
	require.True(t, geom.Crosses(a, geom.Pt(10, 20)))
	require.True(t, geom.Crosses(a, geom.Pt(20, 20)))
	require.True(t, geom.Crosses(a, geom.Pt(15, 15)))
	require.False(t, geom.Crosses(a, geom.Pt(9, 10)))
	require.False(t, geom.Crosses(a, geom.Pt(21, 10)))
	require.True(t, geom.Crosses(geom.Pt(15, 15), a))
}

func TestRectCrossesRect(t *testing.T) {
	a := geom.Rt(10, 10, 10, 10)
	require.True(t, geom.Crosses(a, geom.Rt(15, 15, 10, 10)))
	require.True(t, geom.Crosses(a, geom.Rt(0, 0, 10, 10)))
	require.True(t, geom.Crosses(a, geom.Rt(0, 20, 10, 10)))
	require.True(t, geom.Crosses(a, geom.Rt(20, 0, 10, 10)))
	require.True(t, geom.Crosses(a, geom.Rt(20, 20, 10, 10)))
	require.False(t, geom.Crosses(a, geom.Rt(20, 30, 10, 10)))
}

func TestRectCrossesCircle(t *testing.T) {
	a := geom.Rt(10, 10, 10, 10)
	require.True(t, geom.Crosses(a, geom.Circ(5, 10, 5)))
	require.True(t, geom.Crosses(a, geom.Circ(5, 20, 5)))
	require.True(t, geom.Crosses(a, geom.Circ(25, 10, 5)))
	require.True(t, geom.Crosses(a, geom.Circ(25, 20, 5)))
	require.True(t, geom.Crosses(a, geom.Circ(10, 5, 5)))
	require.True(t, geom.Crosses(a, geom.Circ(20, 5, 5)))
	require.True(t, geom.Crosses(a, geom.Circ(10, 25, 5)))
	require.True(t, geom.Crosses(a, geom.Circ(20, 25, 5)))
	require.False(t, geom.Crosses(a, geom.Circ(20, 25, 4)))
	require.True(t, geom.Crosses(geom.Circ(20, 25, 5), a))
}

func TestRectCrossesCircleCornerTangency(t *testing.T) {
	// Center at (24, 23) sits diagonally past the (20, 20) corner at
	// squared distance 25. Exact tangency counts as crossing.
	a := geom.Rt(10, 10, 10, 10)
	require.True(t, geom.Crosses(a, geom.Circ(24, 23, 5)))
	require.True(t, geom.Crosses(geom.Circ(24, 23, 5), a))
	require.False(t, geom.Crosses(a, geom.Circ(24, 23, 4)))
	require.False(t, geom.Crosses(a, geom.Circ(4, 23, 4)))
	require.False(t, geom.Crosses(a, geom.Circ(24, 7, 4)))
	require.False(t, geom.Crosses(a, geom.Circ(4, 7, 4)))
}

func TestPointCrossesPoint(t *testing.T) {
	require.True(t, geom.Crosses(geom.Pt(3, 4), geom.Pt(3, 4)))
	require.False(t, geom.Crosses(geom.Pt(3, 4), geom.Pt(4, 3)))
}

func TestCrossesSymmetry(t *testing.T) {
	points := []geom.Point[int]{
		geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(15, 10),
		geom.Pt(20, 20), geom.Pt(16, 10), geom.Pt(-3, 7),
	}
	circles := []geom.Circle[int]{
		geom.Circ(10, 10, 5), geom.Circ(20, 10, 4),
		geom.Circ(20, 25, 5), geom.Circ(0, 0, 1),
	}
	rects := []geom.Rect[int]{
		geom.Rt(10, 10, 10, 10), geom.Rt(0, 0, 5, 5),
		geom.Rt(20, 30, 10, 10), geom.Rt(15, 15, 1, 1),
	}

	for _, p := range points {
		for _, c := range circles {
			require.Equal(t, geom.Crosses(c, p), geom.Crosses(p, c))
		}
		for _, r := range rects {
			require.Equal(t, geom.Crosses(r, p), geom.Crosses(p, r))
		}
	}
	for _, c := range circles {
		for _, r := range rects {
			require.Equal(t, geom.Crosses(r, c), geom.Crosses(c, r))
		}
	}
}

func TestCrossesReflexive(t *testing.T) {
	for _, c := range []geom.Circle[int]{geom.Circ(10, 10, 5), geom.Circ(-3, 7, 0)} {
		require.True(t, geom.Crosses(c, c))
	}
	for _, r := range []geom.Rect[int]{geom.Rt(10, 10, 10, 10), geom.Rt(-3, 7, 0, 0)} {
		require.True(t, geom.Crosses(r, r))
	}
}

func TestCircleContainsPoint(t *testing.T) {
	a := geom.Circ(10, 10, 5)
	require.True(t, geom.Contains(a, geom.Pt(5, 10)))
	require.True(t, geom.Contains(a, geom.Pt(15, 10)))
	require.True(t, geom.Contains(a, geom.Pt(10, 5)))
	require.True(t, geom.Contains(a, geom.Pt(10, 15)))
	require.True(t, geom.Contains(a, geom.Pt(10, 10)))
	require.False(t, geom.Contains(a, geom.Pt(1, 1)))
	require.False(t, geom.Contains(a, geom.Pt(10, 16)))
}

func TestPointContainsNothing(t *testing.T) {
	a := geom.Pt(10, 10)
	require.False(t, geom.Contains(a, geom.Pt(10, 10)))
	require.False(t, geom.Contains(a, geom.Circ(10, 10, 5)))
	require.False(t, geom.Contains(a, geom.Circ(10, 10, 0)))
	require.False(t, geom.Contains(a, geom.Rt(10, 10, 11, 11)))
	require.False(t, geom.Contains(a, geom.Rt(10, 10, 0, 0)))
}

func TestCircleContainsCircle(t *testing.T) {
	a := geom.Circ(10, 10, 5)
	require.True(t, geom.Contains(a, a))
	require.True(t, geom.Contains(a, geom.Circ(12, 10, 3)))
	require.True(t, geom.Contains(a, geom.Circ(10, 10, 5)))
	require.False(t, geom.Contains(a, geom.Circ(12, 10, 4)))
	require.False(t, geom.Contains(a, geom.Circ(20, 10, 1)))

	// A larger circle is never contained, concentric or not.
	require.False(t, geom.Contains(geom.Circ(10, 10, 3), geom.Circ(10, 10, 5)))
	require.False(t, geom.Contains(geom.Circ(10, 10, 3), geom.Circ(11, 10, 5)))
}

func TestRectContainsPoint(t *testing.T) {
	a := geom.Rt(10, 10, 10, 10)
	require.True(t, geom.Contains(a, geom.Pt(10, 10)))
	require.True(t, geom.Contains(a, geom.Pt(20, 10)))
	require.True(t, geom.Contains(a, geom.Pt(10, 20)))
	require.True(t, geom.Contains(a, geom.Pt(20, 20)))
	require.True(t, geom.Contains(a, geom.Pt(15, 15)))
	require.False(t, geom.Contains(a, geom.Pt(9, 10)))
}

func TestRectContainsRect(t *testing.T) {
	a := geom.Rt(10, 10, 10, 10)
	require.True(t, geom.Contains(a, geom.Rt(10, 10, 10, 10)))
	require.True(t, geom.Contains(a, geom.Rt(10, 10, 1, 1)))
	require.True(t, geom.Contains(a, geom.Rt(19, 10, 1, 1)))
	require.True(t, geom.Contains(a, geom.Rt(10, 19, 1, 1)))
	require.True(t, geom.Contains(a, geom.Rt(19, 19, 1, 1)))
	require.True(t, geom.Contains(a, geom.Rt(15, 15, 1, 1)))
	require.False(t, geom.Contains(a, geom.Rt(9, 9, 1, 1)))
	require.False(t, geom.Contains(a, geom.Rt(20, 20, 1, 1)))
}

func TestRectContainsCircle(t *testing.T) {
	a := geom.Rt(10, 10, 10, 10)
	require.True(t, geom.Contains(a, geom.Circ(15, 15, 5)))
	require.True(t, geom.Contains(a, geom.Circ(11, 11, 1)))
	require.True(t, geom.Contains(a, geom.Circ(19, 11, 1)))
	require.True(t, geom.Contains(a, geom.Circ(11, 19, 1)))
	require.True(t, geom.Contains(a, geom.Circ(19, 19, 1)))
	require.True(t, geom.Contains(a, geom.Circ(15, 15, 1)))
	require.False(t, geom.Contains(a, geom.Circ(8, 8, 3)))
	require.False(t, geom.Contains(a, geom.Circ(15, 15, 6)))
}

func TestCircleContainsRect(t *testing.T) {
	a := geom.Circ(10, 10, 5)
	require.True(t, geom.Contains(a, geom.Rt(8, 8, 3, 3)))
	require.False(t, geom.Contains(a, geom.Rt(5, 5, 3, 3)))
	require.False(t, geom.Contains(a, geom.Rt(8, 8, 7, 7)))
}

func TestCircleContainsRectOffDiagonalCorners(t *testing.T) {
	// The rect's origin (6, 10) and endpoint (10, 14) both lie inside
	// the circle, but the (6, 14) corner does not.
	a := geom.Circ(10, 10, 5)
	require.False(t, geom.Contains(a, geom.Rt(6, 10, 4, 4)))
	require.True(t, geom.Contains(a, geom.Rt(7, 10, 3, 3)))
}

func TestContainsImpliesCrosses(t *testing.T) {
	outers := []geom.Rect[int]{
		geom.Rt(10, 10, 10, 10), geom.Rt(0, 0, 30, 30), geom.Rt(12, 12, 2, 2),
	}
	circles := []geom.Circle[int]{
		geom.Circ(15, 15, 5), geom.Circ(15, 15, 2), geom.Circ(8, 8, 3),
	}
	rects := []geom.Rect[int]{
		geom.Rt(19, 19, 1, 1), geom.Rt(10, 10, 10, 10), geom.Rt(5, 5, 3, 3),
	}
	points := []geom.Point[int]{
		geom.Pt(10, 10), geom.Pt(15, 15), geom.Pt(40, 40),
	}

	for _, o := range outers {
		for _, c := range circles {
			if geom.Contains(o, c) {
				require.True(t, geom.Crosses(o, c))
			}
		}
		for _, r := range rects {
			if geom.Contains(o, r) {
				require.True(t, geom.Crosses(o, r))
			}
		}
		for _, p := range points {
			if geom.Contains(o, p) {
				require.True(t, geom.Crosses(o, p))
			}
		}
	}

	co := geom.Circ(15, 15, 10)
	for _, c := range circles {
		if geom.Contains(co, c) {
			require.True(t, geom.Crosses(co, c))
		}
	}
	for _, r := range rects {
		if geom.Contains(co, r) {
			require.True(t, geom.Crosses(co, r))
		}
	}
}

func TestShapeBounds(t *testing.T) {
	require.Equal(t, geom.Rt(3, 4, 0, 0), geom.Pt(3, 4).Bounds())
	require.Equal(t, geom.Rt(5, 5, 10, 10), geom.Circ(10, 10, 5).Bounds())
	require.Equal(t, geom.Rt(1, 2, 3, 4), geom.Rt(1, 2, 3, 4).Bounds())
}

func TestShapeDispatch(t *testing.T) {
	// The predicates accept the shape kinds both as concrete values,
	// with the scalar type inferred, and as Shape values.
	outer := geom.Rt(10, 10, 10, 10)
	shapes := []geom.Shape[int]{
		geom.Pt(15, 15),
		geom.Circ(15, 15, 2),
		geom.Rt(12, 12, 2, 2),
	}
	for _, s := range shapes {
		require.True(t, geom.Crosses(outer, s))
		require.True(t, geom.Crosses(s, outer))
		require.True(t, geom.Contains(outer, s))
	}
}

func TestCollisionFloatScalars(t *testing.T) {
	a := geom.Circ(10.0, 10.0, 5.0)
	require.True(t, geom.Crosses(a, geom.Pt(15.0, 10.0)))
	require.False(t, geom.Crosses(a, geom.Pt(15.1, 10.0)))

	r := geom.Rt(10.0, 10.0, 10.0, 10.0)
	require.True(t, geom.Crosses(r, geom.Circ(5.0, 10.0, 5.0)))
	require.True(t, geom.Contains(r, geom.Circ(15.0, 15.0, 5.0)))
}
