package geom_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestPoint(t *testing.T) {
	p := geom.Pt(3, 4)
	require.Equal(t, geom.Vec(2, 3), p.Sub(geom.Pt(1, 1)))
	require.Equal(t, geom.Vec(-2, -3), geom.VectorBetween(p, geom.Pt(1, 1)))
	require.Equal(t, geom.Pt(4, 6), p.Add(geom.Vec(1, 2)))
	require.Equal(t, geom.Pt(2, 2), p.SubVector(geom.Vec(1, 2)))
	require.Equal(t, geom.Pt(-3, -4), p.Neg())
	require.Equal(t, geom.Pt(6, 8), p.Scale(2))
	require.Equal(t, geom.Vec(3, 4), p.Vector())
	require.Equal(t, 5.0, p.Magnitude())
	require.Equal(t, 5.0, geom.Pt(0, 0).DistanceTo(p))
	require.Equal(t, "Point(3, 4)", p.String())

	require.Equal(t, geom.Pt(1, 2), geom.MinPoint(geom.Pt(1, 5), geom.Pt(4, 2)))
	require.Equal(t, geom.Pt(4, 5), geom.MaxPoint(geom.Pt(1, 5), geom.Pt(4, 2)))
	require.Equal(t, geom.Pt(2, 3), geom.Pt(0, 0).Lerp(geom.Pt(4, 6), 0.5))

	require.True(t, geom.InfinitePoint().X > math.MaxFloat64)
}

func TestPolar(t *testing.T) {
	p := geom.Polar(geom.Pt(1, 1), math.Pi/2, 2)
	require.True(t, p.ApproxEqual(geom.Pt(1, 3), tol), "%v", p)
	require.InDelta(t, math.Pi/2, geom.Pt(0, 2).Angle(), tol)

	r := geom.Pt(2, 1).RotatedAround(math.Pi/2, geom.Pt(1, 1))
	require.True(t, r.ApproxEqual(geom.Pt(1, 2), tol), "%v", r)
}

func TestPointNormalized(t *testing.T) {
	size := geom.Sz(10, 20)
	require.Equal(t, geom.Pt(-1, -1), geom.Pt(0, 0).ToNormalized(size))
	require.Equal(t, geom.Pt(0, 0), geom.Pt(5, 10).ToNormalized(size))
	require.Equal(t, geom.Pt(1, 1), geom.Pt(10, 20).ToNormalized(size))

	p := geom.Pt(2.5, 7)
	require.True(t, p.ToNormalized(size).FromNormalized(size).ApproxEqual(p, tol))

	require.Equal(t, geom.Pt(50, 25), geom.Pt(5, 5).TransformCoordinates(geom.Sz(10, 10), geom.Sz(100, 50)))
}

func TestVector(t *testing.T) {
	v := geom.Vec(3, 4)
	require.Equal(t, 5.0, v.Magnitude())
	require.Equal(t, 11.0, geom.Dot(v, geom.Vec(1, 2)))
	require.Equal(t, 2.0, geom.Cross(v, geom.Vec(1, 2)))
	require.Equal(t, geom.Vec(4, 6), v.Add(geom.Vec(1, 2)))
	require.Equal(t, geom.Vec(2, 2), v.Sub(geom.Vec(1, 2)))
	require.Equal(t, geom.Vec(3, 8), v.Mul(geom.Vec(1, 2)))
	require.Equal(t, geom.Vec(1.5, 2), v.Div(2))
	require.Equal(t, geom.Vec(4, 3), v.Swapped())
	require.Equal(t, geom.Pt(3, 4), v.Point())
	require.Equal(t, "Vector(3, 4)", v.String())

	n := v.Normalized()
	require.InDelta(t, 0.6, n.DX, tol)
	require.InDelta(t, 0.8, n.DY, tol)
	require.True(t, math.IsNaN(geom.Vec(0, 0).Normalized().DX))

	r := geom.Vec(1, 0).Rotated(math.Pi / 2)
	require.InDelta(t, 0, r.DX, tol)
	require.InDelta(t, 1, r.DY, tol)

	a := geom.VectorFromAngle(math.Pi, 2)
	require.InDelta(t, -2, a.DX, tol)
	require.InDelta(t, 0, a.DY, tol)
}

func TestSize(t *testing.T) {
	s := geom.Sz(4, 2)
	require.Equal(t, 2.0, s.Aspect())
	require.Equal(t, 4.0, s.Max())
	require.Equal(t, 2.0, s.Min())
	require.False(t, s.IsEmpty())
	require.True(t, geom.Sz(0, 3).IsEmpty())
	require.Equal(t, "Size(4, 2)", s.String())

	require.Equal(t, 2.5, s.ScaleForAspectFit(geom.Sz(10, 10)))
	require.Equal(t, geom.Sz(10, 5), s.AspectFit(geom.Sz(10, 10)))
	require.Equal(t, geom.Sz(20, 10), s.AspectFill(geom.Sz(10, 10)))

	require.Equal(t, 2.0, s.ScaleForAspectFit(geom.Sz(geom.NoConstraint, 4)))
	require.Equal(t, geom.Sz(8, 4), s.AspectFit(geom.Sz(8, geom.NoConstraint)))
	require.Equal(t, geom.Sz(8, 4), s.AspectFill(geom.Sz(8, geom.NoConstraint)))
}

func TestAspectRatio(t *testing.T) {
	require.Equal(t, 16.0/9, geom.AspectRatio16to9.Aspect())
	require.Equal(t, 1.0, geom.AspectSquare.Aspect())

	s, ok := geom.AspectRatio4to3.Size()
	require.True(t, ok)
	require.Equal(t, geom.Sz(4, 3), s)

	_, ok = geom.AspectRatio("ratio1to1000").Size()
	require.False(t, ok)
	require.Equal(t, 0.0, geom.AspectRatio("ratio1to1000").Aspect())
}

func TestInsets(t *testing.T) {
	in := geom.Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}
	require.Equal(t, 6.0, in.Horizontal())
	require.Equal(t, 4.0, in.Vertical())
	require.Equal(t, geom.Insets{Top: 2, Left: 3, Bottom: 4, Right: 5}, in.Add(geom.UniformInsets(1)))
	require.Equal(t, geom.Insets{Top: 2, Left: 1, Bottom: 2, Right: 1}, geom.SymmetricInsets(1, 2))
}

func TestEdges(t *testing.T) {
	require.Equal(t, "minX", geom.EdgeMinX.String())
	require.Equal(t, "maxY", geom.EdgeMaxY.String())
	require.Equal(t, "none", geom.EdgeNone.String())
	require.Equal(t, "Edges(0x5)", (geom.EdgeMinX | geom.EdgeMaxX).String())
}
