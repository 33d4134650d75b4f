package geom_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

func toDense(t geom.Transform) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		t.M11, t.M12, 0,
		t.M21, t.M22, 0,
		t.TX, t.TY, 1,
	})
}

func fromDense(m mat.Matrix) geom.Transform {
	return geom.Transform{
		M11: m.At(0, 0), M12: m.At(0, 1),
		M21: m.At(1, 0), M22: m.At(1, 1),
		TX: m.At(2, 0), TY: m.At(2, 1),
	}
}

var transforms = []geom.Transform{
	geom.Identity(),
	geom.Translation(3, -4),
	geom.Scale(2, 0.5),
	geom.Rotation(math.Pi / 3),
	{M11: 2, M12: 1, M21: 1, M22: 3, TX: 4, TY: 5},
	geom.Rotation(-1).ScaledBy(3, 2).TranslatedBy(7, 1),
}

func TestTransformIdentity(t *testing.T) {
	for _, tr := range transforms {
		require.Equal(t, tr, geom.Identity().Concat(tr))
		require.Equal(t, tr, tr.Concat(geom.Identity()))
	}

	require.True(t, geom.Identity().IsIdentity())
	require.False(t, geom.Transform{}.IsIdentity())
	require.Equal(t, "{m11:1, m12:0, m21:0, m22:1, tX:0, tY:0}", geom.Identity().String())
}

func TestTransformConcat(t *testing.T) {
	for _, a := range transforms {
		for _, b := range transforms {
			var product mat.Dense
			product.Mul(toDense(a), toDense(b))
			require.True(t, a.Concat(b).ApproxEqual(fromDense(&product), tol), "%v * %v", a, b)

			for _, c := range transforms {
				left := a.Concat(b).Concat(c)
				right := a.Concat(b.Concat(c))
				require.True(t, left.ApproxEqual(right, 1e-9), "(%v * %v) * %v", a, b, c)
			}
		}
	}
}

func TestTransformInverse(t *testing.T) {
	p := geom.Pt(-3, 11)
	for _, tr := range transforms {
		inv, err := tr.Inverted()
		require.Nil(t, err)
		require.True(t, tr.Concat(inv).ApproxEqual(geom.Identity(), tol), "%v", tr)
		require.True(t, inv.Concat(tr).ApproxEqual(geom.Identity(), tol), "%v", tr)
		require.True(t, inv.ApplyPoint(tr.ApplyPoint(p)).ApproxEqual(p, 1e-9))

		var dense mat.Dense
		require.Nil(t, dense.Inverse(toDense(tr)))
		require.True(t, inv.ApproxEqual(fromDense(&dense), 1e-9), "%v", tr)
	}
}

func TestTransformNotInvertible(t *testing.T) {
	tr := geom.Transform{M11: 1, M12: 0, M21: 2, M22: 0}
	require.False(t, tr.IsInvertible())

	_, err := tr.Inverted()
	require.ErrorIs(t, err, geom.ErrNotInvertible)

	orig := tr
	require.ErrorIs(t, tr.Invert(), geom.ErrNotInvertible)
	require.Equal(t, orig, tr)

	_, err = geom.Scale(0, 1).Inverted()
	require.ErrorIs(t, err, geom.ErrNotInvertible)
}

func TestTransformInvert(t *testing.T) {
	tr := geom.Translation(2, 3)
	require.Nil(t, tr.Invert())
	require.Equal(t, geom.Translation(-2, -3), tr)
}

func TestTransformOrder(t *testing.T) {
	// The rotation happens first, so the origin stays put until the
	// translation moves it.
	tr := geom.Translation(5, 0).RotatedBy(math.Pi / 2)
	require.True(t, tr.ApplyPoint(geom.Pt(0, 0)).ApproxEqual(geom.Pt(5, 0), tol))
	require.True(t, tr.ApplyPoint(geom.Pt(1, 0)).ApproxEqual(geom.Pt(5, 1), tol))

	rot := geom.Rotation(math.Pi / 2)
	require.True(t, rot.ApplyPoint(geom.Pt(1, 0)).ApproxEqual(geom.Pt(0, 1), tol))
}

func TestTransformLocalOperations(t *testing.T) {
	for _, tr := range transforms {
		require.True(t, tr.TranslatedBy(2, -1).ApproxEqual(geom.Translation(2, -1).Concat(tr), tol))
		require.Equal(t, tr.TranslatedBy(2, -1), tr.Translated(geom.Vec(2, -1)))
		require.Equal(t, geom.Scale(3, 4).Concat(tr), tr.ScaledBy(3, 4))
		require.Equal(t, tr.ScaledBy(3, 4), tr.Scaled(geom.Vec(3, 4)))
	}

	local := geom.Rotation(math.Pi / 2).TranslatedBy(1, 0)
	require.InDelta(t, 0, local.TX, tol)
	require.InDelta(t, 1, local.TY, tol)
}

func TestTransformAppendPrepend(t *testing.T) {
	a := geom.Translation(1, 2)
	a.Append(geom.Scale(2, 2))
	require.Equal(t, geom.Transform{M11: 2, M22: 2, TX: 2, TY: 4}, a)

	b := geom.Translation(1, 2)
	b.Prepend(geom.Scale(2, 2))
	require.Equal(t, geom.Transform{M11: 2, M22: 2, TX: 1, TY: 2}, b)
}

func TestTransformRotatedAround(t *testing.T) {
	tr := geom.Identity().RotatedAround(math.Pi/2, geom.Pt(1, 1))
	require.True(t, tr.ApplyPoint(geom.Pt(1, 1)).ApproxEqual(geom.Pt(1, 1), tol))
	require.True(t, tr.ApplyPoint(geom.Pt(2, 1)).ApproxEqual(geom.Pt(1, 2), tol))
}

func TestTransformApply(t *testing.T) {
	tr := geom.Translation(5, 0)
	require.Equal(t, geom.Vec(6, 1), tr.ApplyVector(geom.Vec(1, 1)))
	require.Equal(t, geom.Sz(7, 3), tr.ApplySize(geom.Sz(2, 3)))

	r := geom.Rotation(math.Pi / 2).ApplyRect(geom.Rt(0, 0, 2, 1))
	require.InDelta(t, -1, r.MinX(), tol)
	require.InDelta(t, 0, r.MinY(), tol)
	require.InDelta(t, 1, r.Width(), tol)
	require.InDelta(t, 2, r.Height(), tol)

	require.True(t, tr.ApplyRect(geom.Null()).IsNull())
	require.True(t, tr.ApplyRect(geom.Infinite()).IsInfinite())
	require.True(t, geom.Rotation(1).ApplyRect(geom.Infinite()).IsInfinite())
	require.Equal(t, geom.Rt(6, 1, 2, 2), tr.ApplyRect(geom.Rt(1, 1, 2, 2)))
}

func BenchmarkConcat(b *testing.B) {
	t1 := geom.Rotation(1).ScaledBy(2, 3)
	t2 := geom.Translation(4, 5)
	for range b.N {
		t1 = t1.Concat(t2)
	}
}
