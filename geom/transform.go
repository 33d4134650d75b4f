package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Transform is a 2D affine transformation. It represents the
// augmented matrix
//
//	[ M11  M12  0 ]
//	[ M21  M22  0 ]
//	[ TX   TY   1 ]
//
// which is applied to row vectors of the form [x y 1]. Under this
// convention, t.Concat(o) applies t first and o second.
//
// The zero value is not the identity. Use Identity instead.
type Transform struct {
	M11, M12 float64
	M21, M22 float64
	TX, TY   float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{M11: 1, M22: 1}
}

// Translation returns a transform that translates by (x, y).
func Translation(x, y float64) Transform {
	return Transform{M11: 1, M22: 1, TX: x, TY: y}
}

// TranslationBy returns a transform that translates by v.
func TranslationBy(v Vector) Transform {
	return Translation(v.DX, v.DY)
}

// Scale returns a transform that scales by sx along the X axis and sy
// along the Y axis.
func Scale(sx, sy float64) Transform {
	return Transform{M11: sx, M22: sy}
}

// ScaleBy returns a transform that scales by the components of v.
func ScaleBy(v Vector) Transform {
	return Scale(v.DX, v.DY)
}

// UniformScale returns a transform that scales by f along both axes.
func UniformScale(f float64) Transform {
	return Scale(f, f)
}

// Rotation returns a transform that rotates by angle radians. Positive
// angles rotate the positive X axis towards the positive Y axis.
func Rotation(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{
		M11: cos, M12: sin,
		M21: -sin, M22: cos,
	}
}

// TranslatedBy returns t with a translation of (x, y) applied in t's
// own coordinate space, meaning that any rotation or scale in t
// affects the translation.
func (t Transform) TranslatedBy(x, y float64) Transform {
	t.TX += t.M11*x + t.M21*y
	t.TY += t.M12*x + t.M22*y
	return t
}

// Translated is like TranslatedBy but takes a Vector.
func (t Transform) Translated(v Vector) Transform {
	return t.TranslatedBy(v.DX, v.DY)
}

// ScaledBy returns t with its linear part scaled by x and y. The
// translation is unaffected.
func (t Transform) ScaledBy(x, y float64) Transform {
	t.M11 *= x
	t.M12 *= x
	t.M21 *= y
	t.M22 *= y
	return t
}

// Scaled is like ScaledBy but takes a Vector.
func (t Transform) Scaled(v Vector) Transform {
	return t.ScaledBy(v.DX, v.DY)
}

// RotatedBy returns a transform that rotates by angle radians and
// then applies t.
func (t Transform) RotatedBy(angle float64) Transform {
	return Rotation(angle).Concat(t)
}

// RotatedAround is like RotatedBy, but the rotation is around p in t's
// coordinate space instead of around the origin.
func (t Transform) RotatedAround(angle float64, p Point) Transform {
	return t.TranslatedBy(p.X, p.Y).RotatedBy(angle).TranslatedBy(-p.X, -p.Y)
}

// Concat returns the matrix product t * o, a transform which applies t
// and then o.
func (t Transform) Concat(o Transform) Transform {
	return Transform{
		M11: t.M11*o.M11 + t.M12*o.M21,
		M12: t.M11*o.M12 + t.M12*o.M22,
		M21: t.M21*o.M11 + t.M22*o.M21,
		M22: t.M21*o.M12 + t.M22*o.M22,
		TX:  t.TX*o.M11 + t.TY*o.M21 + o.TX,
		TY:  t.TX*o.M12 + t.TY*o.M22 + o.TY,
	}
}

// Append sets t so that o is applied after it.
func (t *Transform) Append(o Transform) {
	*t = t.Concat(o)
}

// Prepend sets t so that o is applied before it.
func (t *Transform) Prepend(o Transform) {
	*t = o.Concat(*t)
}

// Determinant returns the determinant of the linear part of t.
func (t Transform) Determinant() float64 {
	return t.M11*t.M22 - t.M12*t.M21
}

// IsInvertible returns true if Inverted would succeed.
func (t Transform) IsInvertible() bool {
	return math.Abs(t.Determinant()) > Epsilon
}

// Inverted returns the inverse of t. If the determinant of t is within
// Epsilon of zero, ErrNotInvertible is returned instead.
func (t Transform) Inverted() (Transform, error) {
	det := t.Determinant()
	if math.Abs(det) <= Epsilon {
		return Transform{}, ErrNotInvertible
	}

	return Transform{
		M11: t.M22 / det,
		M12: -t.M12 / det,
		M21: -t.M21 / det,
		M22: t.M11 / det,
		TX:  (t.M21*t.TY - t.M22*t.TX) / det,
		TY:  (t.M12*t.TX - t.M11*t.TY) / det,
	}, nil
}

// Invert sets t to its inverse. If t is not invertible, it is left
// unchanged and ErrNotInvertible is returned.
func (t *Transform) Invert() error {
	inv, err := t.Inverted()
	if err != nil {
		return err
	}
	*t = inv
	return nil
}

func (t Transform) apply(x, y float64) (float64, float64) {
	return t.M11*x + t.M21*y + t.TX, t.M12*x + t.M22*y + t.TY
}

// ApplyPoint transforms p.
func (t Transform) ApplyPoint(p Point) Point {
	x, y := t.apply(p.X, p.Y)
	return Point{X: x, Y: y}
}

// ApplyVector transforms v exactly as if it was a Point. Note that this
// includes the translation of t.
func (t Transform) ApplyVector(v Vector) Vector {
	dx, dy := t.apply(v.DX, v.DY)
	return Vector{DX: dx, DY: dy}
}

// ApplySize transforms s exactly as if it was a Point. Note that this
// includes the translation of t.
func (t Transform) ApplySize(s Size) Size {
	w, h := t.apply(s.Width, s.Height)
	return Size{Width: w, Height: h}
}

// ApplyRect returns the smallest rectangle containing the four
// transformed corners of r. The null and infinite rectangles are
// returned unchanged.
func (t Transform) ApplyRect(r Rect) Rect {
	if r.IsNull() || r.IsInfinite() {
		return r
	}

	p0 := t.ApplyPoint(r.MinXMinY())
	p1 := t.ApplyPoint(r.MaxXMinY())
	p2 := t.ApplyPoint(r.MaxXMaxY())
	p3 := t.ApplyPoint(r.MinXMaxY())
	return RectFromMinMax(
		min(p0.X, p1.X, p2.X, p3.X),
		min(p0.Y, p1.Y, p2.Y, p3.Y),
		max(p0.X, p1.X, p2.X, p3.X),
		max(p0.Y, p1.Y, p2.Y, p3.Y),
	)
}

// IsIdentity returns true if t is exactly the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// ApproxEqual returns true if every component of t is within tol of
// the corresponding component of o. Use == for exact comparison.
func (t Transform) ApproxEqual(o Transform, tol float64) bool {
	return scalar.EqualWithinAbs(t.M11, o.M11, tol) &&
		scalar.EqualWithinAbs(t.M12, o.M12, tol) &&
		scalar.EqualWithinAbs(t.M21, o.M21, tol) &&
		scalar.EqualWithinAbs(t.M22, o.M22, tol) &&
		scalar.EqualWithinAbs(t.TX, o.TX, tol) &&
		scalar.EqualWithinAbs(t.TY, o.TY, tol)
}

func (t Transform) String() string {
	return fmt.Sprintf(
		"{m11:%v, m12:%v, m21:%v, m22:%v, tX:%v, tY:%v}",
		t.M11, t.M12, t.M21, t.M22, t.TX, t.TY,
	)
}
