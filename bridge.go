// Package xgeom converts the types in geom to and from the geometry
// types used by the standard image package and by golang.org/x/image.
//
// Conversions to f64 types are lossless. Conversions to f32 and
// fixed-point types narrow precision but are otherwise faithful.
package xgeom

import (
	"image"
	"math"

	"deedles.dev/xgeom/geom"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func ToVec2(p geom.Point) f64.Vec2 {
	return f64.Vec2{p.X, p.Y}
}

func PointFromVec2(v f64.Vec2) geom.Point {
	return geom.Pt(v[0], v[1])
}

func VectorToVec2(v geom.Vector) f64.Vec2 {
	return f64.Vec2{v.DX, v.DY}
}

func VectorFromVec2(v f64.Vec2) geom.Vector {
	return geom.Vec(v[0], v[1])
}

func SizeToVec2(s geom.Size) f64.Vec2 {
	return f64.Vec2{s.Width, s.Height}
}

func SizeFromVec2(v f64.Vec2) geom.Size {
	return geom.Sz(v[0], v[1])
}

// ToAff3 converts t into an f64.Aff3. An Aff3 multiplies column
// vectors, so the result is the transpose of t's matrix.
func ToAff3(t geom.Transform) f64.Aff3 {
	return f64.Aff3{
		t.M11, t.M21, t.TX,
		t.M12, t.M22, t.TY,
	}
}

// FromAff3 is the inverse of ToAff3.
func FromAff3(m f64.Aff3) geom.Transform {
	return geom.Transform{
		M11: m[0], M12: m[3],
		M21: m[1], M22: m[4],
		TX: m[2], TY: m[5],
	}
}

// ToAff3F32 is like ToAff3 but narrows to float32.
func ToAff3F32(t geom.Transform) f32.Aff3 {
	return f32.Aff3{
		float32(t.M11), float32(t.M21), float32(t.TX),
		float32(t.M12), float32(t.M22), float32(t.TY),
	}
}

func FromAff3F32(m f32.Aff3) geom.Transform {
	return geom.Transform{
		M11: float64(m[0]), M12: float64(m[3]),
		M21: float64(m[1]), M22: float64(m[4]),
		TX: float64(m[2]), TY: float64(m[5]),
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// ToFixedPoint converts p into 26.6 fixed point, rounding to the
// nearest 1/64th.
func ToFixedPoint(p geom.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

func FromFixedPoint(p fixed.Point26_6) geom.Point {
	return geom.Pt(fromFixed(p.X), fromFixed(p.Y))
}

// ToFixedRect converts the standardized form of r into 26.6 fixed
// point. The null rectangle converts to the zero rectangle.
func ToFixedRect(r geom.Rect) fixed.Rectangle26_6 {
	if r.IsNull() {
		return fixed.Rectangle26_6{}
	}

	r = r.Standardized()
	return fixed.Rectangle26_6{
		Min: ToFixedPoint(r.MinXMinY()),
		Max: ToFixedPoint(r.MaxXMaxY()),
	}
}

func FromFixedRect(r fixed.Rectangle26_6) geom.Rect {
	return geom.RectFromMinMax(
		fromFixed(r.Min.X),
		fromFixed(r.Min.Y),
		fromFixed(r.Max.X),
		fromFixed(r.Max.Y),
	)
}

// ToImageRect returns the smallest image.Rectangle containing r.
// Coordinates beyond the range of int are clamped to it. Rects that
// are null or not finite convert to the zero rectangle.
func ToImageRect(r geom.Rect) image.Rectangle {
	if r.IsNull() || !isFinite(r) {
		return image.Rectangle{}
	}

	r = r.Standardized()
	return image.Rect(
		toInt(math.Floor(r.MinX())),
		toInt(math.Floor(r.MinY())),
		toInt(math.Ceil(r.MaxX())),
		toInt(math.Ceil(r.MaxY())),
	)
}

// toInt converts v, clamping it to the range of int.
func toInt(v float64) int {
	switch {
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	default:
		return int(v)
	}
}

func FromImageRect(r image.Rectangle) geom.Rect {
	return geom.RectFromMinMax(
		float64(r.Min.X),
		float64(r.Min.Y),
		float64(r.Max.X),
		float64(r.Max.Y),
	)
}

func isFinite(r geom.Rect) bool {
	for _, v := range [...]float64{r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
