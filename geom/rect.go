package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle described by an origin and a
// size. A Rect whose size has a negative dimension is in non-standard
// form: it extends from its origin in the negative direction along
// that axis. Most operations standardize their operands before doing
// anything else.
//
// Two sentinel rectangles are given special treatment. The null
// rectangle, returned by Null, represents the absence of a rectangle,
// such as the intersection of two disjoint rectangles. It is the
// identity for Union and absorbs Intersect. The infinite rectangle,
// returned by Infinite, covers the entire plane.
type Rect struct {
	Origin Point
	Size   Size
}

// Rt is shorthand for a Rect with the given origin and size.
func Rt(x, y, w, h float64) Rect {
	return Rect{Origin: Pt(x, y), Size: Sz(w, h)}
}

// RectFromMinMax returns the rectangle spanning from (minX, minY) to
// (maxX, maxY).
func RectFromMinMax(minX, minY, maxX, maxY float64) Rect {
	return Rt(minX, minY, maxX-minX, maxY-minY)
}

// Null returns the null rectangle.
func Null() Rect {
	return Rect{Origin: InfinitePoint()}
}

// Infinite returns the infinite rectangle.
func Infinite() Rect {
	return Rect{
		Origin: InfinitePoint().Neg(),
		Size:   InfiniteSize(),
	}
}

func (r Rect) Width() float64  { return r.Size.Width }
func (r Rect) Height() float64 { return r.Size.Height }

func (r Rect) MinX() float64 { return r.Origin.X }
func (r Rect) MidX() float64 { return r.Origin.X + r.Size.Width/2 }
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }
func (r Rect) MinY() float64 { return r.Origin.Y }
func (r Rect) MidY() float64 { return r.Origin.Y + r.Size.Height/2 }
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

func (r Rect) MinXMinY() Point { return r.Origin }
func (r Rect) MaxXMinY() Point { return Pt(r.MaxX(), r.MinY()) }
func (r Rect) MinXMaxY() Point { return Pt(r.MinX(), r.MaxY()) }
func (r Rect) MaxXMaxY() Point { return Pt(r.MaxX(), r.MaxY()) }
func (r Rect) MidXMinY() Point { return Pt(r.MidX(), r.MinY()) }
func (r Rect) MidXMaxY() Point { return Pt(r.MidX(), r.MaxY()) }
func (r Rect) MinXMidY() Point { return Pt(r.MinX(), r.MidY()) }
func (r Rect) MaxXMidY() Point { return Pt(r.MaxX(), r.MidY()) }
func (r Rect) MidXMidY() Point { return Pt(r.MidX(), r.MidY()) }

// Center is an alias for MidXMidY.
func (r Rect) Center() Point { return r.MidXMidY() }

// IsNull returns true if r is the null rectangle. Only the origin is
// considered.
func (r Rect) IsNull() bool {
	return r.Origin == InfinitePoint()
}

// IsEmpty returns true if r is null or has no area.
func (r Rect) IsEmpty() bool {
	return r.IsNull() || r.Size.IsEmpty()
}

// IsInfinite returns true if r is the infinite rectangle.
func (r Rect) IsInfinite() bool {
	return r == Infinite()
}

// Standardized returns an equivalent rectangle with a non-negative
// width and height.
func (r Rect) Standardized() Rect {
	if r.IsNull() {
		return r
	}

	if r.Size.Width < 0 {
		r.Size.Width = -r.Size.Width
		r.Origin.X -= r.Size.Width
	}
	if r.Size.Height < 0 {
		r.Size.Height = -r.Size.Height
		r.Origin.Y -= r.Size.Height
	}
	return r
}

// Integral rounds the origin of r down and its size up, each axis
// independently.
func (r Rect) Integral() Rect {
	if r.IsNull() {
		return r
	}

	return Rt(
		math.Floor(r.Origin.X),
		math.Floor(r.Origin.Y),
		math.Ceil(r.Size.Width),
		math.Ceil(r.Size.Height),
	)
}

// OffsetBy moves r without changing its size.
func (r Rect) OffsetBy(dx, dy float64) Rect {
	if r.IsNull() {
		return r
	}

	r.Origin.X += dx
	r.Origin.Y += dy
	return r
}

// Offset is like OffsetBy but takes a Vector.
func (r Rect) Offset(v Vector) Rect {
	return r.OffsetBy(v.DX, v.DY)
}

// InsetBy shrinks the standardized form of r by dx on both its
// left and right and by dy on both its top and bottom. Negative values
// grow it instead. If the rectangle would be inset past its own
// extent, the null rectangle is returned.
func (r Rect) InsetBy(dx, dy float64) Rect {
	if r.IsNull() {
		return r
	}

	r = r.Standardized()
	r.Origin.X += dx
	r.Size.Width -= 2 * dx
	r.Origin.Y += dy
	r.Size.Height -= 2 * dy
	if r.Size.Width < 0 || r.Size.Height < 0 {
		return Null()
	}
	return r
}

// Inset shrinks the standardized form of r by each of the given
// insets. Top and Left apply to the minimum edges. As with InsetBy, the
// null rectangle is returned if the insets exceed the rectangle.
func (r Rect) Inset(in Insets) Rect {
	if r.IsNull() {
		return r
	}

	r = r.Standardized()
	r.Origin.X += in.Left
	r.Origin.Y += in.Top
	r.Size.Width -= in.Horizontal()
	r.Size.Height -= in.Vertical()
	if r.Size.Width < 0 || r.Size.Height < 0 {
		return Null()
	}
	return r
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.IsNull():
		return o
	case o.IsNull():
		return r
	case r.IsInfinite(), o.IsInfinite():
		return Infinite()
	}

	r1, r2 := r.Standardized(), o.Standardized()
	return RectFromMinMax(
		min(r1.MinX(), r2.MinX()),
		min(r1.MinY(), r2.MinY()),
		max(r1.MaxX(), r2.MaxX()),
		max(r1.MaxY(), r2.MaxY()),
	)
}

// Intersect returns the area shared by r and o. If they do not
// overlap, the null rectangle is returned. Rectangles that share only
// an edge do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	switch {
	case r.IsNull(), o.IsNull():
		return Null()
	case r.IsInfinite():
		return o.Standardized()
	case o.IsInfinite():
		return r.Standardized()
	}

	r1, r2 := r.Standardized(), o.Standardized()
	if !overlaps(r1, r2) {
		return Null()
	}

	return RectFromMinMax(
		max(r1.MinX(), r2.MinX()),
		max(r1.MinY(), r2.MinY()),
		min(r1.MaxX(), r2.MaxX()),
		min(r1.MaxY(), r2.MaxY()),
	)
}

// Intersects returns true if Intersect would return a non-null
// rectangle.
func (r Rect) Intersects(o Rect) bool {
	switch {
	case r.IsNull(), o.IsNull():
		return false
	case r.IsInfinite(), o.IsInfinite():
		return true
	}

	return overlaps(r.Standardized(), o.Standardized())
}

// overlaps expects both rectangles to be standardized.
func overlaps(r1, r2 Rect) bool {
	return r1.MaxX() > r2.MinX() &&
		r1.MinX() < r2.MaxX() &&
		r1.MaxY() > r2.MinY() &&
		r1.MinY() < r2.MaxY()
}

// ContainsPoint returns true if p lies within r. The minimum edges of
// r are included and the maximum edges are not, so a point is never
// contained by two adjacent rectangles.
func (r Rect) ContainsPoint(p Point) bool {
	if r.IsEmpty() {
		return false
	}
	if r.IsInfinite() {
		return !math.IsNaN(p.X) && !math.IsNaN(p.Y)
	}

	r = r.Standardized()
	return p.X >= r.MinX() && p.X < r.MaxX() &&
		p.Y >= r.MinY() && p.Y < r.MaxY()
}

// ContainsRect returns true if o lies entirely within r, which is to
// say that the union of the two is the standardized form of r.
func (r Rect) ContainsRect(o Rect) bool {
	switch {
	case r.IsNull(), o.IsNull():
		return false
	case r.IsInfinite():
		return true
	}

	return r.Union(o) == r.Standardized()
}

// Divide slices a rectangle of thickness distance off of the given
// edge of r, returning the slice and whatever remains. If distance is
// not positive, including NaN, the slice is null and the remainder is
// r. If distance reaches or exceeds the extent of r along the relevant
// axis, the slice is r and the remainder is null. For the infinite
// rectangle, any positive distance takes the whole rectangle as the
// slice.
//
// Divide panics if edge is not exactly one of EdgeMinX, EdgeMinY,
// EdgeMaxX or EdgeMaxY.
func (r Rect) Divide(distance float64, edge Edges) (slice, remainder Rect) {
	s := r.Standardized()

	var extent float64
	switch edge {
	case EdgeMinX, EdgeMaxX:
		extent = s.Size.Width
	case EdgeMinY, EdgeMaxY:
		extent = s.Size.Height
	default:
		panic(fmt.Errorf("divide from invalid edge %v", edge))
	}

	switch {
	case r.IsNull():
		return Null(), Null()
	case !(distance > 0):
		return Null(), r
	case r.IsInfinite(), distance >= extent:
		return r, Null()
	}

	x1, y1, x2, y2 := s.MinX(), s.MinY(), s.MaxX(), s.MaxY()
	switch edge {
	case EdgeMinX:
		x := x1 + distance
		return RectFromMinMax(x1, y1, x, y2), RectFromMinMax(x, y1, x2, y2)
	case EdgeMaxX:
		x := x2 - distance
		return RectFromMinMax(x, y1, x2, y2), RectFromMinMax(x1, y1, x, y2)
	case EdgeMinY:
		y := y1 + distance
		return RectFromMinMax(x1, y1, x2, y), RectFromMinMax(x1, y, x2, y2)
	default:
		y := y2 - distance
		return RectFromMinMax(x1, y, x2, y2), RectFromMinMax(x1, y1, x2, y)
	}
}

// Lerp interpolates the origin and size of r towards to.
func (r Rect) Lerp(to Rect, frac float64) Rect {
	return Rect{
		Origin: r.Origin.Lerp(to.Origin, frac),
		Size:   r.Size.Lerp(to.Size, frac),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%v, %v, %v, %v)", r.MinX(), r.MinY(), r.Width(), r.Height())
}
