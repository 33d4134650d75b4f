package grid

import (
	"fmt"
	"image"
	"iter"
	"math/rand/v2"

	"deedles.dev/xgeom/geom"
	"golang.org/x/exp/constraints"
)

// Size is the number of cells along each axis of a grid.
type Size struct {
	Width, Height int
}

// Sz returns a Size from dimensions of any integer type.
func Sz[T constraints.Integer](w, h T) Size {
	return Size{Width: int(w), Height: int(h)}
}

// Bounds returns a rectangle of size s at the origin.
func (s Size) Bounds() Rect {
	return Rect{Size: s}
}

// Aspect returns the ratio of the width to the height.
func (s Size) Aspect() float64 {
	return float64(s.Width) / float64(s.Height)
}

// RandomPoint returns a random cell within a rectangle of size s at
// the origin. It panics if either dimension is not positive.
func (s Size) RandomPoint(r *rand.Rand) Point {
	return Point{X: r.IntN(s.Width), Y: r.IntN(s.Height)}
}

func (s Size) String() string {
	return fmt.Sprintf("Size(width:%v height:%v)", s.Width, s.Height)
}

// Rect is a rectangular group of cells. Unlike image.Rectangle, its
// maximum coordinates are inclusive: a Rect with an origin of (0, 0)
// and a size of 3x3 has a MaxX and MaxY of 2.
type Rect struct {
	Origin Point
	Size   Size
}

// Rt returns a rectangle with the given origin and size.
func Rt(x, y, w, h int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// FromImageRect converts an image.Rectangle. The conversion accounts for
// image.Rectangle's exclusive maximum.
func FromImageRect(r image.Rectangle) Rect {
	r = r.Canon()
	return Rt(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

func (r Rect) Width() int  { return r.Size.Width }
func (r Rect) Height() int { return r.Size.Height }

func (r Rect) MinX() int { return r.Origin.X }
func (r Rect) MinY() int { return r.Origin.Y }
func (r Rect) MaxX() int { return r.Origin.X + r.Size.Width - 1 }
func (r Rect) MaxY() int { return r.Origin.Y + r.Size.Height - 1 }
func (r Rect) MidX() int { return r.Origin.X + r.Size.Width/2 }
func (r Rect) MidY() int { return r.Origin.Y + r.Size.Height/2 }

func (r Rect) Min() Point { return r.Origin }
func (r Rect) Max() Point { return Point{X: r.MaxX(), Y: r.MaxY()} }
func (r Rect) Mid() Point { return Point{X: r.MidX(), Y: r.MidY()} }

// IsEmpty returns true if r contains no cells.
func (r Rect) IsEmpty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Contains returns true if p is one of the cells in r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.Y >= r.MinY() &&
		p.X <= r.MaxX() && p.Y <= r.MaxY()
}

// Xs yields the X coordinate of every column of r in order.
func (r Rect) Xs() iter.Seq[int] {
	return span(r.MinX(), r.MaxX())
}

// Ys yields the Y coordinate of every row of r in order.
func (r Rect) Ys() iter.Seq[int] {
	return span(r.MinY(), r.MaxY())
}

// Points yields every cell in r, row by row.
func (r Rect) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range r.Ys() {
			for x := range r.Xs() {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// RandomPoint returns a random cell in r. It panics if r is empty.
func (r Rect) RandomPoint(rnd *rand.Rand) Point {
	p := r.Size.RandomPoint(rnd)
	return Point{X: r.Origin.X + p.X, Y: r.Origin.Y + p.Y}
}

// Geom converts r to a floating-point Rect covering the same area. A
// cell is treated as the unit square at its coordinates.
func (r Rect) Geom() geom.Rect {
	return geom.Rt(
		float64(r.Origin.X),
		float64(r.Origin.Y),
		float64(r.Size.Width),
		float64(r.Size.Height),
	)
}

// Image converts r to an image.Rectangle covering the same cells.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.MinX(), r.MinY(), r.MinX()+r.Width(), r.MinY()+r.Height())
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%v, %v)", r.Origin, r.Size)
}

func span(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := lo; i <= hi; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
