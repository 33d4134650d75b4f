// Package grid provides integer counterparts to the types in geom for
// working with cells of a grid, along with directions for moving
// between neighboring cells.
package grid

import (
	"fmt"
	"image"

	"deedles.dev/xgeom/geom"
	"golang.org/x/exp/constraints"
)

// Point is a cell in a grid.
type Point struct {
	X, Y int
}

// Pt returns a Point from coordinates of any integer type.
func Pt[T constraints.Integer](x, y T) Point {
	return Point{X: int(x), Y: int(y)}
}

// FromImagePoint converts an image.Point.
func FromImagePoint(p image.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// Add returns p moved by o.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.DX, Y: p.Y + o.DY}
}

// Sub returns the offset that moves q to p.
func (p Point) Sub(q Point) Offset {
	return Offset{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Geom converts p to a floating-point Point.
func (p Point) Geom() geom.Point {
	return geom.Pt(float64(p.X), float64(p.Y))
}

func (p Point) Image() image.Point {
	return image.Pt(p.X, p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(x:%v y:%v)", p.X, p.Y)
}
