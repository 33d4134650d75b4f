package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Point is a location in 2D space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// InfinitePoint returns the point at (+Inf, +Inf). It is the origin
// of the null rectangle.
func InfinitePoint() Point {
	return Point{X: math.Inf(1), Y: math.Inf(1)}
}

// Polar returns the point that is radius away from center in the
// direction of angle, in radians.
func Polar(center Point, angle, radius float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: center.X + cos*radius,
		Y: center.Y + sin*radius,
	}
}

// MinPoint returns the componentwise minimum of p1 and p2.
func MinPoint(p1, p2 Point) Point {
	return Point{X: min(p1.X, p2.X), Y: min(p1.Y, p2.Y)}
}

// MaxPoint returns the componentwise maximum of p1 and p2.
func MaxPoint(p1, p2 Point) Point {
	return Point{X: max(p1.X, p2.X), Y: max(p1.Y, p2.Y)}
}

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Sub returns the vector pointing from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{DX: p.X - q.X, DY: p.Y - q.Y}
}

// SubVector returns p displaced by the negation of v.
func (p Point) SubVector(v Vector) Point {
	return Point{X: p.X - v.DX, Y: p.Y - v.DY}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Vector returns the vector from the origin to p.
func (p Point) Vector() Vector {
	return Vector{DX: p.X, DY: p.Y}
}

// Magnitude returns the distance of p from the origin.
func (p Point) Magnitude() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns the angle of p around the origin, in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return q.Sub(p).Magnitude()
}

// RotatedAround rotates p around center by angle radians.
func (p Point) RotatedAround(angle float64, center Point) Point {
	return center.Add(p.Sub(center).Rotated(angle))
}

// Lerp linearly interpolates between p and to. A frac of 0 returns p
// and a frac of 1 returns to.
func (p Point) Lerp(to Point, frac float64) Point {
	return Point{
		X: lerp(p.X, to.X, frac),
		Y: lerp(p.Y, to.Y, frac),
	}
}

// ToNormalized maps p from the space [0, size] into [-1, 1] along
// each axis.
func (p Point) ToNormalized(size Size) Point {
	return Point{
		X: remap(p.X, 0, size.Width, -1, 1),
		Y: remap(p.Y, 0, size.Height, -1, 1),
	}
}

// FromNormalized is the inverse of ToNormalized.
func (p Point) FromNormalized(size Size) Point {
	return Point{
		X: remap(p.X, -1, 1, 0, size.Width),
		Y: remap(p.Y, -1, 1, 0, size.Height),
	}
}

// TransformCoordinates maps p from the space [0, from] into [0, to].
func (p Point) TransformCoordinates(from, to Size) Point {
	return Point{
		X: remap(p.X, 0, from.Width, 0, to.Width),
		Y: remap(p.Y, 0, from.Height, 0, to.Height),
	}
}

// ApproxEqual reports whether p and q are within tol of each other
// along both axes.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return scalar.EqualWithinAbs(p.X, q.X, tol) &&
		scalar.EqualWithinAbs(p.Y, q.Y, tol)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%v, %v)", p.X, p.Y)
}

func lerp(from, to, frac float64) float64 {
	return from + (to-from)*frac
}

func remap(v, fromMin, fromMax, toMin, toMax float64) float64 {
	return lerp(toMin, toMax, (v-fromMin)/(fromMax-fromMin))
}
