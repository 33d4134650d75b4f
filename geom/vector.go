package geom

import (
	"fmt"
	"math"
)

// Vector is a displacement in 2D space. It is structurally identical
// to Point but a separate type so that, for example, two points can't
// be added together.
type Vector struct {
	DX, DY float64
}

// Vec is shorthand for Vector{DX: dx, DY: dy}.
func Vec(dx, dy float64) Vector {
	return Vector{DX: dx, DY: dy}
}

// VectorBetween returns the vector pointing from p1 to p2.
func VectorBetween(p1, p2 Point) Vector {
	return p2.Sub(p1)
}

// VectorFromAngle returns a vector with the given angle, in radians,
// and magnitude.
func VectorFromAngle(angle, magnitude float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{DX: cos * magnitude, DY: sin * magnitude}
}

// Dot returns the dot product of v1 and v2.
func Dot(v1, v2 Vector) float64 {
	return v1.DX*v2.DX + v1.DY*v2.DY
}

// Cross returns the z component of the cross product of v1 and v2.
// It is positive when v2 is counter-clockwise from v1.
func Cross(v1, v2 Vector) float64 {
	return v1.DX*v2.DY - v1.DY*v2.DX
}

func (v Vector) Add(o Vector) Vector {
	return Vector{DX: v.DX + o.DX, DY: v.DY + o.DY}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{DX: v.DX - o.DX, DY: v.DY - o.DY}
}

func (v Vector) Neg() Vector {
	return Vector{DX: -v.DX, DY: -v.DY}
}

func (v Vector) Scale(f float64) Vector {
	return Vector{DX: v.DX * f, DY: v.DY * f}
}

func (v Vector) Div(f float64) Vector {
	return Vector{DX: v.DX / f, DY: v.DY / f}
}

// Mul multiplies v and o componentwise.
func (v Vector) Mul(o Vector) Vector {
	return Vector{DX: v.DX * o.DX, DY: v.DY * o.DY}
}

// Point returns the point reached by displacing the origin by v.
func (v Vector) Point() Point {
	return Point{X: v.DX, Y: v.DY}
}

func (v Vector) Magnitude() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Angle returns the direction of v, in radians, in (-π, π].
func (v Vector) Angle() float64 {
	return math.Atan2(v.DY, v.DX)
}

// Normalized returns a vector with the same direction as v and a
// magnitude of 1. The zero vector has no direction and normalizes to
// NaN components.
func (v Vector) Normalized() Vector {
	return v.Div(v.Magnitude())
}

// Rotated returns v rotated counter-clockwise by angle radians.
func (v Vector) Rotated(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		DX: v.DX*cos - v.DY*sin,
		DY: v.DX*sin + v.DY*cos,
	}
}

// Swapped returns v with its components exchanged.
func (v Vector) Swapped() Vector {
	return Vector{DX: v.DY, DY: v.DX}
}

func (v Vector) Lerp(to Vector, frac float64) Vector {
	return Vector{
		DX: lerp(v.DX, to.DX, frac),
		DY: lerp(v.DY, to.DY, frac),
	}
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%v, %v)", v.DX, v.DY)
}
