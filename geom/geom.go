// Package geom provides double-precision 2D geometry primitives:
// points, vectors, sizes, axis-aligned rectangles and affine
// transforms, along with a handful of angle utilities and the
// geometry needed to round the corners of a polygon.
//
// All types are small values that are meant to be copied. Apart from
// the few methods with pointer receivers, which modify their receiver
// in place, every operation returns a new value.
package geom

import (
	"errors"
	"fmt"
)

// Epsilon is the machine epsilon for float64. A Transform whose
// determinant has an absolute value no greater than Epsilon is
// considered to be non-invertible.
const Epsilon = 2.220446049250313e-16

var (
	// ErrNotInvertible is returned when attempting to invert a
	// Transform with a determinant of (nearly) zero.
	ErrNotInvertible = errors.New("transform is not invertible")

	// ErrDegenerateCorner is returned when a corner can not be rounded
	// because its two neighbors leave the vertex in the same
	// direction, or coincide with it.
	ErrDegenerateCorner = errors.New("degenerate corner")

	// ErrBadLength indicates that a flat encoding had the wrong number
	// of elements for the type being decoded.
	ErrBadLength = errors.New("bad length")
)

// Edges is a bitmask representing zero or more edges of a rectangle.
// Edges are named by the coordinate they lie on rather than by
// direction so that they mean the same thing in both y-up and y-down
// coordinate systems.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeMinX Edges = 1 << (iota - 1)
	EdgeMinY
	EdgeMaxX
	EdgeMaxY
)

func (e Edges) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case EdgeMinX:
		return "minX"
	case EdgeMinY:
		return "minY"
	case EdgeMaxX:
		return "maxX"
	case EdgeMaxY:
		return "maxY"
	default:
		return fmt.Sprintf("Edges(%#x)", uint32(e))
	}
}
