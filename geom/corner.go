package geom

import (
	"fmt"
	"math"
)

// CornerArc describes a circular arc that replaces the sharp corner of
// a polygon. The arc runs from StartPoint at StartAngle to EndPoint at
// EndAngle around Center. Angles are measured around Center.
type CornerArc struct {
	Center     Point
	StartPoint Point
	StartAngle float64
	EndPoint   Point
	EndAngle   float64

	// Clockwise is currently always true. It does not reflect the
	// winding of the polygon that the corner belongs to.
	Clockwise bool
}

// RoundedCornerArc finds the circle of the given radius that is
// tangent to both the line through o and p1 and the line through o and
// p2, where o is a vertex of a polygon and p1 and p2 are its neighbors,
// and returns the arc of that circle between the two tangent points.
//
// If p1 and p2 leave o in the same direction, or either coincides with
// o, no such circle exists and ErrDegenerateCorner is returned.
func RoundedCornerArc(radius float64, o, p1, p2 Point) (CornerArc, error) {
	alpha := AngleAtVertex(o, p1, p2)
	sin := math.Sin(alpha / 2)
	if sin == 0 {
		return CornerArc{}, ErrDegenerateCorner
	}
	dist := radius / sin

	inAngle := AngleOfLineSegment(p1, o)
	center := Polar(o, inAngle+alpha/2, dist)
	startAngle := inAngle - PiOverTwo
	endAngle := AngleOfLineSegment(o, p2) - PiOverTwo

	return CornerArc{
		Center:     center,
		StartPoint: Polar(center, startAngle, radius),
		StartAngle: startAngle,
		EndPoint:   Polar(center, endAngle, radius),
		EndAngle:   endAngle,
		Clockwise:  true,
	}, nil
}

// RoundedCorners returns the arcs for rounding every corner of the
// closed polygon described by vertices. The neighbors of the first and
// last vertices wrap around.
func RoundedCorners(vertices []Point, radius float64) ([]CornerArc, error) {
	n := len(vertices)
	arcs := make([]CornerArc, 0, n)
	for i, o := range vertices {
		p1 := vertices[(i+n-1)%n]
		p2 := vertices[(i+1)%n]
		arc, err := RoundedCornerArc(radius, o, p1, p2)
		if err != nil {
			return arcs, fmt.Errorf("vertex %v: %w", i, err)
		}
		arcs = append(arcs, arc)
	}
	return arcs, nil
}

// RegularPolygon returns the vertices of a regular polygon with the
// given number of sides inscribed in a circle of the given radius. The
// first vertex is at angle rotation around center and the rest follow
// counter-clockwise.
func RegularPolygon(sides int, radius float64, center Point, rotation float64) []Point {
	if sides <= 0 {
		return nil
	}

	theta := TwoPi / float64(sides)
	vertices := make([]Point, 0, sides)
	for side := range sides {
		vertices = append(vertices, Polar(center, float64(side)*theta+rotation, radius))
	}
	return vertices
}
