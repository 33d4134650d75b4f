package geom

import "math"

const (
	PiOverTwo = math.Pi / 2
	TwoPi     = math.Pi * 2
)

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 {
	return degrees / 180 * math.Pi
}

// Degrees converts an angle in radians to degrees.
func Degrees(radians float64) float64 {
	return radians / math.Pi * 180
}

// AngleOfLineSegment returns the direction of travel from p1 to p2.
func AngleOfLineSegment(p1, p2 Point) float64 {
	return VectorBetween(p1, p2).Angle()
}

// AngleBetweenVectors returns the signed angle from v1 to v2 in
// (-π, π]. It is positive if v2 is counter-clockwise from v1.
func AngleBetweenVectors(v1, v2 Vector) float64 {
	return math.Atan2(Cross(v1, v2), Dot(v1, v2))
}

// AngleAtVertex returns the signed angle at o from the direction of p1
// to the direction of p2.
func AngleAtVertex(o, p1, p2 Point) float64 {
	return AngleBetweenVectors(VectorBetween(o, p1), VectorBetween(o, p2))
}

// TurningAngleAtVertex returns how far a path travelling from p1
// through p2 turns at p2 in order to head towards p3.
func TurningAngleAtVertex(p1, p2, p3 Point) float64 {
	return AngleBetweenVectors(VectorBetween(p1, p2), VectorBetween(p2, p3))
}

// MeetingAngleAtVertex returns the angle between the segments p1→p2
// and p3→p2, both of which end at p2.
func MeetingAngleAtVertex(p1, p2, p3 Point) float64 {
	return AngleBetweenVectors(VectorBetween(p1, p2), VectorBetween(p3, p2))
}

// PartingAngleAtVertex returns the angle between the segments p2→p1
// and p2→p3, both of which start at p2. It is the same as
// AngleAtVertex(p2, p1, p3).
func PartingAngleAtVertex(p1, p2, p3 Point) float64 {
	return AngleBetweenVectors(VectorBetween(p2, p1), VectorBetween(p2, p3))
}

// IsCollinear returns true if the three points lie on a single line,
// give or take tolerance. The tolerance applies to twice the area of
// the triangle formed by the points.
func IsCollinear(p1, p2, p3 Point, tolerance float64) bool {
	return math.Abs((p3.Y-p2.Y)*(p1.X-p3.X)-(p1.Y-p3.Y)*(p3.X-p2.X)) < tolerance
}

// MiterLength returns the length of the miter at a join of lines of
// the given width meeting at angle phi.
func MiterLength(lineWidth, phi float64) float64 {
	return lineWidth / math.Sin(phi/2)
}
