package geom

import "math"

// A Line in the plane in general form: ax + by + c = 0.
type Line struct {
	A float64
	B float64
	C float64
}

// NewLine returns the line with coefficients a, b, and c.
func NewLine(a, b, c float64) Line {
	return Line{a, b, c}
}

// LineFromPoints returns the line through the two given points.
func LineFromPoints(p1, p2 Point) Line {
	a := p2.Y - p1.Y
	b := p1.X - p2.X
	c := -(a*p1.X + b*p1.Y)
	return Line{a, b, c}
}

// Intersection returns the point where the two lines cross. The second return
// value is false when the lines are parallel, including the case where they
// are coincident.
func (l Line) Intersection(other Line) (Point, bool) {
	d := l.A*other.B - other.A*l.B
	if math.Abs(d) < Epsilon {
		return Point{}, false
	}
	x := (l.B*other.C - other.B*l.C) / d
	y := (other.A*l.C - l.A*other.C) / d
	return Point{x, y}, true
}

// PerpendicularThrough returns the line perpendicular to l passing through
// the given point.
func (l Line) PerpendicularThrough(p Point) Line {
	return Line{l.B, -l.A, l.A*p.Y - l.B*p.X}
}

// FootOfPerpendicular returns the foot of the perpendicular dropped from the
// given point onto the line, that is, the point on the line closest to p.
func (l Line) FootOfPerpendicular(p Point) Point {
	foot, _ := l.Intersection(l.PerpendicularThrough(p))
	return foot
}

// VerifyPythagorean checks the Pythagorean identity on the right triangle
// formed by the given point, the foot of its perpendicular onto the line, and
// an axis intercept of the line. The comparison uses VerifyEpsilon to absorb
// the rounding error accumulated across the three distances.
func VerifyPythagorean(l Line, p Point) bool {
	foot := l.FootOfPerpendicular(p)

	var base Point
	if math.Abs(l.B) > Epsilon {
		base = Point{0, -l.C / l.B}
	} else {
		base = Point{-l.C / l.A, 0}
	}

	a := p.Distance(foot)
	b := foot.Distance(base)
	c := p.Distance(base)

	return math.Abs(a*a+b*b-c*c) < VerifyEpsilon
}
