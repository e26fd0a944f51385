package geom

import "math"

// A Circle in the plane, defined by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle returns the circle with the given center and radius.
func NewCircle(center Point, radius float64) Circle {
	return Circle{center, radius}
}

// IntersectCircle returns the points where the two circles cross. The result
// is empty when the circles are disjoint, either separate or one contained in
// the other. Tangent circles return the point of tangency twice; the repeated
// point is not deduplicated.
func (c Circle) IntersectCircle(other Circle) []Point {
	d := c.Center.Distance(other.Center)
	if d > c.Radius+other.Radius || d < math.Abs(c.Radius-other.Radius) {
		return nil
	}

	// Distance from c's center to the chord through the intersection points,
	// along the line of centers.
	a := (c.Radius*c.Radius - other.Radius*other.Radius + d*d) / (2 * d)
	h := math.Sqrt(math.Max(c.Radius*c.Radius-a*a, 0))

	x0, y0 := c.Center.X, c.Center.Y
	x1, y1 := other.Center.X, other.Center.Y

	xm := x0 + a*(x1-x0)/d
	ym := y0 + a*(y1-y0)/d

	rx := -(y1 - y0) * (h / d)
	ry := (x1 - x0) * (h / d)

	return []Point{
		{xm + rx, ym + ry},
		{xm - rx, ym - ry},
	}
}

// IntersectLine returns the points where the circle and the line cross. The
// result is empty when the line misses the circle. A tangent line returns the
// point of tangency twice; the repeated point is not deduplicated.
func (c Circle) IntersectLine(line Line) []Point {
	a, b, cc := line.A, line.B, line.C
	x0, y0 := c.Center.X, c.Center.Y

	d := math.Abs(a*x0+b*y0+cc) / math.Hypot(a, b)
	if d > c.Radius {
		return nil
	}

	// Project the center onto the line, then walk along the line's direction
	// by half the chord length in both directions.
	t := -(a*x0 + b*y0 + cc) / (a*a + b*b)
	xh := x0 + a*t
	yh := y0 + b*t

	h := math.Sqrt(math.Max(c.Radius*c.Radius-d*d, 0))
	dx := -b / math.Hypot(a, b)
	dy := a / math.Hypot(a, b)

	return []Point{
		{xh + dx*h, yh + dy*h},
		{xh - dx*h, yh - dy*h},
	}
}
