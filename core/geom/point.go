// Package geom provides planar Euclidean geometry primitives: points, lines,
// circles, and triangles, with affine transforms and intersection queries.
// All coordinates are float64 and all functions are pure; transforms return
// new values and never modify their receivers.
package geom

import (
	"fmt"
	"math"
)

const (
	// Epsilon is the tolerance below which a quantity is treated as zero when
	// detecting degenerate configurations, such as parallel lines.
	Epsilon = 1e-9

	// VerifyEpsilon is the looser tolerance used when verifying metric
	// identities that accumulate rounding error across several distances.
	VerifyEpsilon = 1e-6
)

// A Point is a location in the Cartesian plane.
type Point struct {
	X float64
	Y float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{x, y}
}

// Distance returns the Euclidean distance between the two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Translate returns the point shifted by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Scale returns the point scaled by the factor k about the origin.
func (p Point) Scale(k float64) Point {
	return p.ScaleAbout(k, Point{})
}

// ScaleAbout returns the point scaled by the factor k about the given center.
func (p Point) ScaleAbout(k float64, center Point) Point {
	return Point{
		center.X + k*(p.X-center.X),
		center.Y + k*(p.Y-center.Y),
	}
}

// Rotate returns the point rotated by theta radians counterclockwise about
// the origin.
func (p Point) Rotate(theta float64) Point {
	return p.RotateAbout(theta, Point{})
}

// RotateAbout returns the point rotated by theta radians counterclockwise
// about the given center.
func (p Point) RotateAbout(theta float64, center Point) Point {
	cos, sin := math.Cos(theta), math.Sin(theta)
	x, y := p.X-center.X, p.Y-center.Y
	return Point{
		center.X + x*cos - y*sin,
		center.Y + x*sin + y*cos,
	}
}

// Eq returns true when both coordinates of the points differ by less than
// Epsilon.
func (p Point) Eq(q Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}

// String implements the Stringer interface.
func (p Point) String() string {
	return fmt.Sprintf("Point(%.3f, %.3f)", p.X, p.Y)
}
