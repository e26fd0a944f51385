package geom

import (
	"fmt"
	"math"
)

// A Triangle in the plane, defined by its three vertices.
type Triangle struct {
	P1 Point
	P2 Point
	P3 Point
}

// NewTriangle returns the triangle with the given vertices.
func NewTriangle(p1, p2, p3 Point) Triangle {
	return Triangle{p1, p2, p3}
}

// Translate returns the triangle shifted by (dx, dy), applied to each vertex.
func (t Triangle) Translate(dx, dy float64) Triangle {
	return Triangle{
		t.P1.Translate(dx, dy),
		t.P2.Translate(dx, dy),
		t.P3.Translate(dx, dy),
	}
}

// Scale returns the triangle scaled by the factor k about the origin, applied
// to each vertex.
func (t Triangle) Scale(k float64) Triangle {
	return t.ScaleAbout(k, Point{})
}

// ScaleAbout returns the triangle scaled by the factor k about the given
// center, applied to each vertex.
func (t Triangle) ScaleAbout(k float64, center Point) Triangle {
	return Triangle{
		t.P1.ScaleAbout(k, center),
		t.P2.ScaleAbout(k, center),
		t.P3.ScaleAbout(k, center),
	}
}

// Rotate returns the triangle rotated by theta radians counterclockwise about
// the origin, applied to each vertex.
func (t Triangle) Rotate(theta float64) Triangle {
	return t.RotateAbout(theta, Point{})
}

// RotateAbout returns the triangle rotated by theta radians counterclockwise
// about the given center, applied to each vertex.
func (t Triangle) RotateAbout(theta float64, center Point) Triangle {
	return Triangle{
		t.P1.RotateAbout(theta, center),
		t.P2.RotateAbout(theta, center),
		t.P3.RotateAbout(theta, center),
	}
}

// Area returns the area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs((t.P2.X-t.P1.X)*(t.P3.Y-t.P1.Y)-(t.P3.X-t.P1.X)*(t.P2.Y-t.P1.Y)) / 2
}

// String implements the Stringer interface.
func (t Triangle) String() string {
	return fmt.Sprintf("Triangle(%v, %v, %v)", t.P1, t.P2, t.P3)
}
