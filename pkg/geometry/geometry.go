// Package geometry provides the small geometric primitives used by the
// deterioration mask and overlay math.
package geometry

import "math"

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Ellipse is an axis-aligned ellipse described by its center and radii.
type Ellipse struct {
	Center Point2D
	RX, RY float64
}

// NormDist returns the normalized elliptical distance of a point from the
// center: 0 at the center, 1 on the boundary, >1 outside.
func (e Ellipse) NormDist(p Point2D) float64 {
	dx := (p.X - e.Center.X) / e.RX
	dy := (p.Y - e.Center.Y) / e.RY
	return math.Sqrt(dx*dx + dy*dy)
}

// Smoothstep performs Hermite interpolation between edge0 and edge1,
// clamping outside the range.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
