// Package shapes is a 2D intersection and containment kernel. It defines
// immutable planar value types (points, segments, rays, boxes, circles,
// polylines and polygons) and the predicates that decide whether and where
// they meet.
//
// Every predicate takes a tolerance.Tolerance. Results are parameters on the
// first operand: [0,1] along a Line, the signed distance along a Ray, and
// segmentIndex+t along a Polyline.
package shapes

import (
	"math"

	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
)

// Point is a location in the plane. Equality is tolerance based.
type Point struct {
	X, Y float64
}

// Origin is the point (0, 0).
var Origin = Point{}

func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub gives the vector that takes q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y}
}

// VectorTo gives the vector that takes p to q.
func (p Point) VectorTo(q Point) Vector {
	return q.Sub(p)
}

func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Equals reports whether p and q are within the distance tolerance of each
// other.
func (p Point) Equals(q Point, tol tolerance.Tolerance) bool {
	return p.DistanceTo(q) <= tol.Distance
}

func (p Point) BoundingBox() Rectangle {
	return Rectangle{X: Interval{p.X, p.X}, Y: Interval{p.Y, p.Y}}
}

// Vector is a direction and magnitude. Unlike Point it has no position.
type Vector struct {
	X, Y float64
}

var (
	XAxis = Vector{1, 0}
	YAxis = Vector{0, 1}
)

func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

func (v Vector) Scale(f float64) Vector {
	return Vector{v.X * f, v.Y * f}
}

func (v Vector) Reverse() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross is the z component of the 3D cross product (the perp-dot product).
// It is zero exactly when v and w are parallel.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Perpendicular rotates v a quarter turn counter-clockwise.
func (v Vector) Perpendicular() Vector {
	return Vector{-v.Y, v.X}
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unitize scales v to length one. The zero vector stays zero.
func (v Vector) Unitize() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector{v.X / l, v.Y / l}
}

// SignedAngle is the counter-clockwise angle from v to w, in (-π, π].
func (v Vector) SignedAngle(w Vector) float64 {
	return math.Atan2(v.Cross(w), v.Dot(w))
}

// IsParallelTo reports whether v and w point along the same line, in either
// direction, within the angular tolerance. Zero vectors are never parallel.
func (v Vector) IsParallelTo(w Vector, tol tolerance.Tolerance) bool {
	if v.Length() == 0 || w.Length() == 0 {
		return false
	}
	a := math.Abs(v.SignedAngle(w))
	return a <= tol.Angle || math.Pi-a <= tol.Angle
}

// IsPerpendicularTo reports whether v and w meet at a right angle within the
// angular tolerance. Zero vectors are never perpendicular.
func (v Vector) IsPerpendicularTo(w Vector, tol tolerance.Tolerance) bool {
	if v.Length() == 0 || w.Length() == 0 {
		return false
	}
	return math.Abs(math.Abs(v.SignedAngle(w))-math.Pi/2) <= tol.Angle
}
