// A 2D intersection and containment kernel for Go.
//
// This package finds where lines, rays and polylines cross points, boxes,
// circles, polylines and polygons, classifies points against closed
// boundaries, and combines closed regions with boolean operations.
//
// The functions here use the process-wide default tolerance. Use the shapes
// package directly to pass a tolerance explicitly.
package shapetypes

import (
	"github.com/deardanieldavis/shapetypes-sub000/shapes"
	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
	"github.com/pkg/errors"
)

type Point = shapes.Point
type Vector = shapes.Vector
type Interval = shapes.Interval
type Rectangle = shapes.Rectangle
type Line = shapes.Line
type Ray = shapes.Ray
type Circle = shapes.Circle
type Polyline = shapes.Polyline
type Polygon = shapes.Polygon
type Shape = shapes.Shape
type Shapes = shapes.Shapes
type Range = shapes.Range
type Containment = shapes.Containment

const (
	RangeBoth            = shapes.RangeBoth
	RangePositive        = shapes.RangePositive
	RangePositiveAndZero = shapes.RangePositiveAndZero
)

const (
	Undefined  = shapes.Undefined
	Outside    = shapes.Outside
	Inside     = shapes.Inside
	Coincident = shapes.Coincident
)

var (
	ErrNotClosed         = shapes.ErrNotClosed
	ErrNonPositiveRadius = shapes.ErrNonPositiveRadius
	ErrUnsupportedShape  = shapes.ErrUnsupportedShape
	ErrTooFewPoints      = shapes.ErrTooFewPoints
)

func intersector() shapes.Intersector {
	return shapes.NewIntersector(tolerance.Default())
}

// IntersectLine returns the ascending parameters in [0,1] at which l meets s.
func IntersectLine(l Line, s Shape) ([]float64, error) {
	return intersector().Line(l, s)
}

// IntersectRay returns the ascending ray parameters, filtered by rng, at
// which r meets s.
func IntersectRay(r Ray, rng Range, s Shape) ([]float64, error) {
	return intersector().Ray(r, rng, s)
}

// IntersectPolyline returns the ascending polyline parameters at which p
// meets s. The integer part of each is a segment index.
func IntersectPolyline(p Polyline, s Shape) ([]float64, error) {
	return intersector().Polyline(p, s)
}

// Contains classifies pt against a closed boundary: a closed Polyline,
// Polygon, Rectangle or Circle.
func Contains(boundary Shape, pt Point) (Containment, error) {
	tol := tolerance.Default()
	switch b := boundary.(type) {
	case Polyline:
		return b.Contains(pt, tol)
	case Polygon:
		return b.Contains(pt, tol)
	case Rectangle:
		return b.Outline().Contains(pt, tol)
	case Circle:
		return b.Contains(pt, tol), nil
	}
	return Undefined, errors.Wrapf(ErrUnsupportedShape, "containment in %T", boundary)
}

// FromRings rebuilds a closed Polyline (one ring) or Polygon (several) from
// coordinate rings.
func FromRings(rings [][]Point) (Shape, error) {
	return shapes.FromRings(rings, tolerance.Default())
}

func Union(a, b Shape) ([]Shape, error) {
	return shapes.Union(a, b, tolerance.Default())
}

func Intersection(a, b Shape) ([]Shape, error) {
	return shapes.Intersection(a, b, tolerance.Default())
}

func Difference(a, b Shape) ([]Shape, error) {
	return shapes.Difference(a, b, tolerance.Default())
}

func XOr(a, b Shape) ([]Shape, error) {
	return shapes.XOr(a, b, tolerance.Default())
}
