package shapes

import (
	"math"

	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
)

// solve finds where p0+s*d0 meets p1+t*d1 by Cramer's rule. The denominator
// is the cross product of the directions; when it is exactly zero the lines
// are parallel, collinear ones included, and ok is false.
func solve(p0 Point, d0 Vector, p1 Point, d1 Vector) (s, t float64, ok bool) {
	denom := d0.Cross(d1)
	if denom == 0 {
		return 0, 0, false
	}
	diff := p1.Sub(p0)
	return diff.Cross(d1) / denom, diff.Cross(d0) / denom, true
}

// LineLine intersects two segments. With finite set, both parameters must lie
// in [0,1] widened by the distance tolerance so that touches at the ends
// count. Otherwise the segments are extended to infinite lines and any
// finite pair is accepted.
//
// Parallel and collinear segments never intersect, even when they overlap.
func LineLine(a, b Line, finite bool, tol tolerance.Tolerance) (intersects bool, ta, tb float64) {
	ta, tb, ok := solve(a.From, a.Direction(), b.From, b.Direction())
	if !ok || !isFinite(ta) || !isFinite(tb) {
		return false, 0, 0
	}
	if finite && !(tol.Within(ta, 0, 1) && tol.Within(tb, 0, 1)) {
		return false, 0, 0
	}
	return true, ta, tb
}

// RayLine intersects a ray with a segment. The segment parameter must lie in
// [0,1] (widened by the distance tolerance); the ray parameter must be
// admitted by rng.
func RayLine(r Ray, l Line, rng Range, tol tolerance.Tolerance) (intersects bool, tRay, tLine float64) {
	tRay, tLine, ok := solve(r.Origin, r.Direction, l.From, l.Direction())
	if !ok || !isFinite(tRay) || !isFinite(tLine) {
		return false, 0, 0
	}
	if !tol.Within(tLine, 0, 1) || !rng.Admits(tRay) {
		return false, 0, 0
	}
	return true, tRay, tLine
}

// RayRay intersects two rays, each parameter filtered by its own range.
func RayRay(a, b Ray, rngA, rngB Range) (intersects bool, ta, tb float64) {
	ta, tb, ok := solve(a.Origin, a.Direction, b.Origin, b.Direction)
	if !ok || !isFinite(ta) || !isFinite(tb) {
		return false, 0, 0
	}
	if !rngA.Admits(ta) || !rngB.Admits(tb) {
		return false, 0, 0
	}
	return true, ta, tb
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
