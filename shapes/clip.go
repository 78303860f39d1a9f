package shapes

import "math"

// LineRectangle clips a segment against a box with the Liang–Barsky
// algorithm. The returned interval is the part of [0,1] that lies in the
// box. Its ends are not necessarily boundary crossings: a segment wholly
// inside the box comes back as [0,1].
func LineRectangle(l Line, r Rectangle) (intersects bool, span Interval) {
	if !l.BoundingBox().Overlaps(r) {
		return false, Interval{}
	}
	lo, hi, ok := clip(l.From, l.Direction(), r, 0, 1)
	if !ok {
		return false, Interval{}
	}
	return true, Interval{lo, hi}
}

// RayRectangle clips a ray against a box. The interval is unbounded on a
// side only if the box is; otherwise it is the stretch of ray parameters
// inside the box. When rng excludes negative parameters the lower bound is
// pinned to the origin.
func RayRectangle(ray Ray, r Rectangle, rng Range) (intersects bool, span Interval) {
	d := ray.Direction
	if d.X == 0 && d.Y == 0 {
		return false, Interval{}
	}
	lo := math.Inf(-1)
	if rng.excludesNegative() {
		lo = 0
	}
	lo, hi, ok := clip(ray.Origin, d, r, lo, math.Inf(1))
	if !ok || !rng.Admits(hi) {
		return false, Interval{}
	}
	return true, Interval{lo, hi}
}

// clip narrows [lo, hi] to the parameters of o+t*d that lie inside r. Each
// slab boundary gives a constraint t >= q/p when p < 0 and t <= q/p when
// p > 0. A zero p means the line runs parallel to that boundary, and it is
// rejected outright if the origin is already outside the slab.
func clip(o Point, d Vector, r Rectangle, lo, hi float64) (float64, float64, bool) {
	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{o.X - r.X.Min, r.X.Max - o.X, o.Y - r.Y.Min, r.Y.Max - o.Y}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			lo = math.Max(lo, t)
		} else {
			hi = math.Min(hi, t)
		}
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}
