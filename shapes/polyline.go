package shapes

import (
	"math"
	"sync"

	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
)

// Polyline is an ordered, immutable list of points joined by segments. It is
// closed when its first and last points coincide.
//
// The segment list, bounding box and length are derived on first use and
// shared by every copy of the value. Warm them with Segments before handing
// one instance to several goroutines.
type Polyline struct {
	points []Point
	cache  *polylineCache
}

type polylineCache struct {
	once     sync.Once
	segments []Line
	bounds   Rectangle
	length   float64
}

// NewPolyline copies points into a new polyline.
func NewPolyline(points ...Point) Polyline {
	pts := make([]Point, len(points))
	copy(pts, points)
	return Polyline{points: pts, cache: &polylineCache{}}
}

func (p Polyline) derived() *polylineCache {
	c := p.cache
	if c == nil {
		c = &polylineCache{}
	}
	c.once.Do(func() {
		c.bounds = NewRectangleFromPoints(p.points...)
		if len(p.points) < 2 {
			return
		}
		c.segments = make([]Line, len(p.points)-1)
		for i := range c.segments {
			c.segments[i] = Line{p.points[i], p.points[i+1]}
			c.length += c.segments[i].Length()
		}
	})
	return c
}

// Points returns a copy of the vertices.
func (p Polyline) Points() []Point {
	pts := make([]Point, len(p.points))
	copy(pts, p.points)
	return pts
}

func (p Polyline) PointCount() int {
	return len(p.points)
}

// SegmentCount is always PointCount()-1, or zero for fewer than two points.
func (p Polyline) SegmentCount() int {
	if len(p.points) < 2 {
		return 0
	}
	return len(p.points) - 1
}

// Segments returns the consecutive point pairs. The slice is shared and must
// not be modified.
func (p Polyline) Segments() []Line {
	return p.derived().segments
}

func (p Polyline) Segment(i int) Line {
	return p.derived().segments[i]
}

func (p Polyline) BoundingBox() Rectangle {
	return p.derived().bounds
}

func (p Polyline) Length() float64 {
	return p.derived().length
}

func (p Polyline) Start() Point {
	return p.points[0]
}

func (p Polyline) End() Point {
	return p.points[len(p.points)-1]
}

// IsClosed reports whether the polyline has at least three points and its
// ends coincide within the distance tolerance.
func (p Polyline) IsClosed(tol tolerance.Tolerance) bool {
	return len(p.points) > 2 && p.Start().Equals(p.End(), tol)
}

// PointAt evaluates the polyline at t in [0, SegmentCount()]. The integer
// part of t picks the segment and the fraction is the position along it.
// Values outside the domain extrapolate the first or last segment.
func (p Polyline) PointAt(t float64) Point {
	segments := p.Segments()
	if len(segments) == 0 {
		if len(p.points) == 0 {
			return Origin
		}
		return p.points[0]
	}
	i := int(math.Floor(t))
	if i < 0 {
		i = 0
	} else if i >= len(segments) {
		i = len(segments) - 1
	}
	return segments[i].PointAt(t - float64(i))
}

// ClosestParameter is the polyline parameter of the point nearest to pt.
func (p Polyline) ClosestParameter(pt Point) float64 {
	best := math.Inf(1)
	var bestT float64
	for i, seg := range p.Segments() {
		t := seg.ClosestParameter(pt)
		if d := seg.PointAt(t).DistanceTo(pt); d < best {
			best = d
			bestT = float64(i) + t
		}
	}
	return bestT
}

func (p Polyline) ClosestPoint(pt Point) Point {
	return p.PointAt(p.ClosestParameter(pt))
}

// DistanceTo is the shortest distance from pt to any segment.
func (p Polyline) DistanceTo(pt Point) float64 {
	if len(p.points) == 1 {
		return p.points[0].DistanceTo(pt)
	}
	return p.ClosestPoint(pt).DistanceTo(pt)
}

// SignedArea is positive for counter-clockwise rings and negative for
// clockwise ones. An open polyline is treated as if its ends were joined.
func (p Polyline) SignedArea() float64 {
	n := len(p.points)
	if n < 3 {
		return 0
	}
	var a float64
	for i := 0; i < n; i++ {
		j := CircularIndex(i+1, n)
		a += p.points[i].X*p.points[j].Y - p.points[j].X*p.points[i].Y
	}
	return a / 2
}

func (p Polyline) IsClockwise() bool {
	return p.SignedArea() < 0
}

func (p Polyline) Reverse() Polyline {
	pts := make([]Point, len(p.points))
	for i, pt := range p.points {
		pts[len(pts)-1-i] = pt
	}
	return Polyline{points: pts, cache: &polylineCache{}}
}

// RemoveCollinear drops duplicate vertices and interior vertices where the
// polyline carries on in the same direction, within the angular tolerance.
// The first and last points are always kept.
func (p Polyline) RemoveCollinear(tol tolerance.Tolerance) Polyline {
	if len(p.points) < 3 {
		return NewPolyline(p.points...)
	}
	kept := []Point{p.points[0]}
	for i := 1; i < len(p.points)-1; i++ {
		prev := kept[len(kept)-1]
		cur := p.points[i]
		if cur.Equals(prev, tol) {
			continue
		}
		in := cur.Sub(prev)
		out := p.points[i+1].Sub(cur)
		if in.IsParallelTo(out, tol) && in.Dot(out) > 0 {
			continue
		}
		kept = append(kept, cur)
	}
	kept = append(kept, p.End())
	return Polyline{points: kept, cache: &polylineCache{}}
}

// Ring exports the polyline as an explicitly closed coordinate ring: the
// first point is repeated at the end unless it is already there.
func (p Polyline) Ring() []Point {
	ring := p.Points()
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}

// CircularIndex treats a slice of length n as a ring buffer. Unlike the raw
// modulo operator it only gives non-negative values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
