package shapes

import "math"

// Polygon is a closed boundary with zero or more closed holes. Holes are
// expected not to overlap each other and to sit inside the boundary; this is
// not checked.
type Polygon struct {
	Boundary Polyline
	Holes    []Polyline
}

func NewPolygon(boundary Polyline, holes ...Polyline) Polygon {
	hs := make([]Polyline, len(holes))
	copy(hs, holes)
	return Polygon{Boundary: boundary, Holes: hs}
}

func (p Polygon) BoundingBox() Rectangle {
	return p.Boundary.BoundingBox()
}

// Area is the boundary area less the hole areas, whatever their winding.
func (p Polygon) Area() float64 {
	a := math.Abs(p.Boundary.SignedArea())
	for _, h := range p.Holes {
		a -= math.Abs(h.SignedArea())
	}
	return a
}

// Rings exports the boundary followed by each hole as explicitly closed
// coordinate rings.
func (p Polygon) Rings() [][]Point {
	rings := make([][]Point, 0, len(p.Holes)+1)
	rings = append(rings, p.Boundary.Ring())
	for _, h := range p.Holes {
		rings = append(rings, h.Ring())
	}
	return rings
}

// Edges lists the boundary and hole polylines.
func (p Polygon) Edges() []Polyline {
	return append([]Polyline{p.Boundary}, p.Holes...)
}
