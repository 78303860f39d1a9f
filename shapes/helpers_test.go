package shapes

import "math"

// square is a closed counter-clockwise ring around the box.
func square(x0, y0, x1, y1 float64) Polyline {
	return NewRectangle(x0, y0, x1, y1).Outline()
}

// star is a closed, counter-clockwise star with n points.
func star(cx, cy, outer, inner float64, n int) Polyline {
	pts := make([]Point, 0, 2*n+1)
	for i := 0; i < 2*n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi/2 + float64(i)*math.Pi/float64(n)
		pts = append(pts, Point{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return NewPolyline(append(pts, pts[0])...)
}

func area(s Shape) float64 {
	switch s := s.(type) {
	case Polygon:
		return s.Area()
	case Polyline:
		return math.Abs(s.SignedArea())
	case Shapes:
		var a float64
		for _, e := range s {
			a += area(e)
		}
		return a
	}
	return 0
}
