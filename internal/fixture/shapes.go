package fixture

import (
	"math"

	"github.com/deardanieldavis/shapetypes-sub000/shapes"
)

// Some ad hoc fixtures.

// Star is a closed, counter-clockwise star with n points alternating
// between the two radii.
func Star(cx, cy, outerRadius, innerRadius float64, n int) shapes.Polyline {
	var points []shapes.Point
	for i := 0; i < 2*n; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := math.Pi * float64(i) / float64(n)
		points = append(points, shapes.Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)})
	}
	points = append(points, points[0])
	return shapes.NewPolyline(points...)
}

func SquareWithHole() shapes.Polygon {
	outer := shapes.NewRectangle(-5, -5, 5, 5).Outline()
	hole := shapes.NewRectangle(-2, -2, 2, 2).Outline().Reverse()
	return shapes.NewPolygon(outer, hole)
}

func StarOutline() shapes.Polygon {
	const filledOuterRadius = 10
	const filledInnerRadius = 5
	return shapes.NewPolygon(
		Star(0, 0, filledOuterRadius, filledInnerRadius, 5),
		Star(0, 0, filledOuterRadius-2, filledInnerRadius-2, 5).Reverse(),
	)
}

// Comb has many small holes, which exercises the per-hole box tests.
func Comb(holes int) shapes.Polygon {
	outer := shapes.NewRectangle(0, 0, float64(holes)*2+1, 3).Outline()
	hs := make([]shapes.Polyline, holes)
	for i := range hs {
		x := float64(i)*2 + 1
		hs[i] = shapes.NewRectangle(x, 1, x+1, 2).Outline().Reverse()
	}
	return shapes.NewPolygon(outer, hs...)
}
