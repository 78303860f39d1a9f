package shapes

// Shape is the closed set of operands the dispatcher understands: Point,
// Line, Ray, Rectangle, Circle, Polyline, Polygon and Shapes.
type Shape interface {
	BoundingBox() Rectangle

	// This is a dummy method that keeps the set closed. Types outside this
	// package cannot implement it, so every switch over a Shape can treat
	// its default branch as a caller bug.
	shapeTypeHint()
}

// Shape types enumerated here with type hint
func (Point) shapeTypeHint()     {}
func (Line) shapeTypeHint()      {}
func (Ray) shapeTypeHint()       {}
func (Rectangle) shapeTypeHint() {}
func (Circle) shapeTypeHint()    {}
func (Polyline) shapeTypeHint()  {}
func (Polygon) shapeTypeHint()   {}
func (Shapes) shapeTypeHint()    {}

// Shapes is a list operand. Intersecting against it intersects every
// element and merges the results.
type Shapes []Shape

// BoundingBox is the union of the element boxes. Nil elements are skipped.
func (s Shapes) BoundingBox() Rectangle {
	r := NewRectangleFromPoints()
	for _, shape := range s {
		if shape == nil {
			continue
		}
		r = r.Union(shape.BoundingBox())
	}
	return r
}
