package advanced

import "math"

// Componentwise min and max over the points. There is no box around nothing,
// so an empty sequence is rejected.
func BoundsOf(points []Point) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, invalidInputf("cannot compute bounding box of an empty point sequence")
	}
	first := points[0]
	box := BoundingBox{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
	for _, p := range points[1:] {
		box.MinX = math.Min(box.MinX, p.X)
		box.MinY = math.Min(box.MinY, p.Y)
		box.MaxX = math.Max(box.MaxX, p.X)
		box.MaxY = math.Max(box.MaxY, p.Y)
	}
	return box, nil
}

func (s Segment) Bounds() BoundingBox {
	return BoundingBox{
		MinX: math.Min(s.Start.X, s.End.X),
		MinY: math.Min(s.Start.Y, s.End.Y),
		MaxX: math.Max(s.Start.X, s.End.X),
		MaxY: math.Max(s.Start.Y, s.End.Y),
	}
}

func (poly Polygon) Bounds() (BoundingBox, error) {
	return BoundsOf(poly.Points)
}

// Overlaps is the prune test. Boxes that only touch along a side or corner
// still overlap.
func (b BoundingBox) Overlaps(other BoundingBox) bool {
	return !(b.MaxX < other.MinX ||
		b.MaxY < other.MinY ||
		b.MinY > other.MaxY ||
		b.MinX > other.MaxX)
}

// Inclusive on all four sides.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX &&
		p.Y >= b.MinY && p.Y <= b.MaxY
}
