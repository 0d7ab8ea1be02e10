package advanced

type Point struct {
	X float64
	Y float64
}

// Segments are directed. Start and End keep the traversal order of the
// polygon boundary they were cut from.
type Segment struct {
	Start Point
	End   Point
}

// A polygon is implicitly closed: the last point connects back to the first,
// and the first point is never repeated at the end.
type Polygon struct {
	Points []Point
}

type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Build a polygon from literal coordinate pairs.
func PolygonOf(coords ...[2]float64) Polygon {
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = Point{X: c[0], Y: c[1]}
	}
	return Polygon{Points: points}
}
