package advanced

import "fmt"

// Point is only set when the answer came from solving the two line equations
// for a candidate point. It is set even when that point falls outside one of
// the segments, in which case Intersects is false. Collinear and parallel
// cases never produce a point.
type IntersectionResult struct {
	Intersects bool
	Point      *Point
}

func (r IntersectionResult) String() string {
	verdict := "miss"
	if r.Intersects {
		verdict = "hit"
	}
	if r.Point == nil {
		return verdict
	}
	return fmt.Sprintf("%s at (%g, %g)", verdict, r.Point.X, r.Point.Y)
}

// Intersect two segments with exact comparisons.
func Intersect(s1, s2 Segment) IntersectionResult {
	return Collider{}.Intersect(s1, s2)
}

// Intersect two segments. The collider's Epsilon applies to the comparisons of
// line constants, slopes and intercepts, and nothing else.
func (c Collider) Intersect(s1, s2 Segment) IntersectionResult {
	line1, line2 := Classify(s1), Classify(s2)
	box1, box2 := s1.Bounds(), s2.Bounds()

	// Two verticals or two horizontals are either on different lines, or on the
	// same line where only the extents matter.
	if line1.Kind == line2.Kind && line1.Kind != Sloped {
		if !equalWithin(line1.Const, line2.Const, c.Epsilon) {
			return IntersectionResult{}
		}
		if line1.Kind == Horizontal {
			return IntersectionResult{Intersects: horizontalOverlap(box1, box2)}
		}
		return IntersectionResult{Intersects: verticalOverlap(box1, box2)}
	}

	var candidate Point
	switch {
	case line1.Kind == Vertical:
		candidate = Point{X: line1.Const, Y: line2.SolveForY(line1.Const)}
	case line2.Kind == Vertical:
		candidate = Point{X: line2.Const, Y: line1.SolveForY(line2.Const)}
	case equalWithin(line1.A, line2.A, c.Epsilon):
		if !equalWithin(line1.B, line2.B, c.Epsilon) {
			return IntersectionResult{}
		}
		return IntersectionResult{Intersects: collinearSlopedOverlap(line1.A, box1, box2)}
	default:
		x := (line2.B - line1.B) / (line1.A - line2.A)
		candidate = Point{X: x, Y: line1.SolveForY(x)}
	}

	return IntersectionResult{
		Intersects: box1.Contains(candidate) && box2.Contains(candidate),
		Point:      &candidate,
	}
}

// The overlap rules below decide collinear segments. They compare particular
// pairs of extremes rather than testing interval overlap, and their exact truth
// tables are pinned by tests. Segments that share only an endpoint, and
// segments with equal maxima (including identical segments), do not overlap
// under the axis aligned rules.

// Two horizontal segments on the same y.
func horizontalOverlap(b1, b2 BoundingBox) bool {
	return (b1.MaxX > b2.MinX && b1.MaxX < b2.MaxX) ||
		(b2.MaxX > b1.MinX && b1.MaxX > b2.MaxX)
}

// Two vertical segments on the same x.
func verticalOverlap(b1, b2 BoundingBox) bool {
	return (b1.MaxY > b2.MinY && b1.MaxY < b2.MaxY) ||
		(b1.MinY < b2.MaxY && b1.MaxY > b2.MaxY)
}

// Two sloped segments on the same line with slope a. Rising and falling lines
// use different extremes. The falling rule is not symmetric in its arguments.
func collinearSlopedOverlap(a float64, b1, b2 BoundingBox) bool {
	switch {
	case a > 0:
		return (b1.MaxX > b2.MinX && b2.MaxY > b1.MaxY) ||
			(b2.MaxX > b1.MinX && b2.MaxY < b1.MaxY)
	case a < 0:
		return (b1.MaxX > b2.MinX && b2.MaxY > b1.MinY) ||
			(b2.MaxX > b1.MinX && b2.MaxY > b1.MaxY)
	}
	return false
}
