package advanced

import "github.com/pkg/errors"

// Minimum number of points accepted by the collision test
const MinPolygonPoints = 3

// Chop the polygon into its boundary edges, in traversal order. Edge i runs
// from point i to point i+1, and the last edge closes the boundary by running
// from the last point back to the first, so there are exactly as many edges as
// points.
func (poly Polygon) Edges() ([]Segment, error) {
	n := len(poly.Points)
	if n < 2 {
		return nil, invalidInputf("need at least 2 points to form edges, got %d", n)
	}
	edges := make([]Segment, n)
	for i, point := range poly.Points {
		edges[i] = Segment{Start: point, End: poly.Points[CircularIndex(i+1, n)]}
	}
	return edges, nil
}

// The closing edge, from the last point back to the first.
func (poly Polygon) ClosingEdge() Segment {
	return Segment{Start: poly.Points[len(poly.Points)-1], End: poly.Points[0]}
}

func (poly Polygon) validate() error {
	if len(poly.Points) < MinPolygonPoints {
		return invalidInputf("polygon needs at least %d points, got %d", MinPolygonPoints, len(poly.Points))
	}
	return nil
}

// Edges, checked for zero length edges if the collider asks for it.
func (c Collider) edges(poly Polygon) ([]Segment, error) {
	edges, err := poly.Edges()
	if err != nil {
		return nil, err
	}
	if !c.RejectDegenerate {
		return edges, nil
	}
	for i, edge := range edges {
		if edge.IsDegenerate() {
			return nil, errors.WithStack(&DegenerateSegmentError{Index: i, Segment: edge})
		}
	}
	return edges, nil
}
