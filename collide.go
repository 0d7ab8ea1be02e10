// Polygon collision for Go.
//
// This package reports whether two simple polygons overlap, by looking for an
// edge of one polygon that crosses an edge of the other. A cheap bounding box
// test rejects far apart polygons first.
//
// Only boundaries are compared. A polygon lying entirely inside another does
// not collide with it. See the advanced package for the segment level
// operations and the knobs on Collider.
package collide

import "github.com/osuushi/collide/advanced"

type Point = advanced.Point
type Segment = advanced.Segment
type Polygon = advanced.Polygon
type Collider = advanced.Collider

type InvalidInputError = advanced.InvalidInputError
type DegenerateSegmentError = advanced.DegenerateSegmentError

// Check whether two polygons, given as point lists, collide.
//
// Each polygon needs at least three points, in boundary order. Do not repeat
// the first point at the end; the boundary is closed implicitly. Fewer than
// three points gives an InvalidInputError.
func PolygonsCollide(polygon1, polygon2 []Point) (bool, error) {
	return advanced.Collide(Polygon{Points: polygon1}, Polygon{Points: polygon2})
}
