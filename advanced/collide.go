package advanced

import (
	"github.com/osuushi/collide/dbg"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("collide:advanced")

// Quiet unless the caller sets up logging. Installing a backend resets this.
func init() {
	logging.SetLevel(logging.WARNING, "collide:advanced")
}

// A Collider decides whether polygons overlap by looking for a pair of
// crossing edges, one from each polygon. The zero value compares floats
// exactly and treats zero length edges as vertical. It also leaves each
// polygon's closing edge out of the pairwise test.
//
// Colliders hold no state between calls, and are safe for concurrent use.
type Collider struct {
	// Tolerance for comparing line constants, slopes and intercepts. Zero means
	// exact comparison.
	Epsilon float64

	// By default, the closing edge of each polygon (last point back to first) is
	// built but never tested against the other polygon. Set this to test every
	// edge.
	TestClosingEdges bool

	// Fail with a DegenerateSegmentError when a polygon has a zero length edge,
	// instead of treating it as a vertical segment.
	RejectDegenerate bool
}

// The first pair of crossing edges found, by index into each polygon's edges.
type Crossing struct {
	FirstIndex, SecondIndex int
	FirstEdge, SecondEdge   Segment
	Result                  IntersectionResult
}

// Collide two polygons with the default collider.
func Collide(p1, p2 Polygon) (bool, error) {
	return Collider{}.Collide(p1, p2)
}

func (c Collider) Collide(p1, p2 Polygon) (bool, error) {
	_, found, err := c.FirstCrossing(p1, p2)
	return found, err
}

// Find the first pair of crossing edges, scanning the first polygon's edges in
// the outer loop. Returns false without testing any edges if the bounding
// boxes are disjoint.
//
// All input errors are reported before the pairwise test starts, including
// for polygons whose boxes are disjoint.
func (c Collider) FirstCrossing(p1, p2 Polygon) (Crossing, bool, error) {
	if err := p1.validate(); err != nil {
		return Crossing{}, false, err
	}
	if err := p2.validate(); err != nil {
		return Crossing{}, false, err
	}
	edges1, err := c.edges(p1)
	if err != nil {
		return Crossing{}, false, err
	}
	edges2, err := c.edges(p2)
	if err != nil {
		return Crossing{}, false, err
	}

	box1, err := p1.Bounds()
	if err != nil {
		return Crossing{}, false, err
	}
	box2, err := p2.Bounds()
	if err != nil {
		return Crossing{}, false, err
	}
	if !box1.Overlaps(box2) {
		log.Debugf("Pruned: bounding boxes %+v and %+v are disjoint", box1, box2)
		return Crossing{}, false, nil
	}

	count1, count2 := c.testedEdgeCount(len(edges1)), c.testedEdgeCount(len(edges2))
	for i := 0; i < count1; i++ {
		for j := 0; j < count2; j++ {
			result := c.Intersect(edges1[i], edges2[j])
			if !result.Intersects {
				continue
			}
			if log.IsEnabledFor(logging.DEBUG) {
				log.Debugf("Edge %d (%s) crosses edge %d (%s): %s",
					i, dbg.Name(edges1[i]), j, dbg.Name(edges2[j]), result)
			}
			return Crossing{
				FirstIndex:  i,
				SecondIndex: j,
				FirstEdge:   edges1[i],
				SecondEdge:  edges2[j],
				Result:      result,
			}, true, nil
		}
	}
	return Crossing{}, false, nil
}

// The closing edge is the last one, so leaving it out just shortens the loop.
func (c Collider) testedEdgeCount(edgeCount int) int {
	if c.TestClosingEdges {
		return edgeCount
	}
	return edgeCount - 1
}
