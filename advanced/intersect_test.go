package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{Point{x0, y0}, Point{x1, y1}}
}

func TestIntersect_CandidatePoint(t *testing.T) {
	testCases := []struct {
		name       string
		s1, s2     Segment
		intersects bool
		point      Point
	}{
		{"Cross", Seg(0, 0, 2, 2), Seg(0, 2, 2, 0), true, Point{1, 1}},
		{"LinesCrossOutside", Seg(0, 0, 1, 1), Seg(3, 0, 2, 1), false, Point{1.5, 1.5}},
		{"VerticalHorizontal", Seg(1, -1, 1, 1), Seg(0, 0, 2, 0), true, Point{1, 0}},
		{"HorizontalVertical", Seg(0, 0, 2, 0), Seg(1, -1, 1, 1), true, Point{1, 0}},
		{"VerticalMisses", Seg(3, -1, 3, 1), Seg(0, 0, 2, 0), false, Point{3, 0}},
		{"VerticalSloped", Seg(1, 0, 1, 5), Seg(0, 0, 2, 2), true, Point{1, 1}},
		{"SlopedHorizontal", Seg(0, 0, 2, 2), Seg(0, 1, 5, 1), true, Point{1, 1}},
		{"SlopedHorizontalMisses", Seg(0, 0, 2, 2), Seg(0, 3, 5, 3), false, Point{3, 3}},
		{"SharedEndpoint", Seg(2, 0, 2, 2), Seg(2, 0, 4, 0), true, Point{2, 0}},
		{"TouchingAtEnd", Seg(0, 0, 2, 2), Seg(2, 2, 4, 0), true, Point{2, 2}},
		{"Diamond", Seg(4, 2, 2, 4), Seg(3, 2, 4, 3), true, Point{3.5, 2.5}},
		// A zero length segment is classified as vertical, so its x is substituted
		// into the other line
		{"Degenerate", Seg(1, 1, 1, 1), Seg(0, 0, 2, 2), true, Point{1, 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Intersect(tc.s1, tc.s2)
			assert.Equal(t, tc.intersects, result.Intersects)
			require.NotNil(t, result.Point, "candidate point is reported even on a miss")
			assert.InDelta(t, tc.point.X, result.Point.X, 1e-12)
			assert.InDelta(t, tc.point.Y, result.Point.Y, 1e-12)

			swapped := Intersect(tc.s2, tc.s1)
			assert.Equal(t, tc.intersects, swapped.Intersects)
		})
	}
}

func TestIntersect_Parallel(t *testing.T) {
	// Distinct parallel lines never meet, and report no point
	for _, pair := range [][2]Segment{
		{Seg(0, 0, 2, 0), Seg(0, 1, 2, 1)},
		{Seg(0, 0, 0, 2), Seg(1, 0, 1, 2)},
		{Seg(0, 0, 2, 2), Seg(0, 1, 2, 3)},
		{Seg(0, 2, 2, 0), Seg(0, 3, 3, 0)},
	} {
		result := Intersect(pair[0], pair[1])
		assert.False(t, result.Intersects, "%v %v", pair[0], pair[1])
		assert.Nil(t, result.Point)
	}
}

// Segments with disjoint boxes never intersect, except for falling collinear
// segments (see TestCollinearSlopedOverlap).
func TestIntersect_DisjointBoxes(t *testing.T) {
	for _, pair := range [][2]Segment{
		{Seg(0, 0, 1, 1), Seg(2, 0, 3, 5)},
		{Seg(0, 0, 0, 1), Seg(1, 0, 2, 1)},
		{Seg(0, 0, 1, 0), Seg(0, 2, 1, 3)},
		{Seg(0, 0, 1, 0), Seg(2, 0, 3, 0)},
		{Seg(0, 0, 0, 1), Seg(0, 2, 0, 3)},
		{Seg(0, 0, 1, 1), Seg(2, 2, 3, 3)},
	} {
		require.False(t, pair[0].Bounds().Overlaps(pair[1].Bounds()))
		assert.False(t, Intersect(pair[0], pair[1]).Intersects, "%v %v", pair[0], pair[1])
		assert.False(t, Intersect(pair[1], pair[0]).Intersects, "%v %v", pair[1], pair[0])
	}
}

// The collinear rules compare particular extremes instead of testing interval
// overlap. These tables freeze what they actually answer.

func TestHorizontalOverlap(t *testing.T) {
	testCases := []struct {
		name     string
		s1, s2   Segment
		overlaps bool
	}{
		{"Staggered", Seg(0, 0, 2, 0), Seg(1, 0, 3, 0), true},
		{"StaggeredSwapped", Seg(1, 0, 3, 0), Seg(0, 0, 2, 0), true},
		{"Contains", Seg(0, 0, 4, 0), Seg(1, 0, 2, 0), true},
		{"ContainedWithin", Seg(1, 0, 2, 0), Seg(0, 0, 4, 0), true},
		{"ReversedDirection", Seg(2, 0, 0, 0), Seg(3, 0, 1, 0), true},
		{"SharedEndpoint", Seg(0, 0, 2, 0), Seg(2, 0, 4, 0), false},
		{"Identical", Seg(0, 0, 2, 0), Seg(0, 0, 2, 0), false},
		{"SameRightEnd", Seg(0, 0, 2, 0), Seg(1, 0, 2, 0), false},
		{"Apart", Seg(0, 0, 1, 0), Seg(2, 0, 3, 0), false},
		{"DifferentLines", Seg(0, 0, 2, 0), Seg(1, 1, 3, 1), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Intersect(tc.s1, tc.s2)
			assert.Equal(t, tc.overlaps, result.Intersects)
			assert.Nil(t, result.Point)
			assert.Equal(t, tc.overlaps, Intersect(tc.s2, tc.s1).Intersects)
		})
	}
}

func TestVerticalOverlap(t *testing.T) {
	testCases := []struct {
		name     string
		s1, s2   Segment
		overlaps bool
	}{
		{"Staggered", Seg(0, 0, 0, 2), Seg(0, 1, 0, 3), true},
		{"StaggeredSwapped", Seg(0, 1, 0, 3), Seg(0, 0, 0, 2), true},
		{"Contains", Seg(0, 0, 0, 4), Seg(0, 1, 0, 2), true},
		{"ContainedWithin", Seg(0, 1, 0, 2), Seg(0, 0, 0, 4), true},
		{"SharedEndpoint", Seg(0, 0, 0, 2), Seg(0, 2, 0, 4), false},
		{"Identical", Seg(1, 0, 1, 4), Seg(1, 0, 1, 4), false},
		{"SameTop", Seg(0, 0, 0, 2), Seg(0, 1, 0, 2), false},
		{"Apart", Seg(0, 0, 0, 1), Seg(0, 2, 0, 3), false},
		{"DifferentLines", Seg(1, 0, 1, 2), Seg(2, 0, 2, 2), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Intersect(tc.s1, tc.s2)
			assert.Equal(t, tc.overlaps, result.Intersects)
			assert.Nil(t, result.Point)
			assert.Equal(t, tc.overlaps, Intersect(tc.s2, tc.s1).Intersects)
		})
	}
}

func TestCollinearSlopedOverlap(t *testing.T) {
	testCases := []struct {
		name     string
		s1, s2   Segment
		overlaps bool
	}{
		{"RisingStaggered", Seg(0, 0, 2, 2), Seg(1, 1, 3, 3), true},
		{"RisingStaggeredSwapped", Seg(1, 1, 3, 3), Seg(0, 0, 2, 2), true},
		{"RisingContains", Seg(0, 0, 4, 4), Seg(1, 1, 2, 2), true},
		{"RisingApart", Seg(0, 0, 1, 1), Seg(2, 2, 3, 3), false},
		{"RisingIdentical", Seg(0, 0, 2, 2), Seg(0, 0, 2, 2), false},
		{"FallingStaggered", Seg(0, 2, 2, 0), Seg(1, 1, 3, -1), true},
		{"FallingStaggeredSwapped", Seg(1, 1, 3, -1), Seg(0, 2, 2, 0), true},
		{"FallingContains", Seg(0, 0, 4, -4), Seg(1, -1, 2, -2), true},
		{"FallingIdentical", Seg(0, 2, 2, 0), Seg(0, 2, 2, 0), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Intersect(tc.s1, tc.s2)
			assert.Equal(t, tc.overlaps, result.Intersects)
			assert.Nil(t, result.Point)
		})
	}

	t.Run("FallingApartDependsOnOrder", func(t *testing.T) {
		near, far := Seg(0, 0, 1, -1), Seg(5, -5, 6, -6)
		assert.False(t, Intersect(near, far).Intersects)
		assert.True(t, Intersect(far, near).Intersects)
	})
}

// A segment tested against itself takes the collinear path, so there is never
// a point, and the answer depends on which rule applies.
func TestIntersect_Self(t *testing.T) {
	for _, tc := range []struct {
		name       string
		segment    Segment
		intersects bool
	}{
		{"Rising", Seg(0, 0, 2, 2), false},
		{"Falling", Seg(0, 2, 2, 0), true},
		{"Horizontal", Seg(0, 0, 4, 0), false},
		{"Vertical", Seg(1, 0, 1, 4), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result := Intersect(tc.segment, tc.segment)
			assert.Equal(t, tc.intersects, result.Intersects)
			assert.Nil(t, result.Point)
		})
	}
}

func TestIntersect_Epsilon(t *testing.T) {
	// The second segment's slope is a hair off from the first's, so exact
	// comparison solves the line equations for a crossing point instead of
	// treating the lines as the same
	s1 := Seg(0, 0, 2, 2)
	s2 := Seg(1, 1, 3, 3+1e-9)

	exact := Intersect(s1, s2)
	assert.NotNil(t, exact.Point)

	loose := Collider{Epsilon: 1e-6}.Intersect(s1, s2)
	assert.True(t, loose.Intersects)
	assert.Nil(t, loose.Point, "treated as collinear")

	// Axis aligned constants go through the same comparison
	assert.False(t, Intersect(Seg(0, 0, 2, 0), Seg(1, 1e-9, 3, 1e-9)).Intersects)
	assert.True(t, Collider{Epsilon: 1e-6}.Intersect(Seg(0, 0, 2, 0), Seg(1, 1e-9, 3, 1e-9)).Intersects)
}

func TestIntersectionResultString(t *testing.T) {
	assert.Equal(t, "miss", IntersectionResult{}.String())
	assert.Equal(t, "hit", IntersectionResult{Intersects: true}.String())
	assert.Equal(t, "hit at (1, 2)", IntersectionResult{Intersects: true, Point: &Point{1, 2}}.String())
	// Log files get the same text as the terminal
	assert.Equal(t, "miss at (0.5, -3)", IntersectionResult{Point: &Point{0.5, -3}}.String())
}
