package advanced

import "fmt"

type LineKind int

const (
	Sloped LineKind = iota
	Vertical
	Horizontal
)

func (k LineKind) String() string {
	switch k {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "sloped"
	}
}

// The supporting line of a segment. Vertical lines have no slope form, so they
// only carry Const, which is their x value. Horizontal lines carry their y
// value in Const, and are also the sloped line y = 0x + Const, so A and B are
// filled in for them. Sloped lines are y = Ax + B.
type Line struct {
	Kind  LineKind
	Const float64
	A, B  float64
}

// Classify a segment by its supporting line. Endpoints are compared exactly.
//
// A zero length segment has equal x values, so it comes out as vertical. Use
// Segment.IsDegenerate to catch those before classifying if that matters.
func Classify(s Segment) Line {
	switch {
	case s.Start.X == s.End.X:
		return Line{Kind: Vertical, Const: s.Start.X}
	case s.Start.Y == s.End.Y:
		return Line{Kind: Horizontal, Const: s.Start.Y, B: s.Start.Y}
	}
	a := (s.Start.Y - s.End.Y) / (s.Start.X - s.End.X)
	b := s.Start.Y - a*s.Start.X
	return Line{Kind: Sloped, A: a, B: b}
}

// Solve for y at the given x. Meaningless for vertical lines.
func (l Line) SolveForY(x float64) float64 {
	return l.A*x + l.B
}

func (l Line) String() string {
	switch l.Kind {
	case Vertical:
		return fmt.Sprintf("x = %g", l.Const)
	case Horizontal:
		return fmt.Sprintf("y = %g", l.Const)
	default:
		return fmt.Sprintf("y = %gx + %g", l.A, l.B)
	}
}

func (s Segment) IsDegenerate() bool {
	return s.Start == s.End
}
