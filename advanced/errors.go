package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Input that the collision test cannot work with: too few points for a
// polygon, or no points at all for a bounding box. Errors are returned wrapped
// with a stack trace, so match them with errors.As.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// An edge whose endpoints coincide. Only reported when the collider rejects
// degenerate edges. Otherwise such edges are classified as vertical.
type DegenerateSegmentError struct {
	Index   int
	Segment Segment
}

func (e *DegenerateSegmentError) Error() string {
	return fmt.Sprintf("degenerate segment: edge %d has both endpoints at (%g, %g)",
		e.Index, e.Segment.Start.X, e.Segment.Start.Y)
}

func invalidInputf(format string, args ...interface{}) error {
	return errors.WithStack(&InvalidInputError{Reason: fmt.Sprintf(format, args...)})
}
