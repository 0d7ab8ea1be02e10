// Package shapes reads polygons from the input formats the command line tool
// accepts, and holds the sample shapes.
package shapes

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/collide/advanced"
	"github.com/pkg/errors"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("collide:shapes")

func init() {
	logging.SetLevel(logging.WARNING, "collide:shapes")
}

// Read polygons from text. Each line is a point in the form "x y", with each
// polygon separated by an extra newline.
func ReadText(in io.Reader) ([]advanced.Polygon, error) {
	polygons := []advanced.Polygon{}
	scanner := bufio.NewScanner(in)
	points := []advanced.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, advanced.Polygon{Points: points})
				points = []advanced.Point{}
			}
			continue
		}

		point, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, advanced.Polygon{Points: points})
	}
	return polygons, nil
}

func parsePoint(fields []string) (advanced.Point, error) {
	if len(fields) != 2 {
		return advanced.Point{}, errors.Errorf("expected 2 coordinates, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", fields[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}
