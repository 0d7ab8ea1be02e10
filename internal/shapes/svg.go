package shapes

import (
	"io"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/collide/advanced"
	"github.com/pkg/errors"
)

// Read every <polygon> element of an SVG document, in document order. This is
// not a full SVG reader: transforms, paths and other shapes are ignored.
func ReadSVG(in io.Reader) ([]advanced.Polygon, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	elements := rootEl.FindAll("polygon")
	if len(elements) == 0 {
		return nil, errors.New("no polygons found in svg")
	}
	polygons := make([]advanced.Polygon, 0, len(elements))
	for i, el := range elements {
		points, err := parseSVGPoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, advanced.Polygon{Points: points})
	}
	return polygons, nil
}

// The points attribute is a list of numbers separated by whitespace and/or
// commas, taken in x, y pairs.
func parseSVGPoints(attr string) ([]advanced.Point, error) {
	numbers := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(numbers)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attr)
	}
	points := make([]advanced.Point, 0, len(numbers)/2)
	for i := 0; i < len(numbers); i += 2 {
		point, err := parsePoint(numbers[i : i+2])
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}
