package advanced_test

import (
	"embed"
	"log"

	"github.com/osuushi/collide/advanced"
	"github.com/osuushi/collide/internal/shapes"
)

// Fixtures are SVG files in the fixtures/ directory, available by name sans
// extension. Every <polygon> element in a fixture becomes a polygon, in
// document order. If anything goes wrong, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []advanced.Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygons, err := shapes.ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return polygons
}

// Load a fixture that holds exactly two polygons.
func LoadPair(name string) (advanced.Polygon, advanced.Polygon) {
	polygons := LoadFixture(name)
	if len(polygons) != 2 {
		log.Fatalf("Fixture %q has %d polygons, expected 2", name, len(polygons))
	}
	return polygons[0], polygons[1]
}
