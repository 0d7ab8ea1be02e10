package shapes

import "github.com/osuushi/collide/advanced"

// Diamonds is a set of small convex shapes around the origin, several of which
// overlap.
func Diamonds() []advanced.Polygon {
	return []advanced.Polygon{
		advanced.PolygonOf([2]float64{2, 0}, [2]float64{4, 2}, [2]float64{2, 4}, [2]float64{0, 2}),
		advanced.PolygonOf([2]float64{6, 0}, [2]float64{8, 2}, [2]float64{7, 3}, [2]float64{5, 1}),
		advanced.PolygonOf([2]float64{3, 2}, [2]float64{4, 3}, [2]float64{4, 6}, [2]float64{3, 6}),
		advanced.PolygonOf([2]float64{6, 2}, [2]float64{6, 4.5}, [2]float64{3.5, 4.5}),
		advanced.PolygonOf([2]float64{0, 2}, [2]float64{2, 4}, [2]float64{1, 5}, [2]float64{-1, 3}),
	}
}

// Stairs has a concave zigzag polygon, a triangle above it, and a bar that
// cuts through its left side.
func Stairs() []advanced.Polygon {
	return []advanced.Polygon{
		advanced.PolygonOf(
			[2]float64{0, 2}, [2]float64{2, 4}, [2]float64{-1, 4}, [2]float64{-1, 6},
			[2]float64{1, 7}, [2]float64{0, 8}, [2]float64{-2, 6}, [2]float64{-3, 3},
		),
		advanced.PolygonOf([2]float64{0.5, 5}, [2]float64{4, 5}, [2]float64{4, 9}),
		advanced.PolygonOf([2]float64{-2, 4}, [2]float64{-2, 9}, [2]float64{-3, 9}, [2]float64{-3, 4}),
	}
}

// Sample sets by name, for the command line tool.
func Samples() map[string][]advanced.Polygon {
	return map[string][]advanced.Polygon{
		"diamonds": Diamonds(),
		"stairs":   Stairs(),
	}
}
