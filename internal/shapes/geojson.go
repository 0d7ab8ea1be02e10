package shapes

import (
	"github.com/osuushi/collide/advanced"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Read the polygons of a GeoJSON feature collection. Each Polygon feature
// gives one polygon and each MultiPolygon feature gives one per member. Only
// outer rings are used, since holes play no part in edge crossing.
//
// GeoJSON rings repeat their first position at the end. That position is
// dropped, because polygons here close implicitly.
func ReadGeoJSON(data []byte) ([]advanced.Polygon, error) {
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing geojson")
	}

	polygons := []advanced.Polygon{}
	for i, feature := range collection.Features {
		switch geometry := feature.Geometry.(type) {
		case orb.Polygon:
			if len(geometry) == 0 {
				return nil, errors.Errorf("feature %d: polygon has no rings", i)
			}
			polygons = append(polygons, fromRing(geometry[0]))
		case orb.MultiPolygon:
			for _, polygon := range geometry {
				if len(polygon) == 0 {
					return nil, errors.Errorf("feature %d: polygon has no rings", i)
				}
				polygons = append(polygons, fromRing(polygon[0]))
			}
		default:
			log.Warningf("Skipping feature %d: unsupported geometry %T", i, feature.Geometry)
		}
	}
	return polygons, nil
}

func fromRing(ring orb.Ring) advanced.Polygon {
	if ring.Closed() {
		ring = ring[:len(ring)-1]
	}
	points := make([]advanced.Point, len(ring))
	for i, position := range ring {
		points[i] = advanced.Point{X: position.X(), Y: position.Y()}
	}
	return advanced.Polygon{Points: points}
}
