package dataset

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"

	"github.com/NotKing22/BigData-Project/internal/errors"
)

// Boundaries maps canonical region codes to their boundary geometry.
type Boundaries map[string]*geojson.Geometry

// LoadBoundaries reads a GeoJSON FeatureCollection of region boundaries
// and indexes the geometries by the feature's name property.
func LoadBoundaries(path string) (Boundaries, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(fmt.Sprintf("boundary file %s", path), err)
		}
		return nil, errors.Malformed(fmt.Sprintf("reading boundary file %s", path), err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, errors.Malformed(fmt.Sprintf("parsing boundary file %s", path), err)
	}
	if len(fc.Features) == 0 {
		return nil, errors.EmptySource(fmt.Sprintf("boundary file %s has no features", path), nil)
	}

	boundaries := make(Boundaries, len(fc.Features))
	for _, feature := range fc.Features {
		name, ok := feature.Properties["name"].(string)
		if !ok || name == "" {
			continue
		}
		boundaries[name] = geojson.NewGeometry(feature.Geometry)
	}

	return boundaries, nil
}
