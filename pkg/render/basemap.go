package render

import (
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	stkerrors "github.com/stationrank/stationrank/pkg/errors"
)

// Basemap is the background reference layer: the boundary polygons of one
// country (or all features when no country filter is given).
type Basemap struct {
	Polygons []orb.Polygon
}

// LoadBasemap reads a GeoJSON boundary dataset and keeps the features whose
// name property matches country. An empty country keeps every feature.
//
// Errors here are expected to be treated as non-fatal by the caller: the
// figure renders without the background layer.
func LoadBasemap(path, country string) (*Basemap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, stkerrors.New(stkerrors.ErrCodeInputNotFound, "basemap file %q not found", path)
		}
		return nil, stkerrors.Wrap(stkerrors.ErrCodeInputNotFound, err, "open basemap %s", path)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, stkerrors.Wrap(stkerrors.ErrCodeParse, err, "decode basemap %s", path)
	}

	bm := &Basemap{}
	for _, f := range fc.Features {
		if country != "" && featureName(f) != country {
			continue
		}
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			bm.Polygons = append(bm.Polygons, g)
		case orb.MultiPolygon:
			bm.Polygons = append(bm.Polygons, g...)
		}
	}
	if len(bm.Polygons) == 0 {
		return nil, stkerrors.New(stkerrors.ErrCodeEmptyResult,
			"basemap %s has no polygon features for country %q", path, country)
	}
	return bm, nil
}

// featureName reads the country name from the usual Natural Earth property
// keys.
func featureName(f *geojson.Feature) string {
	for _, key := range []string{"NAME", "ADMIN", "name"} {
		if v, ok := f.Properties[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
