// seehuhn.de/go/overlay - render polygon layers as raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"seehuhn.de/go/overlay"
)

// ReadGeoJSON reads the polygons from a GeoJSON file.  The file may hold a
// FeatureCollection, a single Feature or a bare geometry.  Coordinates are
// taken as WGS84 longitude/latitude.
func ReadGeoJSON(path string) ([]overlay.MultiPolygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	geoms, err := ParseGeoJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return geoms, nil
}

// ParseGeoJSON extracts the polygons from GeoJSON data.
// If no polygons are found, ErrNoGeometries is returned.
func ParseGeoJSON(data []byte) ([]overlay.MultiPolygon, error) {
	data = repairGeoJSON(data)

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("invalid GeoJSON: %w", err)
	}

	var geoms []orb.Geometry
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("invalid GeoJSON: %w", err)
		}
		for _, f := range fc.Features {
			geoms = append(geoms, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("invalid GeoJSON: %w", err)
		}
		geoms = append(geoms, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("invalid GeoJSON: %w", err)
		}
		geoms = append(geoms, g.Geometry())
	}

	var res []overlay.MultiPolygon
	for _, g := range geoms {
		if mp, ok := toMultiPolygon(g); ok {
			res = append(res, mp)
		}
	}
	if len(res) == 0 {
		return nil, ErrNoGeometries
	}
	return res, nil
}

// repairGeoJSON fixes two kinds of damage seen in exported files: an empty
// geometry type, which is taken to mean MultiPolygon, and CSV-style doubled
// quotes.  The empty type must be replaced first, since collapsing the
// quotes would destroy it.  Quotes are only collapsed if the data is not
// valid JSON, so that empty property strings survive.
func repairGeoJSON(data []byte) []byte {
	data = bytes.ReplaceAll(data, []byte(`"type":""`), []byte(`"type":"MultiPolygon"`))
	data = bytes.ReplaceAll(data, []byte(`"type": ""`), []byte(`"type": "MultiPolygon"`))
	if json.Valid(data) {
		return data
	}
	return bytes.ReplaceAll(data, []byte(`""`), []byte(`"`))
}
