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

// Command export writes all test cases as GeoJSON files, so that they can
// be rendered with gpkg2png or inspected with GIS tools.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"seehuhn.de/go/overlay/testcases"
)

const outDir = "testdata/geojson"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fc := toFeatureCollection(tc)
			data, err := json.MarshalIndent(fc, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
			fname := filepath.Join(outDir, name+".geojson")
			if err := os.WriteFile(fname, data, 0644); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	}
}

// toFeatureCollection converts a test case to one feature per geometry.
// The rendering parameters are stored as foreign members of the
// collection.
func toFeatureCollection(tc testcases.TestCase) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.BBox = geojson.BBox{tc.BBox.LLx, tc.BBox.LLy, tc.BBox.URx, tc.BBox.URy}
	fc.ExtraMembers = geojson.Properties{
		"name":         tc.Name,
		"resolution":   tc.Resolution,
		"stroke_width": tc.StrokeWidth,
	}
	for i, g := range tc.Geoms {
		f := geojson.NewFeature(toMultiPolygon(g))
		f.Properties["index"] = i
		fc.Append(f)
	}
	return fc
}

func toMultiPolygon(g testcases.Geometry) orb.MultiPolygon {
	mp := make(orb.MultiPolygon, len(g))
	for i, poly := range g {
		p := make(orb.Polygon, len(poly))
		for j, ring := range poly {
			r := make(orb.Ring, 0, len(ring)+1)
			for _, pt := range ring {
				r = append(r, orb.Point{pt.X, pt.Y})
			}
			if len(r) > 0 && r[0] != r[len(r)-1] {
				r = append(r, r[0])
			}
			p[j] = r
		}
		mp[i] = p
	}
	return mp
}
