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

// Package input reads polygon layers from GeoPackage and GeoJSON files.
//
// All readers return geometries in WGS84 longitude/latitude, ready to be
// passed to an overlay.Renderer.  Point and line geometries are ignored.
package input

import (
	"errors"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay"
)

var (
	// ErrNoGeometries is returned when a file contains no polygons.
	ErrNoGeometries = errors.New("no polygon geometries found")

	// ErrBadGPKGHeader indicates a geometry blob with an invalid
	// GeoPackage header.
	ErrBadGPKGHeader = errors.New("invalid GeoPackage geometry header")
)

// LayerNotFoundError is returned when a requested GeoPackage layer does
// not exist or has no polygon geometry column.
type LayerNotFoundError struct {
	Name      string
	Available []string
}

func (err *LayerNotFoundError) Error() string {
	if len(err.Available) == 0 {
		return "layer " + strconv.Quote(err.Name) + " not found (no polygon layers)"
	}
	return "layer " + strconv.Quote(err.Name) + " not found (available: " +
		strings.Join(err.Available, ", ") + ")"
}

// toMultiPolygon converts the polygonal parts of g.  The second return
// value is false if g contains no polygons.
func toMultiPolygon(g orb.Geometry) (overlay.MultiPolygon, bool) {
	var res overlay.MultiPolygon
	var walk func(g orb.Geometry)
	walk = func(g orb.Geometry) {
		switch g := g.(type) {
		case orb.Polygon:
			if p, ok := toPolygon(g); ok {
				res = append(res, p)
			}
		case orb.MultiPolygon:
			for _, poly := range g {
				if p, ok := toPolygon(poly); ok {
					res = append(res, p)
				}
			}
		case orb.Collection:
			for _, sub := range g {
				walk(sub)
			}
		}
	}
	walk(g)
	return res, len(res) > 0
}

func toPolygon(p orb.Polygon) (overlay.Polygon, bool) {
	if len(p) == 0 || len(p[0]) == 0 {
		return overlay.Polygon{}, false
	}
	res := overlay.Polygon{Exterior: toRing(p[0])}
	for _, hole := range p[1:] {
		if len(hole) > 0 {
			res.Holes = append(res.Holes, toRing(hole))
		}
	}
	return res, true
}

func toRing(r orb.Ring) overlay.Ring {
	res := make(overlay.Ring, len(r))
	for i, p := range r {
		res[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return res
}
