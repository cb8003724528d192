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
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/ctessum/geom/proj"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"

	"seehuhn.de/go/overlay"
	"seehuhn.de/go/overlay/internal/parallel"
)

// SRS identifiers with built-in support.
const (
	srsWGS84        = 4326
	srsWebMercator  = 3857
	srsGoogleLegacy = 900913
)

const wgs84Proj4 = "+proj=longlat +datum=WGS84 +no_defs"

// toWGS84 returns a projection from the given spatial reference system to
// WGS84 longitude/latitude.  For WGS84 itself, nil is returned.  Points
// which cannot be transformed are mapped to NaN.
func toWGS84(srsID int, definition string) (orb.Projection, error) {
	switch srsID {
	case srsWGS84:
		return nil, nil
	case srsWebMercator, srsGoogleLegacy:
		return project.Mercator.ToWGS84, nil
	}

	definition = strings.TrimSpace(definition)
	if definition == "" || definition == "undefined" {
		return nil, fmt.Errorf("SRS %d: no definition", srsID)
	}
	src, err := proj.Parse(definition)
	if err != nil {
		return nil, fmt.Errorf("SRS %d: %w", srsID, err)
	}
	dst, err := proj.Parse(wgs84Proj4)
	if err != nil {
		return nil, err
	}
	t, err := src.NewTransform(dst)
	if err != nil {
		return nil, fmt.Errorf("SRS %d: %w", srsID, err)
	}

	return func(p orb.Point) orb.Point {
		x, y, err := t(p[0], p[1])
		if err != nil {
			return orb.Point{math.NaN(), math.NaN()}
		}
		return orb.Point{x, y}
	}, nil
}

// reprojectAll reprojects the geometries on a worker pool and drops
// geometries with points that could not be transformed.
func reprojectAll(geoms []orb.MultiPolygon, p orb.Projection, workers int) []orb.MultiPolygon {
	if p == nil || len(geoms) == 0 {
		return geoms
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	chunk := max(1, len(geoms)/(4*pool.Workers()))
	var tasks []func()
	for lo := 0; lo < len(geoms); lo += chunk {
		part := geoms[lo:min(lo+chunk, len(geoms))]
		tasks = append(tasks, func() {
			for i, mp := range part {
				part[i] = project.MultiPolygon(mp, p)
			}
		})
	}
	pool.ExecuteAll(tasks)

	return slices.DeleteFunc(geoms, hasNaN)
}

func hasNaN(mp orb.MultiPolygon) bool {
	for _, poly := range mp {
		for _, ring := range poly {
			for _, pt := range ring {
				if math.IsNaN(pt[0]) || math.IsNaN(pt[1]) ||
					math.IsInf(pt[0], 0) || math.IsInf(pt[1], 0) {
					return true
				}
			}
		}
	}
	return false
}

// reprojectBound transforms the four corners of b and returns their
// bounding box.  Corners which fail to transform are ignored.
func reprojectBound(b orb.Bound, p orb.Projection) (overlay.BBox, bool) {
	if p == nil {
		return fromBound(b), true
	}

	var res orb.Bound
	empty := true
	for _, c := range b.ToRing()[:4] {
		q := p(c)
		if math.IsNaN(q[0]) || math.IsNaN(q[1]) {
			continue
		}
		if empty {
			res = q.Bound()
			empty = false
		} else {
			res = res.Extend(q)
		}
	}
	if empty {
		return overlay.BBox{}, false
	}
	return fromBound(res), true
}
