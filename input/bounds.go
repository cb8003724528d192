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
	"github.com/paulmach/orb"

	"seehuhn.de/go/overlay"
)

// Bounds returns the bounding box of all rings of all geometries.
// The second return value is false if there are no points.
func Bounds(geoms []overlay.MultiPolygon) (overlay.BBox, bool) {
	var b orb.Bound
	empty := true
	add := func(r overlay.Ring) {
		for _, p := range r {
			q := orb.Point{p.X, p.Y}
			if empty {
				b = q.Bound()
				empty = false
			} else {
				b = b.Extend(q)
			}
		}
	}
	for _, mp := range geoms {
		for _, poly := range mp {
			add(poly.Exterior)
			for _, hole := range poly.Holes {
				add(hole)
			}
		}
	}
	if empty {
		return overlay.BBox{}, false
	}
	return fromBound(b), true
}

func fromBound(b orb.Bound) overlay.BBox {
	return overlay.BBox{
		LLx: b.Min[0],
		LLy: b.Min[1],
		URx: b.Max[0],
		URy: b.Max[1],
	}
}
