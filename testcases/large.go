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

package testcases

import "seehuhn.de/go/geom/rect"

// largeCases span many bands, so that most edges are carried from one
// band into the next.
var largeCases = []TestCase{
	{
		Name:       "large_rectangle",
		Geoms:      single(Polygon{box(50, 50, 462, 462)}),
		BBox:       canvas(512, 512),
		Resolution: 1,
	},
	{
		Name:       "large_concentric",
		Geoms:      single(concentric(256, 256, 200, 40, 5)),
		BBox:       canvas(512, 512),
		Resolution: 1,
	},
	{
		Name:        "large_diamond",
		Geoms:       single(Polygon{regular(256, 256, 180, 4, 0)}),
		BBox:        canvas(512, 512),
		Resolution:  1,
		StrokeWidth: 5,
	},
	{
		Name:       "large_grid",
		Geoms:      []Geometry{gridGeometry(8, 8, 512, 512, 4)},
		BBox:       canvas(512, 512),
		Resolution: 1,
	},
	{
		Name:        "large_clipped",
		Geoms:       single(Polygon{box(-100, 100, 612, 400)}),
		BBox:        canvas(512, 512),
		Resolution:  1,
		StrokeWidth: 3,
	},
	{
		// vertices very far outside of the image
		Name: "far_outside",
		Geoms: single(Polygon{
			Ring{pt(-1e9, -1e9), pt(1e9, -1e9), pt(128, 1e9)},
		}),
		BBox:        canvas(256, 256),
		Resolution:  1,
		StrokeWidth: 2,
	},
	{
		Name:       "tall",
		Geoms:      single(Polygon{triangle(2, 2, 30, 1000, 62, 40)}),
		BBox:       rect.Rect{URx: 64, URy: 1024},
		Resolution: 1,
	},
}

// concentric returns n nested squares around (cx, cy).  Under the
// even-odd rule they form alternating filled and empty frames.
func concentric(cx, cy, r, step float64, n int) Polygon {
	var res Polygon
	for i := range n {
		s := r - float64(i)*step
		res = append(res, box(cx-s, cy-s, cx+s, cy+s))
	}
	return res
}

// gridGeometry returns a rows×cols grid of separate squares.
func gridGeometry(rows, cols int, width, height, gap float64) Geometry {
	cw := width / float64(cols)
	ch := height / float64(rows)
	var res Geometry
	for i := range rows {
		for j := range cols {
			x := float64(j) * cw
			y := float64(i) * ch
			res = append(res, Polygon{box(x+gap, y+gap, x+cw-gap, y+ch-gap)})
		}
	}
	return res
}
