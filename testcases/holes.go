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

var holeCases = []TestCase{
	{
		Name:       "square_with_hole",
		Geoms:      single(Polygon{box(8, 8, 56, 56), box(20, 20, 44, 44)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name: "hole_same_orientation",
		Geoms: single(Polygon{
			box(8, 8, 56, 56),
			Ring{pt(20, 20), pt(44, 20), pt(44, 44), pt(20, 44)},
		}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name: "multiple_holes",
		Geoms: single(Polygon{
			box(4, 4, 124, 60),
			box(10, 10, 30, 54),
			regular(64, 32, 16, 6, 0),
			triangle(90, 10, 118, 10, 104, 54),
		}),
		BBox:       canvas(128, 64),
		Resolution: 1,
	},
	{
		// island inside a hole: three nested rings, the innermost is
		// filled again
		Name: "nested_rings",
		Geoms: single(
			Polygon{box(4, 4, 60, 60), box(14, 14, 50, 50)},
			Polygon{box(24, 24, 40, 40)},
		),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		// overlapping parts of one geometry cancel
		Name: "overlapping_parts",
		Geoms: single(
			Polygon{box(8, 8, 40, 40)},
			Polygon{box(24, 24, 56, 56)},
		),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name: "two_triangles",
		Geoms: single(
			Polygon{triangle(4, 8, 28, 8, 16, 56)},
			Polygon{triangle(36, 56, 60, 56, 48, 8)},
		),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name: "many_holes",
		Geoms: single(Polygon(append(
			[]Ring{box(2, 2, 126, 126)},
			holeGrid(8, 8, 128, 128, 6)...,
		))),
		BBox:       canvas(128, 128),
		Resolution: 1,
	},
}

// holeGrid returns a grid of small square rings, inset from the cells of
// a rows×cols grid.
func holeGrid(rows, cols int, width, height, inset float64) []Ring {
	cw := width / float64(cols)
	ch := height / float64(rows)
	var res []Ring
	for i := range rows {
		for j := range cols {
			x := float64(j) * cw
			y := float64(i) * ch
			res = append(res, box(x+inset, y+inset, x+cw-inset, y+ch-inset))
		}
	}
	return res
}
