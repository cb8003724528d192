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

var precisionCases = []TestCase{
	{
		Name:       "subpixel_offset_00",
		Geoms:      single(Polygon{offsetBox(20, 20, 24, 24, 0)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "subpixel_offset_25",
		Geoms:      single(Polygon{offsetBox(20, 20, 24, 24, 0.25)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "subpixel_offset_50",
		Geoms:      single(Polygon{offsetBox(20, 20, 24, 24, 0.5)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "subpixel_offset_75",
		Geoms:      single(Polygon{offsetBox(20, 20, 24, 24, 0.75)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		// thinner than a pixel: rounds away to nothing
		Name:       "sliver",
		Geoms:      single(Polygon{box(8, 31.6, 56, 32.2)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "tiny_triangle",
		Geoms:      single(Polygon{triangle(30.2, 30.2, 33.8, 30.4, 32, 33.9)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "shared_vertex",
		Geoms:      single(Polygon{triangle(8, 8, 32, 32, 8, 56)}, Polygon{triangle(56, 8, 32, 32, 56, 56)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "shared_edge",
		Geoms:      single(Polygon{box(8, 8, 32, 56)}, Polygon{box(32, 8, 56, 56)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "nearly_horizontal",
		Geoms:      single(Polygon{Ring{pt(2, 30), pt(62, 31), pt(62, 40), pt(2, 34)}}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
}

// offsetBox returns a w×h rectangle at (x, y), shifted by off in both
// directions.
func offsetBox(x, y, w, h, off float64) Ring {
	return box(x+off, y+off, x+w+off, y+h+off)
}
