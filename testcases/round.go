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

import "math"

// roundCases use polygons with many vertices in place of curves.
var roundCases = []TestCase{
	{
		Name:       "circle",
		Geoms:      single(Polygon{regular(32, 32, 24, 96, 0)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "small_circle",
		Geoms:      single(Polygon{regular(32, 32, 3.5, 24, 0)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "annulus",
		Geoms:      single(Polygon{regular(32, 32, 28, 128, 0), regular(32, 32, 14, 64, 0)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:        "circle_outline",
		Geoms:       single(Polygon{regular(32, 32, 24, 96, 0)}),
		BBox:        canvas(64, 64),
		Resolution:  1,
		StrokeWidth: 3,
	},
	{
		Name:       "ellipse",
		Geoms:      single(Polygon{ellipse(64, 32, 56, 20, 0.4, 128)}),
		BBox:       canvas(128, 64),
		Resolution: 1,
	},
}

// ellipse returns a rotated ellipse with n vertices.
func ellipse(cx, cy, rx, ry, angle float64, n int) Ring {
	sin, cos := math.Sincos(angle)
	res := make(Ring, n)
	for i := range n {
		t := 2 * math.Pi * float64(i) / float64(n)
		x := rx * math.Cos(t)
		y := ry * math.Sin(t)
		res[i] = pt(cx+x*cos-y*sin, cy+x*sin+y*cos)
	}
	return res
}
