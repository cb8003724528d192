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

// mappingCases render the same shapes with different bounding boxes and
// resolutions.  All of them should produce closely related images.
var mappingCases = []TestCase{
	{
		Name:       "scale_half",
		Geoms:      single(Polygon{fivePointStar(64, 64, 50)}),
		BBox:       canvas(128, 128),
		Resolution: 2,
	},
	{
		Name:       "scale_double",
		Geoms:      single(Polygon{fivePointStar(16, 16, 12.5)}),
		BBox:       canvas(32, 32),
		Resolution: 0.5,
	},
	{
		Name:       "offset_bbox",
		Geoms:      single(Polygon{fivePointStar(1032, -468, 25)}),
		BBox:       rect.Rect{LLx: 1000, LLy: -500, URx: 1064, URy: -436},
		Resolution: 1,
	},
	{
		// lon/lat degrees around Brest, about 1e-3 degrees per pixel
		Name: "geographic",
		Geoms: single(Polygon{
			Ring{
				pt(-4.55, 48.36), pt(-4.47, 48.43), pt(-4.41, 48.40),
				pt(-4.44, 48.37), pt(-4.50, 48.38),
			},
			Ring{pt(-4.49, 48.39), pt(-4.46, 48.41), pt(-4.45, 48.39)},
		}),
		BBox:        rect.Rect{LLx: -4.56, LLy: 48.35, URx: -4.40, URy: 48.44},
		Resolution:  0.001,
		StrokeWidth: 1,
	},
	{
		// projected metres, non-square extent
		Name:        "metric",
		Geoms:       single(Polygon{box(652000, 6860000, 652900, 6860400)}),
		BBox:        rect.Rect{LLx: 651900, LLy: 6859900, URx: 653000, URy: 6860500},
		Resolution:  10,
		StrokeWidth: 2,
	},
}
