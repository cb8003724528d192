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

// Package testcases holds named polygon scenes which are shared by the
// rendering tests, the benchmarks and the reference image tools.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name        string     // lowercase a-z, 0-9 and _ only
	Geoms       []Geometry // drawn in order, later ones on top
	BBox        rect.Rect  // world region covered by the image
	Resolution  float64    // world units per pixel
	StrokeWidth int        // outline brush size in pixels, 0 for none
}

// Size returns the image size in pixels.
func (tc TestCase) Size() (width, height int) {
	width = int(math.Ceil((tc.BBox.URx - tc.BBox.LLx) / tc.Resolution))
	height = int(math.Ceil((tc.BBox.URy - tc.BBox.LLy) / tc.Resolution))
	return width, height
}

// Ring is a closed sequence of world points.
type Ring []vec.Vec2

// Polygon is an exterior ring followed by zero or more holes.
type Polygon []Ring

// Geometry is a multi-polygon.  Its polygons share one parity count.
type Geometry []Polygon

// canvas returns a bounding box for a w×h image with one world unit per
// pixel.  World y grows upwards, so y = h is the top image row.
func canvas(w, h float64) rect.Rect {
	return rect.Rect{URx: w, URy: h}
}

// single wraps polygons into a one-geometry scene.
func single(polys ...Polygon) []Geometry {
	return []Geometry{polys}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// box returns the axis-parallel rectangle [x0,x1]×[y0,y1] as a ring.
func box(x0, y0, x1, y1 float64) Ring {
	return Ring{pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1), pt(x0, y0)}
}

// regular returns a regular n-gon with circumradius r.
func regular(cx, cy, r float64, n int, phase float64) Ring {
	res := make(Ring, n)
	for i := range n {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		res[i] = pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return res
}
