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

import (
	"math"
	"math/rand/v2"
)

var complexCases = []TestCase{
	{
		Name:       "figure_eight",
		Geoms:      single(Polygon{figureEight(64, 32, 56, 24, 200)}),
		BBox:       canvas(128, 64),
		Resolution: 1,
	},
	{
		Name:        "spiral",
		Geoms:       single(Polygon{spiral(64, 64, 60, 4, 400)}),
		BBox:        canvas(128, 128),
		Resolution:  1,
		StrokeWidth: 1,
	},
	{
		Name:        "zigzag",
		Geoms:       single(Polygon{zigzag(8, 16, 120, 48, 12)}),
		BBox:        canvas(128, 64),
		Resolution:  1,
		StrokeWidth: 2,
	},
	{
		// separate geometries composite instead of cancelling
		Name: "layered",
		Geoms: []Geometry{
			{Polygon{box(8, 8, 40, 40)}},
			{Polygon{box(24, 24, 56, 56)}},
			{Polygon{regular(32, 32, 10, 3, 0)}},
		},
		BBox:        canvas(64, 64),
		Resolution:  1,
		StrokeWidth: 1,
	},
	Random("random_small", 1, 4, 64, 64),
	Random("random_medium", 2, 12, 256, 192),
	Random("random_large", 3, 40, 600, 700),
}

// Random returns a test case with n random geometries in a w×h image.
// Every geometry is a star-shaped polygon, often self-intersecting, with
// an occasional hole.  The same seed always gives the same case.
func Random(name string, seed uint64, n, w, h int) TestCase {
	rng := rand.New(rand.NewPCG(seed, 0x6f76))
	W, H := float64(w), float64(h)

	var geoms []Geometry
	for range n {
		var g Geometry
		for range 1 + rng.IntN(2) {
			cx := W * (rng.Float64()*1.2 - 0.1)
			cy := H * (rng.Float64()*1.2 - 0.1)
			r := math.Min(W, H) * (0.05 + 0.4*rng.Float64())
			poly := Polygon{randomRing(rng, cx, cy, r, 3+rng.IntN(14))}
			if rng.IntN(3) == 0 {
				poly = append(poly, randomRing(rng, cx, cy, r/3, 3+rng.IntN(5)))
			}
			g = append(g, poly)
		}
		geoms = append(geoms, g)
	}

	return TestCase{
		Name:        name,
		Geoms:       geoms,
		BBox:        canvas(W, H),
		Resolution:  1,
		StrokeWidth: int(seed % 3),
	}
}

func randomRing(rng *rand.Rand, cx, cy, r float64, n int) Ring {
	res := make(Ring, n)
	for i := range n {
		a := 2 * math.Pi * rng.Float64()
		d := r * (0.2 + 0.8*rng.Float64())
		res[i] = pt(cx+d*math.Cos(a), cy+d*math.Sin(a))
	}
	return res
}

// figureEight returns a lemniscate, which crosses itself in the middle.
func figureEight(cx, cy, a, b float64, n int) Ring {
	res := make(Ring, n)
	for i := range n {
		t := 2 * math.Pi * float64(i) / float64(n)
		res[i] = pt(cx+a*math.Sin(t), cy+b*math.Sin(t)*math.Cos(t))
	}
	return res
}

// spiral returns an Archimedean spiral, closed by a straight segment
// back to its centre.
func spiral(cx, cy, r, turns float64, n int) Ring {
	res := make(Ring, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		a := 2 * math.Pi * turns * t
		res[i] = pt(cx+r*t*math.Cos(a), cy+r*t*math.Sin(a))
	}
	return res
}

// zigzag returns a band with a zigzag upper edge.
func zigzag(x0, y0, x1, y1 float64, teeth int) Ring {
	res := Ring{pt(x0, y0), pt(x1, y0)}
	dx := (x1 - x0) / float64(teeth)
	for i := teeth; i >= 0; i-- {
		y := y1
		if i%2 == 1 {
			y = (y0 + y1) / 2
		}
		res = append(res, pt(x0+float64(i)*dx, y))
	}
	return res
}
