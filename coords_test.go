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

package overlay

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestDimensions(t *testing.T) {
	cases := []struct {
		bbox          BBox
		res           float64
		width, height int
	}{
		{BBox{URx: 10, URy: 10}, 1, 10, 10},
		{BBox{URx: 10, URy: 10}, 3, 4, 4},
		{BBox{LLx: -1, LLy: 2, URx: 1, URy: 3}, 0.5, 4, 2},
		{BBox{URx: 1, URy: 1}, 2, 1, 1},
		{BBox{LLx: -180, LLy: -90, URx: 180, URy: 90}, 0.25, 1440, 720},
		{BBox{URx: 1e300, URy: 1}, 1e-300, maxInt32, maxInt32},
	}
	for _, c := range cases {
		w, h, err := Dimensions(c.bbox, c.res)
		if err != nil {
			t.Errorf("%v @ %g: %v", c.bbox, c.res, err)
			continue
		}
		if w != c.width || h != c.height {
			t.Errorf("%v @ %g: got %dx%d, want %dx%d",
				c.bbox, c.res, w, h, c.width, c.height)
		}
	}
}

func TestDimensionsErrors(t *testing.T) {
	good := BBox{URx: 10, URy: 10}
	cases := []struct {
		name string
		bbox BBox
		res  float64
		want error
	}{
		{"zero_res", good, 0, ErrInvalidResolution},
		{"negative_res", good, -1, ErrInvalidResolution},
		{"nan_res", good, math.NaN(), ErrInvalidResolution},
		{"inf_res", good, math.Inf(1), ErrInvalidResolution},
		{"empty_bbox", BBox{URx: 10}, 1, ErrInvalidBBox},
		{"inverted_bbox", BBox{LLx: 10, URx: 0, URy: 10}, 1, ErrInvalidBBox},
		{"nan_bbox", BBox{LLx: math.NaN(), URx: 10, URy: 10}, 1, ErrInvalidBBox},
		{"inf_bbox", BBox{URx: math.Inf(1), URy: 10}, 1, ErrInvalidBBox},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := Dimensions(c.bbox, c.res)
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}

// TestDimensionsMonotonic checks that a finer resolution never gives a
// smaller image.
func TestDimensionsMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		x0 := rng.Float64()*200 - 100
		y0 := rng.Float64()*200 - 100
		bbox := BBox{
			LLx: x0,
			LLy: y0,
			URx: x0 + 1e-3 + rng.Float64()*50,
			URy: y0 + 1e-3 + rng.Float64()*50,
		}
		r1 := 1e-3 + rng.Float64()
		r2 := r1 * (1 + rng.Float64())

		w1, h1, err1 := Dimensions(bbox, r1)
		w2, h2, err2 := Dimensions(bbox, r2)
		if err1 != nil || err2 != nil {
			t.Fatalf("%v: %v %v", bbox, err1, err2)
		}
		if w1 < w2 || h1 < h2 {
			t.Errorf("%v: res %g gives %dx%d, res %g gives %dx%d",
				bbox, r1, w1, h1, r2, w2, h2)
		}
		if w2 < 1 || h2 < 1 {
			t.Errorf("%v @ %g: empty image %dx%d", bbox, r2, w2, h2)
		}
	}
}

func TestWorldToScreenCorners(t *testing.T) {
	bbox := BBox{LLx: 100, LLy: 50, URx: 110, URy: 55}
	res := 0.5
	_, h, err := Dimensions(bbox, res)
	if err != nil {
		t.Fatal(err)
	}
	m := NewMapper(bbox, res, h)

	cases := []struct{ in, out vec.Vec2 }{
		{vec.Vec2{X: 100, Y: 55}, vec.Vec2{X: 0, Y: 0}},
		{vec.Vec2{X: 100, Y: 50}, vec.Vec2{X: 0, Y: 10}},
		{vec.Vec2{X: 110, Y: 50}, vec.Vec2{X: 20, Y: 10}},
		{vec.Vec2{X: 105, Y: 52.5}, vec.Vec2{X: 10, Y: 5}},
	}
	for _, c := range cases {
		got := m.WorldToScreen(c.in)
		if got.Sub(c.out).Length() > 1e-9 {
			t.Errorf("WorldToScreen(%v) = %v, want %v", c.in, got, c.out)
		}
		if pkg := WorldToScreen(c.in, bbox, res, h); pkg != got {
			t.Errorf("package WorldToScreen(%v) = %v, mapper gives %v", c.in, pkg, got)
		}
	}
}

// TestRoundTrip maps pixel centres to the world and back.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		bbox := BBox{LLx: rng.Float64() * 10, LLy: rng.Float64() * 10}
		bbox.URx = bbox.LLx + 0.1 + rng.Float64()*10
		bbox.URy = bbox.LLy + 0.1 + rng.Float64()*10
		res := 0.01 + rng.Float64()*0.2
		w, h, err := Dimensions(bbox, res)
		if err != nil {
			t.Fatal(err)
		}
		m := NewMapper(bbox, res, h)

		for range 20 {
			px := vec.Vec2{X: float64(rng.IntN(w)), Y: float64(rng.IntN(h))}
			world := ScreenToWorld(px, bbox, res, h)

			// the pixel centre lies half a pixel from the pixel corner
			back := m.WorldToScreen(world)
			want := vec.Vec2{X: px.X + 0.5, Y: px.Y + 0.5}
			if back.Sub(want).Length() > 1e-6 {
				t.Fatalf("%v @ %g: %v -> %v -> %v", bbox, res, px, world, back)
			}

			// and world points come back within half a pixel
			p := vec.Vec2{
				X: bbox.LLx + rng.Float64()*(bbox.URx-bbox.LLx),
				Y: bbox.LLy + rng.Float64()*(bbox.URy-bbox.LLy),
			}
			s := m.WorldToScreen(p)
			q := m.ScreenToWorld(vec.Vec2{X: math.Floor(s.X), Y: math.Floor(s.Y)})
			if math.Abs(q.X-p.X) > 0.5*res+1e-9 || math.Abs(q.Y-p.Y) > 0.5*res+1e-9 {
				t.Fatalf("%v @ %g: %v -> %v -> %v", bbox, res, p, s, q)
			}
		}
	}
}
