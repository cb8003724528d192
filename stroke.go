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
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// segment is a stroke segment with integer end points in pixel space.
type segment struct {
	x0, y0 int
	x1, y1 int
}

// strokeTable buckets the stroke segments by the bands they touch,
// taking the brush size into account.
type strokeTable struct {
	width, height int
	bandHeight    int

	// lo and hi are the brush offsets: a point plotted at (x, y) covers
	// the square [x+lo, x+hi] × [y+lo, y+hi].
	lo, hi int

	// clip is the region outside of which segments cannot affect the
	// image.
	clip rect.Rect

	bands [][]segment
	count int
}

func newStrokeTable(width, height, bandHeight, brush int) *strokeTable {
	lo := -(brush - 1) / 2
	hi := lo + brush - 1
	margin := float64(brush + 1)
	return &strokeTable{
		width:      width,
		height:     height,
		bandHeight: bandHeight,
		lo:         lo,
		hi:         hi,
		clip: rect.Rect{
			LLx: -margin,
			LLy: -margin,
			URx: float64(width) + margin,
			URy: float64(height) + margin,
		},
		bands: make([][]segment, numBands(height, bandHeight)),
	}
}

// addPath adds the outline of every subpath of p, including the closing
// segments.
func (t *strokeTable) addPath(p *path.Data) {
	walkSegments(p, t.addSegment)
}

func (t *strokeTable) addSegment(a, b vec.Vec2) {
	a, b, ok := clipSegment(a, b, t.clip)
	if !ok {
		return
	}
	s := segment{
		x0: int(math.Floor(a.X)),
		y0: int(math.Floor(a.Y)),
		x1: int(math.Floor(b.X)),
		y1: int(math.Floor(b.Y)),
	}

	top := min(s.y0, s.y1) + t.lo
	bottom := max(s.y0, s.y1) + t.hi
	if bottom < 0 || top >= t.height {
		return
	}
	first := max(top, 0) / t.bandHeight
	last := min(bottom, t.height-1) / t.bandHeight
	for i := first; i <= last; i++ {
		t.bands[i] = append(t.bands[i], s)
	}
	t.count++
}

// clipSegment clips the segment from a to b to the rectangle r, using the
// Liang-Barsky algorithm.  End points inside r are returned unchanged.
func clipSegment(a, b vec.Vec2, r rect.Rect) (vec.Vec2, vec.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	for _, pq := range [4][2]float64{
		{-d.X, a.X - r.LLx},
		{d.X, r.URx - a.X},
		{-d.Y, a.Y - r.LLy},
		{d.Y, r.URy - a.Y},
	} {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		s := q / p
		if p < 0 {
			if s > t1 {
				return a, b, false
			}
			t0 = max(t0, s)
		} else {
			if s < t0 {
				return a, b, false
			}
			t1 = min(t1, s)
		}
	}

	a1, b1 := a, b
	if t0 > 0 {
		a1 = a.Add(d.Mul(t0))
	}
	if t1 < 1 {
		b1 = a.Add(d.Mul(t1))
	}
	return a1, b1, true
}

// strokeBand draws the segments touching band b, writing only to the rows
// of the band.
func strokeBand(img *image.NRGBA, t *strokeTable, b band, col color.NRGBA) {
	for _, s := range t.bands[b.index] {
		t.drawSegment(img, s, b, col)
	}
}

// drawSegment walks the segment with Bresenham's algorithm and stamps the
// square brush at every point.
func (t *strokeTable) drawSegment(img *image.NRGBA, s segment, b band, col color.NRGBA) {
	dx := abs(s.x1 - s.x0)
	dy := -abs(s.y1 - s.y0)
	sx, sy := -1, -1
	if s.x0 < s.x1 {
		sx = 1
	}
	if s.y0 < s.y1 {
		sy = 1
	}
	e := dx + dy

	x, y := s.x0, s.y0
	for {
		if y+t.hi >= b.y0 && y+t.lo < b.y1 {
			t.stamp(img, x, y, b, col)
		} else if sy > 0 && y+t.lo >= b.y1 || sy < 0 && y+t.hi < b.y0 {
			// moving away from the band
			break
		}

		if x == s.x1 && y == s.y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func (t *strokeTable) stamp(img *image.NRGBA, x, y int, b band, col color.NRGBA) {
	xMin := max(x+t.lo, 0)
	xMax := min(x+t.hi, t.width-1)
	yMin := max(y+t.lo, b.y0)
	yMax := min(y+t.hi, b.y1-1)
	for py := yMin; py <= yMax; py++ {
		row := img.PixOffset(0, py)
		for px := xMin; px <= xMax; px++ {
			blendAt(img.Pix, row+4*px, col)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
