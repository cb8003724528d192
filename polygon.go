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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Ring is a closed sequence of points.  The segment from the last point
// back to the first is implied; a repeated first point is allowed.
type Ring []vec.Vec2

// Polygon is an exterior ring with zero or more holes.
//
// Holes need no special treatment: the even-odd rule leaves every region
// enclosed by an even number of rings unfilled.
type Polygon struct {
	Exterior Ring
	Holes    []Ring
}

// MultiPolygon is a geometry made of several polygons.  The polygons of a
// MultiPolygon share one parity count, so overlapping parts cancel.
type MultiPolygon []Polygon

// screenPath maps all rings of mp to pixel coordinates.  Each usable ring
// becomes one closed subpath.  Non-finite points are dropped, and rings
// left with fewer than three distinct points are skipped.
func (m *Mapper) screenPath(mp MultiPolygon) *path.Data {
	p := &path.Data{}
	var buf []vec.Vec2
	for _, poly := range mp {
		buf = m.appendRing(p, poly.Exterior, buf)
		for _, hole := range poly.Holes {
			buf = m.appendRing(p, hole, buf)
		}
	}
	return p
}

func (m *Mapper) appendRing(p *path.Data, ring Ring, buf []vec.Vec2) []vec.Vec2 {
	buf = buf[:0]
	for _, pt := range ring {
		q := m.WorldToScreen(pt)
		if !isFinite(q) {
			continue
		}
		if len(buf) > 0 && buf[len(buf)-1] == q {
			continue
		}
		buf = append(buf, q)
	}
	for len(buf) > 1 && buf[len(buf)-1] == buf[0] {
		buf = buf[:len(buf)-1]
	}
	if len(buf) < 3 {
		return buf
	}

	p.Cmds = append(p.Cmds, path.CmdMoveTo)
	p.Coords = append(p.Coords, buf[0])
	for _, q := range buf[1:] {
		p.Cmds = append(p.Cmds, path.CmdLineTo)
		p.Coords = append(p.Coords, q)
	}
	p.Cmds = append(p.Cmds, path.CmdClose)
	return buf
}

func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// walkSegments calls fn for every straight segment of p, including the
// closing segment of each subpath.  Paths built by screenPath contain only
// MoveTo, LineTo and Close.
func walkSegments(p *path.Data, fn func(a, b vec.Vec2)) {
	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			fn(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			fn(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			fn(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				fn(current, start)
			}
			current = start
		}
	}
}
