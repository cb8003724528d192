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
	"cmp"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal ring segment in pixel coordinates.  The edge
// crosses the centre lines of the rows [row0, yMax), where row0 is the GET
// row it is stored under.
type edge struct {
	x0, y0   float64 // endpoint with the smaller y coordinate
	invSlope float64 // dx/dy
	yMax     int     // first row below the edge
	geom     int     // index of the geometry in the Render call

	xCurrent float64 // x coordinate on the current row's centre line
}

// xAt returns the x coordinate where the edge crosses the centre line of
// the given row.  The value only depends on the row, which makes the
// result independent of the band in which the row is processed.
func (e *edge) xAt(row int) float64 {
	return e.x0 + e.invSlope*(float64(row)+0.5-e.y0)
}

// compareEdges orders edges by geometry, and by x within a geometry.
func compareEdges(a, b edge) int {
	if c := cmp.Compare(a.geom, b.geom); c != 0 {
		return c
	}
	return cmp.Compare(a.xCurrent, b.xCurrent)
}

// edgeTable is the global edge table.  It is built once per Render call
// and only read afterwards, concurrently by all bands.
type edgeTable struct {
	height     int
	bandHeight int

	// rows[y] holds the edges which start on row y.
	rows [][]edge

	// carry[b] holds the edges which start above band b and are still
	// active on the first row of band b.
	carry [][]edge

	count int
}

func newEdgeTable(height, bandHeight int) *edgeTable {
	return &edgeTable{
		height:     height,
		bandHeight: bandHeight,
		rows:       make([][]edge, height),
		carry:      make([][]edge, numBands(height, bandHeight)),
	}
}

// addPath adds all segments of a pixel-space path.  Subpaths are closed
// implicitly.
func (t *edgeTable) addPath(p *path.Data, geom int) {
	walkSegments(p, func(a, b vec.Vec2) {
		t.addEdge(a, b, geom)
	})
}

// addEdge adds the segment from a to b.  Segments which start and end on
// the same row are dropped, as are the parts of a segment outside the
// image rows.
func (t *edgeTable) addEdge(a, b vec.Vec2, geom int) {
	if a.Y > b.Y {
		a, b = b, a
	}
	row0 := t.clampRow(a.Y)
	row1 := t.clampRow(b.Y)
	if row0 >= row1 {
		return
	}

	e := edge{
		x0:       a.X,
		y0:       a.Y,
		invSlope: (b.X - a.X) / (b.Y - a.Y),
		yMax:     row1,
		geom:     geom,
	}
	t.rows[row0] = append(t.rows[row0], e)
	for band := row0/t.bandHeight + 1; band <= (row1-1)/t.bandHeight; band++ {
		t.carry[band] = append(t.carry[band], e)
	}
	t.count++
}

// clampRow rounds y to the nearest row boundary and clamps the result
// to [0, height].
func (t *edgeTable) clampRow(y float64) int {
	r := math.Round(y)
	switch {
	case !(r > 0):
		return 0
	case r >= float64(t.height):
		return t.height
	}
	return int(r)
}
