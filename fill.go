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
	"slices"
)

// fillBand runs the scanline fill for the rows of one band.  The active
// edge list is local to the call; the edge table is only read.
func fillBand(img *image.NRGBA, t *edgeTable, b band, col color.NRGBA) {
	width := img.Rect.Dx()

	aet := slices.Clone(t.carry[b.index])
	for y := b.y0; y < b.y1; y++ {
		aet = append(aet, t.rows[y]...)
		aet = slices.DeleteFunc(aet, func(e edge) bool { return e.yMax <= y })
		if len(aet) == 0 {
			continue
		}
		for i := range aet {
			aet[i].xCurrent = aet[i].xAt(y)
		}
		slices.SortStableFunc(aet, compareEdges)

		rowStart := img.PixOffset(0, y)
		fillSpans(aet, width, func(x0, x1 int) {
			for i := rowStart + 4*x0; i < rowStart+4*x1; i += 4 {
				blendAt(img.Pix, i, col)
			}
		})
	}
}

// fillSpans applies the even-odd rule to a sorted active edge list.
// Edges of each geometry are taken in pairs, and fn is called with the
// column range [x0, x1) between the two edges of a pair, clipped to
// [0, width).  An unpaired last edge of a geometry is ignored.
func fillSpans(aet []edge, width int, fn func(x0, x1 int)) {
	for i := 0; i < len(aet); {
		j := i + 1
		for j < len(aet) && aet[j].geom == aet[i].geom {
			j++
		}
		for k := i; k+1 < j; k += 2 {
			x0 := clampCol(aet[k].xCurrent, width)
			x1 := clampCol(aet[k+1].xCurrent, width)
			if x0 < x1 {
				fn(x0, x1)
			}
		}
		i = j
	}
}

// clampCol rounds x to the nearest pixel boundary and clamps the result
// to [0, width].
func clampCol(x float64, width int) int {
	c := math.Round(x)
	switch {
	case !(c > 0):
		return 0
	case c >= float64(width):
		return width
	}
	return int(c)
}
