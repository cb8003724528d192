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

// DefaultBandHeight is the number of image rows processed by one task.
const DefaultBandHeight = 64

// band is a range [y0, y1) of image rows.  During a render phase, the task
// for a band is the only writer to these rows.
type band struct {
	index  int
	y0, y1 int
}

func numBands(height, bandHeight int) int {
	return (height + bandHeight - 1) / bandHeight
}

// makeBands partitions the rows [0, height) into bands of bandHeight rows.
// The last band may be shorter.
func makeBands(height, bandHeight int) []band {
	res := make([]band, numBands(height, bandHeight))
	for i := range res {
		res[i] = band{
			index: i,
			y0:    i * bandHeight,
			y1:    min((i+1)*bandHeight, height),
		}
	}
	return res
}

// bandTasks returns one task per band.
func bandTasks(bands []band, fn func(b band)) []func() {
	tasks := make([]func(), len(bands))
	for i, b := range bands {
		tasks[i] = func() { fn(b) }
	}
	return tasks
}
