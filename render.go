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

// Package overlay renders polygon geometries into transparent raster
// images.
//
// Polygons are filled with the even-odd rule and their rings can be
// outlined with a square brush.  The image is split into horizontal bands
// which are processed in parallel.  Every band task owns the rows of its
// band, so no locking of the pixel buffer is needed.
package overlay

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
