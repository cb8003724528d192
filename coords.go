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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BBox is a bounding box in the planar input coordinate system.
// LLx and LLy hold the minimum, URx and URy the maximum coordinates.
type BBox = rect.Rect

// MaxDimension is the largest image width or height accepted by New.
const MaxDimension = 20000

// maxInt32 bounds the values returned by Dimensions, so that absurd
// requests stay comparable instead of overflowing.
const maxInt32 = 1<<31 - 1

func checkResolution(res float64) error {
	if !(res > 0) || math.IsInf(res, 1) {
		return ErrInvalidResolution
	}
	return nil
}

func checkBBox(bbox BBox) error {
	for _, v := range []float64{bbox.LLx, bbox.LLy, bbox.URx, bbox.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidBBox
		}
	}
	if !(bbox.URx > bbox.LLx) || !(bbox.URy > bbox.LLy) {
		return ErrInvalidBBox
	}
	return nil
}

// Dimensions returns the size in pixels of an image which covers bbox
// with square pixels of side length res.
func Dimensions(bbox BBox, res float64) (width, height int, err error) {
	if err := checkResolution(res); err != nil {
		return 0, 0, err
	}
	if err := checkBBox(bbox); err != nil {
		return 0, 0, err
	}
	width = saturate(math.Ceil((bbox.URx - bbox.LLx) / res))
	height = saturate(math.Ceil((bbox.URy - bbox.LLy) / res))
	return width, height, nil
}

func saturate(v float64) int {
	if !(v < maxInt32) {
		return maxInt32
	}
	return int(v)
}

// Mapper converts between world coordinates and pixel coordinates.
// Pixel coordinates have the origin at the top-left image corner, with y
// growing downwards.
type Mapper struct {
	BBox       BBox
	Resolution float64
	Height     int

	// M maps world coordinates to pixel coordinates.
	M matrix.Matrix
}

// NewMapper returns the mapper for an image of the given height which
// covers bbox at resolution res.
func NewMapper(bbox BBox, res float64, height int) *Mapper {
	M := matrix.Translate(-bbox.LLx, -bbox.LLy).
		Mul(matrix.Scale(1/res, -1/res)).
		Mul(matrix.Translate(0, float64(height)))
	return &Mapper{
		BBox:       bbox,
		Resolution: res,
		Height:     height,
		M:          M,
	}
}

// WorldToScreen maps a world point to pixel coordinates.
func (m *Mapper) WorldToScreen(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m.M[0]*p.X + m.M[2]*p.Y + m.M[4],
		Y: m.M[1]*p.X + m.M[3]*p.Y + m.M[5],
	}
}

// ScreenToWorld maps pixel coordinates back to world coordinates.  The
// point is shifted by half a pixel, so integer positions map to pixel
// centres.
func (m *Mapper) ScreenToWorld(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m.BBox.LLx + (p.X+0.5)*m.Resolution,
		Y: m.BBox.LLy + (float64(m.Height)-(p.Y+0.5))*m.Resolution,
	}
}

// WorldToScreen maps a world point to pixel coordinates for an image of the
// given height covering bbox at resolution res.
func WorldToScreen(p vec.Vec2, bbox BBox, res float64, height int) vec.Vec2 {
	return NewMapper(bbox, res, height).WorldToScreen(p)
}

// ScreenToWorld is the inverse of WorldToScreen, sampling pixel centres.
func ScreenToWorld(p vec.Vec2, bbox BBox, res float64, height int) vec.Vec2 {
	return NewMapper(bbox, res, height).ScreenToWorld(p)
}
