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
)

// Over composites src over dst with the Porter-Duff "source over" operator.
// Both colours are non-premultiplied.  If the result is fully transparent,
// dst is returned unchanged.
func Over(dst, src color.NRGBA) color.NRGBA {
	switch {
	case src.A == 0xFF:
		return src
	case src.A == 0:
		return dst
	}

	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	outA := sa + da*(1-sa)
	if outA == 0 {
		return dst
	}

	dw := da * (1 - sa)
	channel := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*dw) / outA
		return uint8(math.Round(min(v, 255)))
	}
	return color.NRGBA{
		R: channel(src.R, dst.R),
		G: channel(src.G, dst.G),
		B: channel(src.B, dst.B),
		A: uint8(math.Round(outA * 255)),
	}
}

// BlendPixel composites src onto the pixel at (x, y).
// Points outside the image are ignored.
func BlendPixel(img *image.NRGBA, x, y int, src color.NRGBA) {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return
	}
	blendAt(img.Pix, img.PixOffset(x, y), src)
}

// blendAt composites src onto the pixel stored at pix[i:i+4].
func blendAt(pix []uint8, i int, src color.NRGBA) {
	s := pix[i : i+4 : i+4]
	dst := color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
	out := Over(dst, src)
	s[0], s[1], s[2], s[3] = out.R, out.G, out.B, out.A
}
