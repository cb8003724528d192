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

// Command genpdf generates reference images for the rendering tests.
// It writes every test case as a PDF file and converts the PDF files to
// PNG using Ghostscript.  Polygons are painted white on black, so that the
// grey value of a pixel is the coverage.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/overlay/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	w, h := tc.Size()

	// one PDF point per pixel
	paper := &pdf.Rectangle{
		URx: float64(w),
		URy: float64(h),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(w), float64(h))
	page.Fill()

	// PDF user space has y pointing up, like the world coordinates, so
	// only translation and scaling are needed.
	res := tc.Resolution
	page.Transform(matrix.Translate(-tc.BBox.LLx, -tc.BBox.LLy).
		Mul(matrix.Scale(1/res, 1/res)))

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	for _, g := range tc.Geoms {
		addGeometry(page, g)
		page.FillEvenOdd()
	}

	if tc.StrokeWidth > 0 {
		// A square brush moved along a segment approximates a
		// line with square caps.
		page.SetLineWidth(float64(tc.StrokeWidth) * res)
		page.SetLineCap(graphics.LineCapSquare)
		page.SetLineJoin(graphics.LineJoinMiter)
		page.SetMiterLimit(10)
		for _, g := range tc.Geoms {
			addGeometry(page, g)
			page.Stroke()
		}
	}

	return page.Close()
}

func addGeometry(page *document.Page, g testcases.Geometry) {
	for _, poly := range g {
		for _, ring := range poly {
			if len(ring) == 0 {
				continue
			}
			page.MoveTo(ring[0].X, ring[0].Y)
			for _, p := range ring[1:] {
				page.LineTo(p.X, p.Y)
			}
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, like the renderer
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
