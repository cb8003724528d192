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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"seehuhn.de/go/overlay/testcases"
)

var (
	white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tint  = color.NRGBA{R: 200, G: 40, B: 90, A: 0x70}
	blue  = color.NRGBA{R: 10, G: 20, B: 250, A: 0xFF}
)

// TestAgainstReference compares the coverage of every test case with the
// ghostscript rendering produced by "go generate".  Cases without a
// reference image are skipped.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				img, err := renderCase(tc, white, white, 0, 0)
				if err != nil {
					t.Fatal(err)
				}
				w, h := img.Rect.Dx(), img.Rect.Dy()
				if len(ref) != w*h {
					t.Fatalf("reference has %d pixels, want %dx%d", len(ref), w, h)
				}

				if err := compareImages(name, ref, coverage(img), w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// renderCase renders a test case with the given colours, worker count and
// band height.
func renderCase(tc testcases.TestCase, fill, stroke color.NRGBA, workers, bandHeight int) (*image.NRGBA, error) {
	r, err := New(RenderConfig{
		BBox:        tc.BBox,
		Resolution:  tc.Resolution,
		Fill:        fill,
		Stroke:      stroke,
		StrokeWidth: tc.StrokeWidth,
		Workers:     workers,
		BandHeight:  bandHeight,
	})
	if err != nil {
		return nil, err
	}
	r.Render(convertGeometries(tc.Geoms)...)
	return r.Finish(), nil
}

func convertGeometries(geoms []testcases.Geometry) []MultiPolygon {
	res := make([]MultiPolygon, len(geoms))
	for i, g := range geoms {
		mp := make(MultiPolygon, 0, len(g))
		for _, poly := range g {
			if len(poly) == 0 {
				continue
			}
			p := Polygon{Exterior: Ring(poly[0])}
			for _, hole := range poly[1:] {
				p.Holes = append(p.Holes, Ring(hole))
			}
			mp = append(mp, p)
		}
		res[i] = mp
	}
	return res
}

// coverage returns the alpha channel of img.
func coverage(img *image.NRGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	res := make([]byte, w*h)
	for y := range h {
		row := img.Pix[y*img.Stride:]
		for x := range w {
			res[y*w+x] = row[4*x+3]
		}
	}
	return res
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)

	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareImages checks that the two coverage maps agree away from the
// polygon boundaries.  Ghostscript fills every pixel touched by a shape
// while we sample pixel centres, so single pixel differences along edges
// are expected.
func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h

	diffs := make([]int, total)
	for i := range total {
		diff := int(expected[i]) - int(actual[i])
		if diff < 0 {
			diff = -diff
		}
		diffs[i] = diff
	}
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]

	// at least 80% of pixels identical, and at least 95% within a
	// half-strength difference
	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 128 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <128)", p95))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage writes a side-by-side image to debug/: expected,
// actual, and the difference in red (missing) and green (extra).
func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0o755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, 3*w, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			e, a := expected[i], actual[i]
			img.Set(x, y, color.RGBA{R: e, G: e, B: e, A: 255})
			img.Set(w+x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			var d color.RGBA
			d.A = 255
			if e > a {
				d.R = e - a
			} else {
				d.G = a - e
			}
			img.Set(2*w+x, y, d)
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
