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

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/overlay"
)

func parse(args ...string) (*Config, error) {
	return parseArgs(args, io.Discard)
}

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parse("-resolution", "0.001", "data.gpkg")
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Input:       "data.gpkg",
		OutputDir:   ".",
		Format:      FormatGPKG,
		Resolution:  0.001,
		Fill:        color.NRGBA{R: 0xFF, A: 0x80},
		Stroke:      color.NRGBA{R: 0xFF, A: 0xFF},
		StrokeWidth: 1,
		BandHeight:  overlay.DefaultBandHeight,
		LogLevel:    slog.LevelInfo,
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config mismatch (-want +got):\n%s", d)
	}
}

func TestParseArgs(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		check func(*testing.T, *Config)
	}{
		{
			name: "input_first",
			args: []string{"in.gpkg", "-resolution", "0.5", "-o", "out"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Input != "in.gpkg" || cfg.OutputDir != "out" || cfg.Resolution != 0.5 {
					t.Errorf("got %+v", cfg)
				}
			},
		},
		{
			name: "scale_only",
			args: []string{"-scale", "10", "in.gpkg"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Scale != 10 || cfg.Resolution != 0 {
					t.Errorf("scale=%g resolution=%g", cfg.Scale, cfg.Resolution)
				}
			},
		},
		{
			name: "bbox",
			args: []string{"-resolution", "0.01", "-bbox", "-4.5, 48.0, -4.0, 48.5", "in.gpkg"},
			check: func(t *testing.T, cfg *Config) {
				want := overlay.BBox{LLx: -4.5, LLy: 48, URx: -4, URy: 48.5}
				if !cfg.HasBBox || cfg.BBox != want {
					t.Errorf("bbox = %v (%t), want %v", cfg.BBox, cfg.HasBBox, want)
				}
			},
		},
		{
			name: "no_bbox",
			args: []string{"-resolution", "0.01", "in.gpkg"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.HasBBox {
					t.Error("unexpected bbox")
				}
			},
		},
		{
			name: "colours",
			args: []string{"-resolution", "1", "-fill", "00ff0040", "-stroke", "0000FF", "in.gpkg"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Fill != (color.NRGBA{G: 0xFF, A: 0x40}) {
					t.Errorf("fill = %v", cfg.Fill)
				}
				if cfg.Stroke != (color.NRGBA{B: 0xFF, A: 0xFF}) {
					t.Errorf("stroke = %v", cfg.Stroke)
				}
			},
		},
		{
			name: "geojson_default_name",
			args: []string{"-resolution", "1", "-f", "geojson", "dir/test.geojson"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Format != FormatGeoJSON || cfg.OutputName != "test" {
					t.Errorf("format=%v name=%q", cfg.Format, cfg.OutputName)
				}
			},
		},
		{
			name: "geojson_custom_name",
			args: []string{"-resolution", "1", "-f", "geojson", "-output-name", "custom", "test.geojson"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.OutputName != "custom" {
					t.Errorf("name = %q", cfg.OutputName)
				}
			},
		},
		{
			name: "format_from_extension",
			args: []string{"-resolution", "1", "areas.JSON"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Format != FormatGeoJSON || cfg.OutputName != "areas" {
					t.Errorf("format=%v name=%q", cfg.Format, cfg.OutputName)
				}
			},
		},
		{
			name: "quiet",
			args: []string{"-q", "-resolution", "1", "in.gpkg"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.LogLevel != slog.LevelError {
					t.Errorf("level = %v", cfg.LogLevel)
				}
			},
		},
		{
			name: "verbose",
			args: []string{"-v", "-resolution", "1", "in.gpkg", "-workers", "3", "-band-height", "8", "-tiff"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.LogLevel != slog.LevelDebug || cfg.Workers != 3 || cfg.BandHeight != 8 || !cfg.TIFF {
					t.Errorf("got %+v", cfg)
				}
			},
		},
		{
			name: "no_stroke",
			args: []string{"-resolution", "1", "-stroke-width", "0", "in.gpkg"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.StrokeWidth != 0 {
					t.Errorf("stroke width = %d", cfg.StrokeWidth)
				}
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := parse(c.args...)
			if err != nil {
				t.Fatal(err)
			}
			c.check(t, cfg)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		msg  []string
	}{
		{"no_input", []string{"-resolution", "1"}, []string{"input file"}},
		{"two_inputs", []string{"-resolution", "1", "a.gpkg", "b.gpkg"}, []string{"input file"}},
		{"neither", []string{"in.gpkg"}, []string{"resolution", "scale"}},
		{"both", []string{"-resolution", "1", "-scale", "10", "in.gpkg"}, []string{"mutually exclusive"}},
		{"zero_resolution", []string{"-resolution", "0", "in.gpkg"}, []string{"resolution must be positive"}},
		{"negative_resolution", []string{"-resolution", "-1", "in.gpkg"}, []string{"resolution must be positive"}},
		{"zero_scale", []string{"-scale", "0", "in.gpkg"}, []string{"scale must be positive"}},
		{"negative_scale", []string{"-scale", "-5", "in.gpkg"}, []string{"scale must be positive"}},
		{"bbox_count", []string{"-resolution", "1", "-bbox", "1,2,3", "in.gpkg"}, []string{"expected 4"}},
		{"bbox_number", []string{"-resolution", "1", "-bbox", "a,2,3,4", "in.gpkg"}, []string{"invalid number"}},
		{"bbox_nan", []string{"-resolution", "1", "-bbox", "NaN,2,3,4", "in.gpkg"}, []string{"invalid number"}},
		{"bbox_lon", []string{"-resolution", "1", "-bbox", "5,0,4,1", "in.gpkg"}, []string{"min_lon", "must be less than"}},
		{"bbox_lat", []string{"-resolution", "1", "-bbox", "0,5,1,4", "in.gpkg"}, []string{"min_lat", "must be less than"}},
		{"bbox_equal", []string{"-resolution", "1", "-bbox", "1,0,1,1", "in.gpkg"}, []string{"min_lon"}},
		{"fill_length", []string{"-resolution", "1", "-fill", "FF0000", "in.gpkg"}, []string{"8 hex digits"}},
		{"fill_hex", []string{"-resolution", "1", "-fill", "GG000080", "in.gpkg"}, []string{"invalid colour"}},
		{"stroke_length", []string{"-resolution", "1", "-stroke", "FF000080", "in.gpkg"}, []string{"6 hex digits"}},
		{"stroke_width", []string{"-resolution", "1", "-stroke-width", "-1", "in.gpkg"}, []string{"stroke-width"}},
		{"format", []string{"-resolution", "1", "-f", "shp", "in.shp"}, []string{"unknown format"}},
		{"geojson_layer", []string{"-resolution", "1", "-f", "geojson", "-layer", "x", "in.geojson"},
			[]string{"-layer cannot be used with geojson format"}},
		{"gpkg_output_name", []string{"-resolution", "1", "-f", "gpkg", "-output-name", "x", "in.gpkg"},
			[]string{"-output-name can only be used with geojson format"}},
		{"quiet_verbose", []string{"-resolution", "1", "-q", "-v", "in.gpkg"}, []string{"mutually exclusive"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parse(c.args...)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
			for _, m := range c.msg {
				if !strings.Contains(err.Error(), m) {
					t.Errorf("error %q does not mention %q", err, m)
				}
			}
		})
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	_, err := parse("-resolution", "1", "-nonsense", "in.gpkg")
	if err == nil {
		t.Fatal("expected an error")
	}
	_, err = parse("-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h: got %v, want flag.ErrHelp", err)
	}
}

func TestResolutionFor(t *testing.T) {
	approx := cmpopts.EquateApprox(1e-6, 0)
	cases := []struct {
		name string
		cfg  Config
		lat  float64
		want float64
	}{
		{"resolution", Config{Resolution: 0.25}, 60, 0.25},
		{"equator", Config{Scale: 10}, 0, 10 / 111319.0},
		{"france", Config{Scale: 10}, 48, 10 / (111319.0 * math.Cos(48*math.Pi/180))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bbox := overlay.BBox{LLx: 0, LLy: c.lat - 1, URx: 1, URy: c.lat + 1}
			got := c.cfg.resolutionFor(bbox)
			if !cmp.Equal(got, c.want, approx) {
				t.Errorf("got %g, want %g", got, c.want)
			}
		})
	}

	// 10 m/pixel at the equator is about 8.98e-5 degrees
	cfg := Config{Scale: 10}
	if got := cfg.resolutionFor(overlay.BBox{URx: 1, LLy: -1, URy: 1}); math.Abs(got-0.0000898315) > 1e-7 {
		t.Errorf("equator: got %g", got)
	}
}

const square = `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "properties": {"name": ""},
   "geometry": {"type": "Polygon", "coordinates": [[[2, 2], [8, 2], [8, 8], [2, 8], [2, 2]]]}}
]}`

func TestRunGeoJSON(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "square.geojson")
	if err := os.WriteFile(in, []byte(square), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")

	for _, useTIFF := range []bool{false, true} {
		args := []string{"-resolution", "1", "-bbox", "0,0,10,10", "-o", outDir, "-fill", "FF0000FF", in}
		ext := ".png"
		if useTIFF {
			args = append([]string{"-tiff"}, args...)
			ext = ".tif"
		}
		cfg, err := parse(args...)
		if err != nil {
			t.Fatal(err)
		}

		stdout := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		if err := run(context.Background(), cfg, logger, stdout); err != nil {
			t.Fatal(err)
		}

		want := filepath.Join(outDir, "square"+ext)
		if got := strings.TrimSpace(stdout.String()); got != want {
			t.Errorf("printed %q, want %q", got, want)
		}

		f, err := os.Open(want)
		if err != nil {
			t.Fatal(err)
		}
		var img image.Image
		if useTIFF {
			img, err = tiff.Decode(f)
		} else {
			img, err = png.Decode(f)
		}
		f.Close()
		if err != nil {
			t.Fatal(err)
		}

		if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
			t.Fatalf("size %v, want 10x10", b)
		}
		inside := color.NRGBAModel.Convert(img.At(5, 5)).(color.NRGBA)
		if inside != (color.NRGBA{R: 0xFF, A: 0xFF}) {
			t.Errorf("(5,5) = %v, want opaque red", inside)
		}
		outside := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
		if outside.A != 0 {
			t.Errorf("(0,0) = %v, want transparent", outside)
		}
	}
}

func TestRunGeoJSONAutoBBox(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "square.geojson")
	if err := os.WriteFile(in, []byte(square), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := parse("-resolution", "0.5", "-o", dir, "-output-name", "auto", in)
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(context.Background(), cfg, logger, io.Discard); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "auto.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfgImg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfgImg.Width != 12 || cfgImg.Height != 12 {
		t.Errorf("size %dx%d, want 12x12", cfgImg.Width, cfgImg.Height)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"missing.gpkg", "missing.geojson"} {
		cfg, err := parse("-resolution", "1", "-o", dir, filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		err = run(context.Background(), cfg, logger, io.Discard)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: got %v, want os.ErrNotExist", name, err)
		}
	}
}
