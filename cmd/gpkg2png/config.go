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
	"encoding/hex"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/overlay"
)

// Format is the type of the input file.
type Format int

// These are the supported input formats.
const (
	FormatGPKG Format = iota
	FormatGeoJSON
)

func (f Format) String() string {
	switch f {
	case FormatGPKG:
		return "gpkg"
	case FormatGeoJSON:
		return "geojson"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// metresPerDegree is the length of one degree of latitude, used to
// convert a scale in metres per pixel to degrees per pixel.
const metresPerDegree = 111319.0

// Config is the validated command line configuration.
type Config struct {
	Input     string
	OutputDir string
	Format    Format

	// BBox is the output region in WGS84 longitude/latitude.  If HasBBox
	// is false, the region is derived from the input.
	BBox    overlay.BBox
	HasBBox bool

	// Exactly one of Resolution (degrees per pixel) and Scale (metres
	// per pixel) is non-zero.
	Resolution float64
	Scale      float64

	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth int

	Layer      string // GeoPackage only
	OutputName string // GeoJSON only, without extension

	Workers    int
	BandHeight int
	TIFF       bool
	LogLevel   slog.Level
}

// ConfigError reports an invalid command line option.
type ConfigError struct {
	Option string
	Msg    string
}

func (err *ConfigError) Error() string {
	if err.Option == "" {
		return err.Msg
	}
	return "-" + err.Option + ": " + err.Msg
}

// parseArgs parses and validates the command line arguments.  Options and
// the input file name may be given in any order.
func parseArgs(args []string, errOut io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("gpkg2png", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintln(errOut, "usage: gpkg2png [options] input.gpkg|input.geojson")
		fs.PrintDefaults()
	}

	outputDir := fs.String("o", ".", "output `directory`")
	bbox := fs.String("bbox", "", "output region `minlon,minlat,maxlon,maxlat` (default: extent of the input)")
	resolution := fs.Float64("resolution", 0, "pixel size in `degrees` (excludes -scale)")
	scale := fs.Float64("scale", 0, "pixel size in `metres` (excludes -resolution)")
	fill := fs.String("fill", "FF000080", "fill colour as `RRGGBBAA`")
	stroke := fs.String("stroke", "FF0000", "outline colour as `RRGGBB`")
	strokeWidth := fs.Int("stroke-width", 1, "outline width in `pixels`, 0 to disable")
	layer := fs.String("layer", "", "render only this GeoPackage `layer`")
	format := fs.String("f", "", "input `format`, gpkg or geojson (default: from the file name)")
	outputName := fs.String("output-name", "", "output file `name` without extension (GeoJSON only)")
	workers := fs.Int("workers", 0, "number of rendering goroutines (default: GOMAXPROCS)")
	bandHeight := fs.Int("band-height", overlay.DefaultBandHeight, "image rows per rendering task")
	quiet := fs.Bool("q", false, "only report errors")
	verbose := fs.Bool("v", false, "show debug output")
	useTIFF := fs.Bool("tiff", false, "write TIFF instead of PNG")

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if len(positional) != 1 {
		return nil, &ConfigError{Msg: "exactly one input file is required"}
	}

	cfg := &Config{
		Input:       positional[0],
		OutputDir:   *outputDir,
		StrokeWidth: *strokeWidth,
		Layer:       *layer,
		Workers:     *workers,
		BandHeight:  *bandHeight,
		TIFF:        *useTIFF,
		LogLevel:    slog.LevelInfo,
	}

	switch {
	case !set["resolution"] && !set["scale"]:
		return nil, &ConfigError{Msg: "one of -resolution or -scale is required"}
	case set["resolution"] && set["scale"]:
		return nil, &ConfigError{Option: "scale", Msg: "-resolution and -scale are mutually exclusive"}
	case set["resolution"]:
		if !(*resolution > 0) || math.IsInf(*resolution, 0) {
			return nil, &ConfigError{Option: "resolution", Msg: "resolution must be positive"}
		}
		cfg.Resolution = *resolution
	default:
		if !(*scale > 0) || math.IsInf(*scale, 0) {
			return nil, &ConfigError{Option: "scale", Msg: "scale must be positive"}
		}
		cfg.Scale = *scale
	}

	if set["bbox"] {
		b, err := parseBBox(*bbox)
		if err != nil {
			return nil, err
		}
		cfg.BBox = b
		cfg.HasBBox = true
	}

	var err error
	cfg.Fill, err = parseColor("fill", *fill, 4)
	if err != nil {
		return nil, err
	}
	cfg.Stroke, err = parseColor("stroke", *stroke, 3)
	if err != nil {
		return nil, err
	}
	if cfg.StrokeWidth < 0 {
		return nil, &ConfigError{Option: "stroke-width", Msg: "must not be negative"}
	}

	cfg.Format, err = parseFormat(*format, cfg.Input)
	if err != nil {
		return nil, err
	}
	switch cfg.Format {
	case FormatGeoJSON:
		if set["layer"] {
			return nil, &ConfigError{Option: "layer", Msg: "-layer cannot be used with geojson format"}
		}
		cfg.OutputName = *outputName
		if cfg.OutputName == "" {
			base := filepath.Base(cfg.Input)
			cfg.OutputName = strings.TrimSuffix(base, filepath.Ext(base))
		}
	case FormatGPKG:
		if set["output-name"] {
			return nil, &ConfigError{Option: "output-name", Msg: "-output-name can only be used with geojson format"}
		}
	}

	switch {
	case *quiet && *verbose:
		return nil, &ConfigError{Option: "v", Msg: "-q and -v are mutually exclusive"}
	case *quiet:
		cfg.LogLevel = slog.LevelError
	case *verbose:
		cfg.LogLevel = slog.LevelDebug
	}

	return cfg, nil
}

// resolutionFor returns the pixel size in degrees.  A scale given in
// metres per pixel is converted at the latitude of the centre of bbox.
func (cfg *Config) resolutionFor(bbox overlay.BBox) float64 {
	if cfg.Resolution > 0 {
		return cfg.Resolution
	}
	centreLat := (bbox.LLy + bbox.URy) / 2
	return cfg.Scale / (metresPerDegree * math.Cos(centreLat*math.Pi/180))
}

func parseBBox(s string) (overlay.BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return overlay.BBox{}, &ConfigError{
			Option: "bbox",
			Msg:    fmt.Sprintf("expected 4 comma-separated values, got %d", len(parts)),
		}
	}
	var v [4]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return overlay.BBox{}, &ConfigError{Option: "bbox", Msg: fmt.Sprintf("invalid number %q", p)}
		}
		v[i] = x
	}

	b := overlay.BBox{LLx: v[0], LLy: v[1], URx: v[2], URy: v[3]}
	if b.LLx >= b.URx {
		return overlay.BBox{}, &ConfigError{
			Option: "bbox",
			Msg:    fmt.Sprintf("min_lon (%g) must be less than max_lon (%g)", b.LLx, b.URx),
		}
	}
	if b.LLy >= b.URy {
		return overlay.BBox{}, &ConfigError{
			Option: "bbox",
			Msg:    fmt.Sprintf("min_lat (%g) must be less than max_lat (%g)", b.LLy, b.URy),
		}
	}
	return b, nil
}

// parseColor parses a colour given as 3 (RGB) or 4 (RGBA) hex bytes.
// RGB colours are opaque.
func parseColor(option, s string, n int) (color.NRGBA, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.NRGBA{}, &ConfigError{Option: option, Msg: fmt.Sprintf("invalid colour %q", s)}
	}
	if len(b) != n {
		return color.NRGBA{}, &ConfigError{
			Option: option,
			Msg:    fmt.Sprintf("colour must be %d hex digits, got %d", 2*n, len(s)),
		}
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xFF}
	if n == 4 {
		c.A = b[3]
	}
	return c, nil
}

func parseFormat(s, input string) (Format, error) {
	switch strings.ToLower(s) {
	case "gpkg":
		return FormatGPKG, nil
	case "geojson":
		return FormatGeoJSON, nil
	case "":
		switch strings.ToLower(filepath.Ext(input)) {
		case ".geojson", ".json":
			return FormatGeoJSON, nil
		default:
			return FormatGPKG, nil
		}
	}
	return 0, &ConfigError{Option: "f", Msg: fmt.Sprintf("unknown format %q", s)}
}
