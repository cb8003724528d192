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

// Gpkg2png renders the polygon layers of a GeoPackage or GeoJSON file into
// transparent PNG images.
//
// Usage:
//
//	gpkg2png [options] input.gpkg|input.geojson
//
// For a GeoPackage, one image per polygon layer is written to the output
// directory, named after the layer.  For GeoJSON, a single image is
// written.  The path of every image is printed on standard output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"golang.org/x/image/tiff"

	"seehuhn.de/go/overlay"
	"seehuhn.de/go/overlay/input"
)

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "gpkg2png: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, logger, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gpkg2png: %v\n", err)
		os.Exit(1)
	}
}

// run renders all images described by cfg.  The names of the files
// written are printed to stdout, one per line.
func run(ctx context.Context, cfg *Config, logger *slog.Logger, stdout io.Writer) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}

	switch cfg.Format {
	case FormatGeoJSON:
		return runGeoJSON(cfg, logger, stdout)
	default:
		return runGeoPackage(ctx, cfg, logger, stdout)
	}
}

func runGeoJSON(cfg *Config, logger *slog.Logger, stdout io.Writer) error {
	start := time.Now()
	geoms, err := input.ReadGeoJSON(cfg.Input)
	if err != nil {
		return err
	}
	logger.Debug("read geojson", "file", cfg.Input, "geometries", len(geoms), "time", time.Since(start))

	bbox := cfg.BBox
	if !cfg.HasBBox {
		var ok bool
		bbox, ok = input.Bounds(geoms)
		if !ok {
			return errors.New("cannot determine bounding box, use -bbox")
		}
		logger.Info("using input extent", "bbox", formatBBox(bbox))
	}

	fname := filepath.Join(cfg.OutputDir, cfg.OutputName+cfg.extension())
	if err := renderToFile(fname, geoms, bbox, cfg, logger); err != nil {
		return err
	}
	fmt.Fprintln(stdout, fname)
	return nil
}

func runGeoPackage(ctx context.Context, cfg *Config, logger *slog.Logger, stdout io.Writer) error {
	gpkg, err := input.OpenGeoPackage(ctx, cfg.Input)
	if err != nil {
		return err
	}
	defer gpkg.Close()
	gpkg.Workers = cfg.Workers

	var layers []input.Layer
	if cfg.Layer != "" {
		layer, err := gpkg.FindLayer(ctx, cfg.Layer)
		if err != nil {
			return err
		}
		layers = []input.Layer{layer}
	} else {
		layers, err = gpkg.ListPolygonLayers(ctx)
		if err != nil {
			return err
		}
	}
	if len(layers) == 0 {
		logger.Warn("no polygon layers found", "file", cfg.Input)
		return nil
	}

	bbox := cfg.BBox
	if !cfg.HasBBox {
		bbox, err = layerExtent(ctx, gpkg, layers)
		if err != nil {
			return err
		}
		logger.Info("using layer extent", "bbox", formatBBox(bbox))
	}

	for _, layer := range layers {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		geoms, err := gpkg.ReadLayer(ctx, layer)
		if err != nil {
			return err
		}
		logger.Debug("read layer", "layer", layer.Name, "srs", layer.SRSID,
			"geometries", len(geoms), "time", time.Since(start))
		if len(geoms) == 0 {
			logger.Warn("layer has no polygons, skipped", "layer", layer.Name)
			continue
		}

		fname := filepath.Join(cfg.OutputDir, layer.Name+cfg.extension())
		if err := renderToFile(fname, geoms, bbox, cfg, logger); err != nil {
			return fmt.Errorf("layer %q: %w", layer.Name, err)
		}
		fmt.Fprintln(stdout, fname)
	}
	return nil
}

// layerExtent returns the union of the recorded extents of the given
// layers.
func layerExtent(ctx context.Context, gpkg *input.GeoPackage, layers []input.Layer) (overlay.BBox, error) {
	var res overlay.BBox
	found := false
	for _, layer := range layers {
		b, ok, err := gpkg.LayerBounds(ctx, layer)
		if err != nil {
			return overlay.BBox{}, err
		}
		if !ok {
			continue
		}
		if found {
			res.LLx = min(res.LLx, b.LLx)
			res.LLy = min(res.LLy, b.LLy)
			res.URx = max(res.URx, b.URx)
			res.URy = max(res.URy, b.URy)
		} else {
			res = b
			found = true
		}
	}
	if !found {
		return overlay.BBox{}, errors.New("layer extents not recorded in gpkg_contents, use -bbox")
	}
	return res, nil
}

func renderToFile(fname string, geoms []overlay.MultiPolygon, bbox overlay.BBox, cfg *Config, logger *slog.Logger) error {
	r, err := overlay.New(overlay.RenderConfig{
		BBox:        bbox,
		Resolution:  cfg.resolutionFor(bbox),
		Fill:        cfg.Fill,
		Stroke:      cfg.Stroke,
		StrokeWidth: cfg.StrokeWidth,
		Workers:     cfg.Workers,
		BandHeight:  cfg.BandHeight,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	w, h := r.Dimensions()
	logger.Info("rendering", "file", fname, "width", w, "height", h, "geometries", len(geoms))

	start := time.Now()
	r.Render(geoms...)
	img := r.Finish()
	logger.Debug("render done", "time", time.Since(start))

	start = time.Now()
	if err := writeImage(fname, img, cfg.TIFF); err != nil {
		return err
	}
	logger.Debug("write done", "file", fname, "time", time.Since(start))
	return nil
}

func writeImage(fname string, img image.Image, useTIFF bool) (err error) {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	if useTIFF {
		return tiff.Encode(out, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return png.Encode(out, img)
}

func (cfg *Config) extension() string {
	if cfg.TIFF {
		return ".tif"
	}
	return ".png"
}

func formatBBox(b overlay.BBox) string {
	return fmt.Sprintf("%g,%g,%g,%g", b.LLx, b.LLy, b.URx, b.URy)
}
