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
	"log/slog"
	"time"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/overlay/internal/parallel"
)

// RenderConfig describes the output image of a Renderer.
type RenderConfig struct {
	// BBox is the region covered by the image, in the coordinate system of
	// the input geometries.
	BBox BBox

	// Resolution is the side length of a pixel, in input units.
	// Must be > 0.
	Resolution float64

	// Fill is the colour used for polygon interiors.
	Fill color.NRGBA

	// Stroke is the outline colour.  The alpha channel is ignored;
	// outlines are always drawn opaque.
	Stroke color.NRGBA

	// StrokeWidth is the side length of the square brush used for outlines,
	// in pixels.  Zero disables outlines.
	StrokeWidth int

	// Workers is the number of goroutines used for rendering.
	// If Workers <= 0, GOMAXPROCS is used.
	Workers int

	// BandHeight is the number of image rows per task.
	// If BandHeight <= 0, DefaultBandHeight is used.
	BandHeight int

	// Logger receives debug output.  If Logger is nil, nothing is logged.
	Logger *slog.Logger
}

// Renderer draws geometries into an image.
type Renderer struct {
	cfg    RenderConfig
	mapper *Mapper
	img    *image.NRGBA
	log    *slog.Logger

	width, height int
	bandHeight    int
}

// New validates the configuration and allocates a fully transparent image.
// If the image would be wider or taller than MaxDimension pixels, an
// *ImageTooLargeError is returned and no memory is allocated.
func New(cfg RenderConfig) (*Renderer, error) {
	width, height, err := Dimensions(cfg.BBox, cfg.Resolution)
	if err != nil {
		return nil, err
	}
	if width > MaxDimension || height > MaxDimension {
		return nil, &ImageTooLargeError{
			Width:  width,
			Height: height,
			Max:    MaxDimension,
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = newNopLogger()
	}
	bandHeight := cfg.BandHeight
	if bandHeight <= 0 {
		bandHeight = DefaultBandHeight
	}
	if cfg.StrokeWidth < 0 {
		cfg.StrokeWidth = 0
	}

	logger.Debug("new renderer",
		"width", width,
		"height", height,
		"resolution", cfg.Resolution)

	return &Renderer{
		cfg:        cfg,
		mapper:     NewMapper(cfg.BBox, cfg.Resolution, height),
		img:        image.NewNRGBA(image.Rect(0, 0, width, height)),
		log:        logger,
		width:      width,
		height:     height,
		bandHeight: bandHeight,
	}, nil
}

// Dimensions returns the width and height of the image in pixels.
func (r *Renderer) Dimensions() (width, height int) {
	return r.width, r.height
}

// Render draws the given geometries.  All interiors are filled first, then
// all outlines are drawn on top.  Later geometries are composited over
// earlier ones, and repeated calls draw over the result of previous calls.
//
// Render panics if called after Finish.
func (r *Renderer) Render(geoms ...MultiPolygon) {
	if r.img == nil {
		panic("overlay: Render called after Finish")
	}
	if len(geoms) == 0 || r.height == 0 || r.width == 0 {
		return
	}

	start := time.Now()
	paths := make([]*path.Data, len(geoms))
	for i, mp := range geoms {
		paths[i] = r.mapper.screenPath(mp)
	}

	bands := makeBands(r.height, r.bandHeight)
	pool := parallel.NewWorkerPool(r.cfg.Workers)
	defer pool.Close()

	if r.cfg.Fill.A > 0 {
		t := newEdgeTable(r.height, r.bandHeight)
		for i, p := range paths {
			t.addPath(p, i)
		}
		pool.ExecuteAll(bandTasks(bands, func(b band) {
			fillBand(r.img, t, b, r.cfg.Fill)
		}))
		r.log.Debug("fill done",
			"geometries", len(geoms),
			"edges", t.count,
			"bands", len(bands),
			"workers", pool.Workers(),
			"elapsed", time.Since(start))
	}

	if r.cfg.StrokeWidth > 0 {
		strokeStart := time.Now()
		t := newStrokeTable(r.width, r.height, r.bandHeight, r.cfg.StrokeWidth)
		for _, p := range paths {
			t.addPath(p)
		}
		col := r.cfg.Stroke
		col.A = 0xFF
		pool.ExecuteAll(bandTasks(bands, func(b band) {
			strokeBand(r.img, t, b, col)
		}))
		r.log.Debug("stroke done",
			"segments", t.count,
			"width", r.cfg.StrokeWidth,
			"elapsed", time.Since(strokeStart))
	}
}

// Finish returns the rendered image.  The Renderer must not be used
// afterwards.
func (r *Renderer) Finish() *image.NRGBA {
	img := r.img
	r.img = nil
	return img
}
