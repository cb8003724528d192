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

package input

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"

	// registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"seehuhn.de/go/overlay"
)

// Layer describes a feature table with a polygon geometry column.
type Layer struct {
	Name           string
	GeometryColumn string
	SRSID          int
}

// GeoPackage is a GeoPackage file opened for reading.
type GeoPackage struct {
	db *sql.DB

	// Workers is the number of goroutines used for reprojection.
	// If Workers <= 0, GOMAXPROCS is used.
	Workers int
}

// OpenGeoPackage opens a GeoPackage file in read-only mode.
func OpenGeoPackage(ctx context.Context, path string) (*GeoPackage, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dsn := "file:" + (&url.URL{Path: filepath.ToSlash(abs)}).EscapedPath() + "?mode=ro"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &GeoPackage{db: db}, nil
}

// Close closes the underlying database.
func (g *GeoPackage) Close() error {
	return g.db.Close()
}

// ListPolygonLayers returns all feature tables whose geometry type is
// POLYGON or MULTIPOLYGON.
func (g *GeoPackage) ListPolygonLayers(ctx context.Context) ([]Layer, error) {
	rows, err := g.db.QueryContext(ctx, `
		SELECT c.table_name, g.column_name, g.srs_id
		FROM gpkg_contents c
		JOIN gpkg_geometry_columns g ON c.table_name = g.table_name
		WHERE c.data_type = 'features'
		AND upper(g.geometry_type_name) LIKE '%POLYGON%'
		ORDER BY c.table_name`)
	if err != nil {
		return nil, fmt.Errorf("listing layers: %w", err)
	}
	defer rows.Close()

	var layers []Layer
	for rows.Next() {
		var l Layer
		if err := rows.Scan(&l.Name, &l.GeometryColumn, &l.SRSID); err != nil {
			return nil, fmt.Errorf("listing layers: %w", err)
		}
		layers = append(layers, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing layers: %w", err)
	}
	return layers, nil
}

// FindLayer returns the polygon layer with the given name.
// If there is no such layer, a *LayerNotFoundError is returned.
func (g *GeoPackage) FindLayer(ctx context.Context, name string) (Layer, error) {
	layers, err := g.ListPolygonLayers(ctx)
	if err != nil {
		return Layer{}, err
	}
	names := make([]string, len(layers))
	for i, l := range layers {
		if l.Name == name {
			return l, nil
		}
		names[i] = l.Name
	}
	return Layer{}, &LayerNotFoundError{Name: name, Available: names}
}

// SRSDefinition returns the definition of a spatial reference system,
// normally in OGC WKT format.
func (g *GeoPackage) SRSDefinition(ctx context.Context, srsID int) (string, error) {
	var def string
	err := g.db.QueryRowContext(ctx,
		"SELECT definition FROM gpkg_spatial_ref_sys WHERE srs_id = ?", srsID).Scan(&def)
	if err != nil {
		return "", fmt.Errorf("SRS %d: %w", srsID, err)
	}
	return def, nil
}

// ReadLayer reads all polygons of a layer and reprojects them to WGS84.
// Rows which cannot be decoded, which hold other geometry types, or which
// fail to reproject are skipped.
func (g *GeoPackage) ReadLayer(ctx context.Context, layer Layer) ([]overlay.MultiPolygon, error) {
	geoms, err := g.readRaw(ctx, layer)
	if err != nil {
		return nil, err
	}

	p, err := g.projection(ctx, layer.SRSID)
	if err != nil {
		return nil, err
	}
	geoms = reprojectAll(geoms, p, g.Workers)

	res := make([]overlay.MultiPolygon, 0, len(geoms))
	for _, mp := range geoms {
		if m, ok := toMultiPolygon(mp); ok {
			res = append(res, m)
		}
	}
	return res, nil
}

// LayerBounds returns the extent of a layer in WGS84, computed from the
// bounds stored in gpkg_contents.  The second return value is false if
// the GeoPackage does not record the extent.
func (g *GeoPackage) LayerBounds(ctx context.Context, layer Layer) (overlay.BBox, bool, error) {
	var minX, minY, maxX, maxY sql.NullFloat64
	err := g.db.QueryRowContext(ctx,
		"SELECT min_x, min_y, max_x, max_y FROM gpkg_contents WHERE table_name = ?",
		layer.Name).Scan(&minX, &minY, &maxX, &maxY)
	if err != nil {
		return overlay.BBox{}, false, fmt.Errorf("layer %q: %w", layer.Name, err)
	}
	if !minX.Valid || !minY.Valid || !maxX.Valid || !maxY.Valid {
		return overlay.BBox{}, false, nil
	}

	p, err := g.projection(ctx, layer.SRSID)
	if err != nil {
		return overlay.BBox{}, false, err
	}
	b := orb.Bound{
		Min: orb.Point{minX.Float64, minY.Float64},
		Max: orb.Point{maxX.Float64, maxY.Float64},
	}
	bbox, ok := reprojectBound(b, p)
	return bbox, ok, nil
}

func (g *GeoPackage) projection(ctx context.Context, srsID int) (orb.Projection, error) {
	if srsID == srsWGS84 || srsID == srsWebMercator || srsID == srsGoogleLegacy {
		return toWGS84(srsID, "")
	}
	def, err := g.SRSDefinition(ctx, srsID)
	if err != nil {
		return nil, err
	}
	return toWGS84(srsID, def)
}

func (g *GeoPackage) readRaw(ctx context.Context, layer Layer) ([]orb.MultiPolygon, error) {
	query := "SELECT " + quoteIdent(layer.GeometryColumn) + " FROM " + quoteIdent(layer.Name)
	rows, err := g.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", layer.Name, err)
	}
	defer rows.Close()

	var res []orb.MultiPolygon
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("layer %q: %w", layer.Name, err)
		}
		geom, err := decodeGeometry(blob)
		if err != nil {
			continue
		}
		switch geom := geom.(type) {
		case orb.Polygon:
			res = append(res, orb.MultiPolygon{geom})
		case orb.MultiPolygon:
			res = append(res, geom)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("layer %q: %w", layer.Name, err)
	}
	return res, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// envelopeSize maps the envelope contents indicator of a GeoPackage
// geometry header to the size of the envelope in bytes.
var envelopeSize = [...]int{0, 32, 48, 48, 64}

// errEmptyGeometry marks blobs with the "empty geometry" header flag.
var errEmptyGeometry = errors.New("empty geometry")

// decodeGeometry decodes a GeoPackage geometry blob.  Blobs without the
// "GP" magic number are decoded as plain WKB.
func decodeGeometry(blob []byte) (orb.Geometry, error) {
	if len(blob) < 8 {
		return nil, ErrBadGPKGHeader
	}
	if blob[0] != 'G' || blob[1] != 'P' {
		return wkb.Unmarshal(blob)
	}

	flags := blob[3]
	env := int(flags>>1) & 0x07
	if env >= len(envelopeSize) {
		return nil, ErrBadGPKGHeader
	}
	if flags&0x10 != 0 {
		return nil, errEmptyGeometry
	}
	start := 8 + envelopeSize[env]
	if len(blob) <= start {
		return nil, ErrBadGPKGHeader
	}
	return wkb.Unmarshal(blob[start:])
}
