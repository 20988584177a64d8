// Package geo holds the optional location column shared by drivers and merchants.
package geo

import (
	"bytes"
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// SRID of every stored point (WGS 84).
const SRID = 4326

var ErrNotAPoint = errors.New("geometry must be a GeoJSON Point")

// Point is a nullable WGS 84 point. It travels as GeoJSON and is stored as WKB.
type Point struct {
	p *geom.Point
}

// NewPoint builds a point from longitude and latitude.
func NewPoint(lng, lat float64) Point {
	return Point{p: geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{lng, lat}).SetSRID(SRID)}
}

// Valid reports whether the point carries coordinates.
func (p Point) Valid() bool {
	return p.p != nil
}

// IsZero lets omitzero drop empty points from JSON.
func (p Point) IsZero() bool {
	return p.p == nil
}

// Lng returns the longitude, or 0 for an empty point.
func (p Point) Lng() float64 {
	if p.p == nil {
		return 0
	}
	return p.p.X()
}

// Lat returns the latitude, or 0 for an empty point.
func (p Point) Lat() float64 {
	if p.p == nil {
		return 0
	}
	return p.p.Y()
}

func (p Point) MarshalJSON() ([]byte, error) {
	if p.p == nil {
		return []byte("null"), nil
	}
	return gjson.Marshal(p.p)
}

func (p *Point) UnmarshalJSON(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		p.p = nil
		return nil
	}
	var g geom.T
	if err := gjson.Unmarshal(data, &g); err != nil {
		return fmt.Errorf("parse geojson: %w", err)
	}
	pt, ok := g.(*geom.Point)
	if !ok {
		return ErrNotAPoint
	}
	if pt.Layout() != geom.XY {
		pt = geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{pt.X(), pt.Y()})
	}
	p.p = pt.SetSRID(SRID)
	return nil
}

// Value stores the point as little-endian WKB.
func (p Point) Value() (driver.Value, error) {
	if p.p == nil {
		return nil, nil
	}
	return wkb.Marshal(p.p, binary.LittleEndian)
}

func (p *Point) Scan(src any) error {
	if src == nil {
		p.p = nil
		return nil
	}
	raw, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("scan point: unsupported type %T", src)
	}
	if len(raw) == 0 {
		p.p = nil
		return nil
	}
	g, err := wkb.Unmarshal(raw)
	if err != nil {
		return fmt.Errorf("decode wkb: %w", err)
	}
	pt, ok := g.(*geom.Point)
	if !ok {
		return ErrNotAPoint
	}
	p.p = pt.SetSRID(SRID)
	return nil
}

// GormDataType keeps the column a plain bytea so PostGIS is not required.
func (Point) GormDataType() string {
	return "bytea"
}
