// Package wkt reads and writes geometries as Well-Known Text.
//
// Output follows the PostGIS ST_AsText layout:
//
//	POINT(1 2)
//	LINESTRING(1 2,3 4)
//	POLYGON((0 0,10 0,10 10,0 0),(2 2,4 2,4 4,2 2))
//	MULTIPOINT(1 2,3 4)
//	GEOMETRYCOLLECTION(POINT(1 2),LINESTRING(1 2,3 4))
//
// Coordinates use the shortest decimal form that round-trips to the same
// float64. Empty collections are written as "TYPE EMPTY"; both that form and
// "TYPE()" are accepted on read.
package wkt

import (
	"strconv"
	"strings"

	"github.com/beetlebugorg/geokit/pkg/geometry"
)

// Options controls WKT output.
type Options struct {
	// StrictOGCMultiPoint wraps each MultiPoint member in parentheses,
	// MULTIPOINT((1 2),(3 4)), instead of the PostGIS form MULTIPOINT(1 2,3 4).
	StrictOGCMultiPoint bool
}

// DefaultOptions returns PostGIS-compatible output options.
func DefaultOptions() Options {
	return Options{}
}

// Codec converts geometries to and from WKT.
type Codec struct {
	opts Options
}

// New creates a codec.
func New(opts Options) *Codec {
	return &Codec{opts: opts}
}

var defaultCodec = New(DefaultOptions())

// Marshal renders g with default options.
func Marshal(g geometry.Geometry) (string, bool) {
	return defaultCodec.Transform(g)
}

// Unmarshal parses WKT text.
func Unmarshal(text string) (geometry.Geometry, bool) {
	return defaultCodec.ReverseTransform(text)
}

// Transform renders g as WKT. It returns false when there is nothing to render.
func (c *Codec) Transform(g geometry.Geometry) (string, bool) {
	if geometry.IsNil(g) {
		return "", false
	}
	var b strings.Builder
	if !c.write(&b, g) {
		return "", false
	}
	return b.String(), true
}

func (c *Codec) write(b *strings.Builder, g geometry.Geometry) bool {
	switch g := g.(type) {
	case geometry.Point:
		b.WriteString("POINT(")
		writePoint(b, g)
		b.WriteByte(')')

	case *geometry.LineString:
		b.WriteString("LINESTRING(")
		writePoints(b, g.Points())
		b.WriteByte(')')

	case *geometry.LinearRing:
		b.WriteString("LINEARRING(")
		writePoints(b, g.Points())
		b.WriteByte(')')

	case *geometry.Polygon:
		b.WriteString("POLYGON")
		writeRings(b, g.Rings())

	case *geometry.MultiPoint:
		points := g.Points()
		if len(points) == 0 {
			b.WriteString("MULTIPOINT EMPTY")
			return true
		}
		b.WriteString("MULTIPOINT(")
		for i, p := range points {
			if i > 0 {
				b.WriteByte(',')
			}
			if c.opts.StrictOGCMultiPoint {
				b.WriteByte('(')
				writePoint(b, p)
				b.WriteByte(')')
			} else {
				writePoint(b, p)
			}
		}
		b.WriteByte(')')

	case *geometry.MultiLineString:
		lines := g.LineStrings()
		if len(lines) == 0 {
			b.WriteString("MULTILINESTRING EMPTY")
			return true
		}
		b.WriteString("MULTILINESTRING(")
		for i, l := range lines {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('(')
			writePoints(b, l.Points())
			b.WriteByte(')')
		}
		b.WriteByte(')')

	case *geometry.MultiPolygon:
		polygons := g.Polygons()
		if len(polygons) == 0 {
			b.WriteString("MULTIPOLYGON EMPTY")
			return true
		}
		b.WriteString("MULTIPOLYGON(")
		for i, p := range polygons {
			if i > 0 {
				b.WriteByte(',')
			}
			writeRings(b, p.Rings())
		}
		b.WriteByte(')')

	case *geometry.GeometryCollection:
		members := g.Geometries()
		if len(members) == 0 {
			b.WriteString("GEOMETRYCOLLECTION EMPTY")
			return true
		}
		b.WriteString("GEOMETRYCOLLECTION(")
		for i, m := range members {
			if i > 0 {
				b.WriteByte(',')
			}
			if !c.write(b, m) {
				return false
			}
		}
		b.WriteByte(')')

	default:
		return false
	}
	return true
}

func writePoint(b *strings.Builder, p geometry.Point) {
	b.WriteString(formatFloat(p.X()))
	b.WriteByte(' ')
	b.WriteString(formatFloat(p.Y()))
}

func writePoints(b *strings.Builder, points []geometry.Point) {
	for i, p := range points {
		if i > 0 {
			b.WriteByte(',')
		}
		writePoint(b, p)
	}
}

func writeRings(b *strings.Builder, rings []*geometry.LinearRing) {
	b.WriteByte('(')
	for i, r := range rings {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('(')
		writePoints(b, r.Points())
		b.WriteByte(')')
	}
	b.WriteByte(')')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
