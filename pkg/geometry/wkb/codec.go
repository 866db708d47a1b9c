package wkb

import (
	"fmt"

	"github.com/beetlebugorg/geokit/internal/wkbio"
	"github.com/beetlebugorg/geokit/pkg/geometry"
)

const (
	byteOrderNDR = 1

	codePoint              = 1
	codeLineString         = 2
	codePolygon            = 3
	codeMultiPoint         = 4
	codeMultiLineString    = 5
	codeMultiPolygon       = 6
	codeGeometryCollection = 7

	flagZ    = 0x80000000
	flagM    = 0x40000000
	flagSRID = 0x20000000
	flagMask = flagZ | flagM | flagSRID

	// ISO SQL/MM dimension offsets added to the base type code.
	isoOffsetZ  = 1000
	isoOffsetM  = 2000
	isoOffsetZM = 3000

	pointSize = 16
)

// Transformer converts geometries to and from a binary representation.
type Transformer interface {
	Transform(g geometry.Geometry) ([]byte, error)
	ReverseTransform(data []byte) (geometry.Geometry, error)
}

// Codec reads and writes little-endian WKB.
type Codec struct {
	extended bool
}

// New creates a plain OGC WKB codec.
func New() *Codec {
	return &Codec{}
}

// NewEWKB creates a codec that accepts PostGIS extended WKB on read.
// Written output is plain WKB, which is also valid EWKB.
func NewEWKB() *Codec {
	return &Codec{extended: true}
}

// Transform encodes a geometry. A LinearRing is written as a LineString.
func (c *Codec) Transform(g geometry.Geometry) ([]byte, error) {
	w := wkbio.NewWriter(64)
	if err := c.write(w, g); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// ReverseTransform decodes a single geometry. The whole input must be consumed.
func (c *Codec) ReverseTransform(data []byte) (geometry.Geometry, error) {
	r := wkbio.NewReader(data)
	g, err := c.read(r)
	if err != nil {
		return nil, err
	}
	if r.Remaining() > 0 {
		return nil, &ErrTrailingBytes{Count: r.Remaining()}
	}
	return g, nil
}

func (c *Codec) write(w *wkbio.Writer, g geometry.Geometry) error {
	if geometry.IsNil(g) {
		return &geometry.ErrInvalidGeometry{Reason: "cannot encode nil geometry"}
	}

	switch g := g.(type) {
	case geometry.Point:
		writeHeader(w, codePoint)
		writePoint(w, g)

	case *geometry.LineString:
		writeHeader(w, codeLineString)
		writePoints(w, g.Points())

	case *geometry.LinearRing:
		writeHeader(w, codeLineString)
		writePoints(w, g.Points())

	case *geometry.Polygon:
		rings := g.Rings()
		writeHeader(w, codePolygon)
		w.Uint32(uint32(len(rings)))
		for _, ring := range rings {
			writePoints(w, ring.Points())
		}

	case *geometry.MultiPoint:
		points := g.Points()
		writeHeader(w, codeMultiPoint)
		w.Uint32(uint32(len(points)))
		for _, p := range points {
			writeHeader(w, codePoint)
			writePoint(w, p)
		}

	case *geometry.MultiLineString:
		lines := g.LineStrings()
		writeHeader(w, codeMultiLineString)
		w.Uint32(uint32(len(lines)))
		for _, l := range lines {
			writeHeader(w, codeLineString)
			writePoints(w, l.Points())
		}

	case *geometry.MultiPolygon:
		polygons := g.Polygons()
		writeHeader(w, codeMultiPolygon)
		w.Uint32(uint32(len(polygons)))
		for _, p := range polygons {
			if err := c.write(w, p); err != nil {
				return err
			}
		}

	case *geometry.GeometryCollection:
		members := g.Geometries()
		writeHeader(w, codeGeometryCollection)
		w.Uint32(uint32(len(members)))
		for _, m := range members {
			if err := c.write(w, m); err != nil {
				return err
			}
		}

	default:
		return &geometry.ErrInvalidGeometry{Reason: fmt.Sprintf("cannot encode %T", g)}
	}
	return nil
}

func writeHeader(w *wkbio.Writer, code uint32) {
	w.Byte(byteOrderNDR)
	w.Uint32(code)
}

func writePoint(w *wkbio.Writer, p geometry.Point) {
	w.Float64(p.X())
	w.Float64(p.Y())
}

func writePoints(w *wkbio.Writer, points []geometry.Point) {
	w.Uint32(uint32(len(points)))
	for _, p := range points {
		writePoint(w, p)
	}
}

// header is a decoded byte-order and type prefix.
type header struct {
	code   uint32
	extra  int // ordinates beyond x,y per point
	offset int
}

func (c *Codec) readHeader(r *wkbio.Reader) (header, error) {
	h := header{offset: r.Offset()}

	order, ok := r.Byte()
	if !ok {
		return h, &ErrTruncated{Offset: r.Offset(), Need: "byte order"}
	}
	if order != byteOrderNDR {
		return h, &ErrUnsupportedByteOrder{ByteOrder: order, Offset: h.offset}
	}

	raw, ok := r.Uint32()
	if !ok {
		return h, &ErrTruncated{Offset: r.Offset(), Need: "geometry type"}
	}
	if !c.extended {
		h.code = raw
		if raw < codePoint || raw > codeGeometryCollection {
			return h, &ErrUnknownGeometryType{Code: raw, Offset: h.offset + 1}
		}
		return h, nil
	}

	code := raw &^ flagMask
	if raw&flagZ != 0 {
		h.extra++
	}
	if raw&flagM != 0 {
		h.extra++
	}
	switch {
	case code > isoOffsetZM:
		code -= isoOffsetZM
		h.extra += 2
	case code > isoOffsetM:
		code -= isoOffsetM
		h.extra++
	case code > isoOffsetZ:
		code -= isoOffsetZ
		h.extra++
	}
	if code < codePoint || code > codeGeometryCollection {
		return h, &ErrUnknownGeometryType{Code: raw, Offset: h.offset + 1}
	}
	h.code = code

	if raw&flagSRID != 0 {
		// SRIDs are not carried on the geometry model.
		if _, ok := r.Uint32(); !ok {
			return h, &ErrTruncated{Offset: r.Offset(), Need: "SRID"}
		}
	}
	return h, nil
}

func (c *Codec) read(r *wkbio.Reader) (geometry.Geometry, error) {
	h, err := c.readHeader(r)
	if err != nil {
		return nil, err
	}

	switch h.code {
	case codePoint:
		return readPoint(r, h.extra)

	case codeLineString:
		points, err := readPoints(r, h.extra)
		if err != nil {
			return nil, err
		}
		return geometry.NewLineString(points)

	case codePolygon:
		n, err := readCount(r, 4, "ring count")
		if err != nil {
			return nil, err
		}
		rings := make([]*geometry.LinearRing, 0, n)
		for i := 0; i < n; i++ {
			points, err := readPoints(r, h.extra)
			if err != nil {
				return nil, err
			}
			ring, err := geometry.NewLinearRing(points)
			if err != nil {
				return nil, fmt.Errorf("polygon ring %d: %w", i, err)
			}
			rings = append(rings, ring)
		}
		return geometry.NewPolygon(rings)

	case codeMultiPoint:
		members, err := c.readMembers(r)
		if err != nil {
			return nil, err
		}
		points := make([]geometry.Point, 0, len(members))
		for i, m := range members {
			p, ok := m.(geometry.Point)
			if !ok {
				return nil, memberError(geometry.TypeMultiPoint, i, m)
			}
			points = append(points, p)
		}
		return geometry.NewMultiPoint(points), nil

	case codeMultiLineString:
		members, err := c.readMembers(r)
		if err != nil {
			return nil, err
		}
		lines := make([]*geometry.LineString, 0, len(members))
		for i, m := range members {
			l, ok := m.(*geometry.LineString)
			if !ok {
				return nil, memberError(geometry.TypeMultiLineString, i, m)
			}
			lines = append(lines, l)
		}
		return geometry.NewMultiLineString(lines)

	case codeMultiPolygon:
		members, err := c.readMembers(r)
		if err != nil {
			return nil, err
		}
		polygons := make([]*geometry.Polygon, 0, len(members))
		for i, m := range members {
			p, ok := m.(*geometry.Polygon)
			if !ok {
				return nil, memberError(geometry.TypeMultiPolygon, i, m)
			}
			polygons = append(polygons, p)
		}
		return geometry.NewMultiPolygon(polygons)

	case codeGeometryCollection:
		members, err := c.readMembers(r)
		if err != nil {
			return nil, err
		}
		return geometry.NewGeometryCollection(members)
	}

	return nil, &ErrUnknownGeometryType{Code: h.code, Offset: h.offset + 1}
}

// readMembers reads a count followed by that many complete geometries.
func (c *Codec) readMembers(r *wkbio.Reader) ([]geometry.Geometry, error) {
	// Smallest member is a header plus an empty count.
	n, err := readCount(r, 9, "member count")
	if err != nil {
		return nil, err
	}
	members := make([]geometry.Geometry, 0, n)
	for i := 0; i < n; i++ {
		g, err := c.read(r)
		if err != nil {
			return nil, err
		}
		members = append(members, g)
	}
	return members, nil
}

// readCount reads a 4-byte element count and rejects counts that cannot fit
// in the remaining input, given the minimum encoded size of one element.
func readCount(r *wkbio.Reader, minSize int, what string) (int, error) {
	n, ok := r.Uint32()
	if !ok {
		return 0, &ErrTruncated{Offset: r.Offset(), Need: what}
	}
	if uint64(n)*uint64(minSize) > uint64(r.Remaining()) {
		return 0, &ErrTruncated{Offset: r.Offset(), Need: fmt.Sprintf("%d elements", n)}
	}
	return int(n), nil
}

func readPoint(r *wkbio.Reader, extra int) (geometry.Point, error) {
	x, okX := r.Float64()
	y, okY := r.Float64()
	if !okX || !okY {
		return geometry.Point{}, &ErrTruncated{Offset: r.Offset(), Need: "point coordinates"}
	}
	if extra > 0 && !r.Skip(8*extra) {
		return geometry.Point{}, &ErrTruncated{Offset: r.Offset(), Need: "extra ordinates"}
	}
	return geometry.NewPoint(x, y), nil
}

func readPoints(r *wkbio.Reader, extra int) ([]geometry.Point, error) {
	n, err := readCount(r, pointSize+8*extra, "point count")
	if err != nil {
		return nil, err
	}
	points := make([]geometry.Point, 0, n)
	for i := 0; i < n; i++ {
		p, err := readPoint(r, extra)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func memberError(parent geometry.Type, i int, member geometry.Geometry) error {
	return &geometry.ErrInvalidGeometry{
		Type:   parent,
		Reason: fmt.Sprintf("member %d is a %v", i, member.Type()),
	}
}
