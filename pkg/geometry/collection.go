package geometry

import (
	"fmt"
)

// MultiPoint is a collection of points.
type MultiPoint struct {
	points []Point
}

// NewMultiPoint creates a multipoint. An empty list is allowed.
func NewMultiPoint(points []Point) *MultiPoint {
	return &MultiPoint{points: append([]Point(nil), points...)}
}

// Type returns TypeMultiPoint.
func (m *MultiPoint) Type() Type { return TypeMultiPoint }

// Points returns a copy of the points.
func (m *MultiPoint) Points() []Point { return append([]Point(nil), m.points...) }

// Add appends a Point. Returns false for any other geometry.
func (m *MultiPoint) Add(g Geometry) bool {
	p, ok := g.(Point)
	if !ok {
		return false
	}
	m.points = append(m.points, p)
	return true
}

// MultiLineString is a collection of line strings.
type MultiLineString struct {
	lines []*LineString
}

// NewMultiLineString creates a multilinestring. An empty list is allowed.
func NewMultiLineString(lines []*LineString) (*MultiLineString, error) {
	for i, l := range lines {
		if l == nil {
			return nil, &ErrInvalidGeometry{Type: TypeMultiLineString, Reason: fmt.Sprintf("line %d is nil", i)}
		}
	}
	return &MultiLineString{lines: append([]*LineString(nil), lines...)}, nil
}

// Type returns TypeMultiLineString.
func (m *MultiLineString) Type() Type { return TypeMultiLineString }

// LineStrings returns the member lines.
func (m *MultiLineString) LineStrings() []*LineString {
	return append([]*LineString(nil), m.lines...)
}

// Add appends a *LineString. Returns false for any other geometry, rings included.
func (m *MultiLineString) Add(g Geometry) bool {
	l, ok := g.(*LineString)
	if !ok || l == nil {
		return false
	}
	m.lines = append(m.lines, l)
	return true
}

// MultiPolygon is a collection of polygons.
type MultiPolygon struct {
	polygons []*Polygon
}

// NewMultiPolygon creates a multipolygon. An empty list is allowed.
func NewMultiPolygon(polygons []*Polygon) (*MultiPolygon, error) {
	for i, p := range polygons {
		if p == nil {
			return nil, &ErrInvalidGeometry{Type: TypeMultiPolygon, Reason: fmt.Sprintf("polygon %d is nil", i)}
		}
	}
	return &MultiPolygon{polygons: append([]*Polygon(nil), polygons...)}, nil
}

// Type returns TypeMultiPolygon.
func (m *MultiPolygon) Type() Type { return TypeMultiPolygon }

// Polygons returns the member polygons.
func (m *MultiPolygon) Polygons() []*Polygon { return append([]*Polygon(nil), m.polygons...) }

// Add appends a *Polygon. Returns false for any other geometry.
func (m *MultiPolygon) Add(g Geometry) bool {
	p, ok := g.(*Polygon)
	if !ok || p == nil {
		return false
	}
	m.polygons = append(m.polygons, p)
	return true
}

// GeometryCollection is a heterogeneous collection of geometries.
type GeometryCollection struct {
	geometries []Geometry
}

// NewGeometryCollection creates a collection. An empty list is allowed.
func NewGeometryCollection(geometries []Geometry) (*GeometryCollection, error) {
	for i, g := range geometries {
		if IsNil(g) {
			return nil, &ErrInvalidGeometry{Type: TypeGeometryCollection, Reason: fmt.Sprintf("member %d is nil", i)}
		}
	}
	return &GeometryCollection{geometries: append([]Geometry(nil), geometries...)}, nil
}

// Type returns TypeGeometryCollection.
func (c *GeometryCollection) Type() Type { return TypeGeometryCollection }

// Geometries returns the members.
func (c *GeometryCollection) Geometries() []Geometry {
	return append([]Geometry(nil), c.geometries...)
}

// Add appends any non-nil geometry.
func (c *GeometryCollection) Add(g Geometry) bool {
	if IsNil(g) {
		return false
	}
	c.geometries = append(c.geometries, g)
	return true
}

// IsNil reports whether g is nil or a typed nil pointer.
func IsNil(g Geometry) bool {
	switch g := g.(type) {
	case nil:
		return true
	case Point:
		return false
	case *LineString:
		return g == nil
	case *LinearRing:
		return g == nil
	case *Polygon:
		return g == nil
	case *MultiPoint:
		return g == nil
	case *MultiLineString:
		return g == nil
	case *MultiPolygon:
		return g == nil
	case *GeometryCollection:
		return g == nil
	}
	return true
}
