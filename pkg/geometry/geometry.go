package geometry

// Type identifies a geometry variant.
type Type int

const (
	TypePoint Type = iota + 1
	TypeLineString
	TypeLinearRing
	TypePolygon
	TypeMultiPoint
	TypeMultiLineString
	TypeMultiPolygon
	TypeGeometryCollection
)

// String returns the OGC name of the geometry type.
func (t Type) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypeLinearRing:
		return "LinearRing"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeGeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Geometry is implemented by every geometry variant in this package.
type Geometry interface {
	// Type returns the variant tag.
	Type() Type

	geometry()
}

func (Point) geometry()               {}
func (*LineString) geometry()         {}
func (*LinearRing) geometry()         {}
func (*Polygon) geometry()            {}
func (*MultiPoint) geometry()         {}
func (*MultiLineString) geometry()    {}
func (*MultiPolygon) geometry()       {}
func (*GeometryCollection) geometry() {}
