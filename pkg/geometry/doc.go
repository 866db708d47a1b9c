// Package geometry defines the OGC simple-features geometry model used by the
// WKT and WKB codecs.
//
// Geometry is a closed sum type: Point, *LineString, *LinearRing, *Polygon,
// *MultiPoint, *MultiLineString, *MultiPolygon and *GeometryCollection are the
// only implementations. Callers switch on the concrete type:
//
//	switch g := g.(type) {
//	case geometry.Point:
//	    fmt.Println(g.X(), g.Y())
//	case *geometry.Polygon:
//	    fmt.Println(len(g.Rings()), "rings")
//	}
//
// Constructors validate their input. The only mutating operations are the
// Add methods (and LinearRing.Insert), which reject children of the wrong
// type by returning false. Geometries are safe to share for reading; Add and
// Insert need exclusive access to the receiver.
package geometry
