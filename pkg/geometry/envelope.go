package geometry

import (
	"math"

	"github.com/beetlebugorg/geokit/pkg/geokit"
)

// AllPoints flattens a geometry into its points in traversal order.
// Ring closing points are included.
func AllPoints(g Geometry) []Point {
	var out []Point
	collectPoints(g, &out)
	return out
}

func collectPoints(g Geometry, out *[]Point) {
	switch g := g.(type) {
	case Point:
		*out = append(*out, g)
	case *LineString:
		*out = append(*out, g.points...)
	case *LinearRing:
		*out = append(*out, g.points...)
	case *Polygon:
		for _, r := range g.rings {
			*out = append(*out, r.points...)
		}
	case *MultiPoint:
		*out = append(*out, g.points...)
	case *MultiLineString:
		for _, l := range g.lines {
			*out = append(*out, l.points...)
		}
	case *MultiPolygon:
		for _, p := range g.polygons {
			collectPoints(p, out)
		}
	case *GeometryCollection:
		for _, member := range g.geometries {
			collectPoints(member, out)
		}
	}
}

// Envelope returns the axis-aligned bounding box of a geometry's raw
// coordinates. The second result is false for empty geometries.
//
// The envelope never crosses the antimeridian; it is the min/max of x and y.
func Envelope(g Geometry) (geokit.BoundingBox, bool) {
	points := AllPoints(g)
	if len(points) == 0 {
		return geokit.BoundingBox{}, false
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X())
		maxX = math.Max(maxX, p.X())
		minY = math.Min(minY, p.Y())
		maxY = math.Max(maxY, p.Y())
	}

	box, err := geokit.NewBoundingBox(geokit.NewPosition(minX, minY), geokit.NewPosition(maxX, maxY))
	if err != nil {
		return geokit.BoundingBox{}, false
	}
	return box, true
}
