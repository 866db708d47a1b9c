// Package orbconv converts between this module's geometry model and
// github.com/paulmach/orb geometries.
package orbconv

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/geokit/pkg/geokit"
	"github.com/beetlebugorg/geokit/pkg/geometry"
)

// ToOrb converts g to the equivalent orb geometry. A LinearRing becomes an
// orb.Ring. Returns nil for a nil geometry.
func ToOrb(g geometry.Geometry) orb.Geometry {
	if geometry.IsNil(g) {
		return nil
	}

	switch g := g.(type) {
	case geometry.Point:
		return toPoint(g)
	case *geometry.LineString:
		return orb.LineString(toPoints(g.Points()))
	case *geometry.LinearRing:
		return orb.Ring(toPoints(g.Points()))
	case *geometry.Polygon:
		return toPolygon(g)
	case *geometry.MultiPoint:
		return orb.MultiPoint(toPoints(g.Points()))
	case *geometry.MultiLineString:
		lines := g.LineStrings()
		out := make(orb.MultiLineString, 0, len(lines))
		for _, l := range lines {
			out = append(out, orb.LineString(toPoints(l.Points())))
		}
		return out
	case *geometry.MultiPolygon:
		polygons := g.Polygons()
		out := make(orb.MultiPolygon, 0, len(polygons))
		for _, p := range polygons {
			out = append(out, toPolygon(p))
		}
		return out
	case *geometry.GeometryCollection:
		members := g.Geometries()
		out := make(orb.Collection, 0, len(members))
		for _, m := range members {
			out = append(out, ToOrb(m))
		}
		return out
	}
	return nil
}

func toPoint(p geometry.Point) orb.Point {
	return orb.Point{p.X(), p.Y()}
}

func toPoints(points []geometry.Point) []orb.Point {
	out := make([]orb.Point, 0, len(points))
	for _, p := range points {
		out = append(out, toPoint(p))
	}
	return out
}

func toPolygon(p *geometry.Polygon) orb.Polygon {
	rings := p.Rings()
	out := make(orb.Polygon, 0, len(rings))
	for _, r := range rings {
		out = append(out, orb.Ring(toPoints(r.Points())))
	}
	return out
}

// FromOrb converts an orb geometry. An orb.Bound becomes a closed rectangular
// Polygon. Geometries that violate this model's construction rules, such as a
// one-point line, return *geometry.ErrInvalidGeometry.
func FromOrb(g orb.Geometry) (geometry.Geometry, error) {
	switch g := g.(type) {
	case nil:
		return nil, &geometry.ErrInvalidGeometry{Reason: "nil orb geometry"}
	case orb.Point:
		return fromPoint(g), nil
	case orb.LineString:
		return geometry.NewLineString(fromPoints(g))
	case orb.Ring:
		return geometry.NewLinearRing(fromPoints(g))
	case orb.Polygon:
		return fromPolygon(g)
	case orb.Bound:
		return fromPolygon(g.ToPolygon())
	case orb.MultiPoint:
		return geometry.NewMultiPoint(fromPoints(g)), nil
	case orb.MultiLineString:
		lines := make([]*geometry.LineString, 0, len(g))
		for i, ls := range g {
			l, err := geometry.NewLineString(fromPoints(ls))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i, err)
			}
			lines = append(lines, l)
		}
		return geometry.NewMultiLineString(lines)
	case orb.MultiPolygon:
		polygons := make([]*geometry.Polygon, 0, len(g))
		for i, op := range g {
			p, err := fromPolygon(op)
			if err != nil {
				return nil, fmt.Errorf("polygon %d: %w", i, err)
			}
			polygons = append(polygons, p)
		}
		return geometry.NewMultiPolygon(polygons)
	case orb.Collection:
		members := make([]geometry.Geometry, 0, len(g))
		for i, og := range g {
			m, err := FromOrb(og)
			if err != nil {
				return nil, fmt.Errorf("member %d: %w", i, err)
			}
			members = append(members, m)
		}
		return geometry.NewGeometryCollection(members)
	}
	return nil, &geometry.ErrInvalidGeometry{Reason: fmt.Sprintf("unsupported orb type %T", g)}
}

func fromPoint(p orb.Point) geometry.Point {
	return geometry.NewPoint(p.X(), p.Y())
}

func fromPoints(points []orb.Point) []geometry.Point {
	out := make([]geometry.Point, 0, len(points))
	for _, p := range points {
		out = append(out, fromPoint(p))
	}
	return out
}

func fromPolygon(p orb.Polygon) (*geometry.Polygon, error) {
	rings := make([]*geometry.LinearRing, 0, len(p))
	for i, r := range p {
		ring, err := geometry.NewLinearRing(fromPoints(r))
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		rings = append(rings, ring)
	}
	return geometry.NewPolygon(rings)
}

// BoundFromBox converts a bounding box to an orb.Bound. A box crossing the
// antimeridian gets an eastern edge beyond 180 so that Min.X <= Max.X holds.
func BoundFromBox(b geokit.BoundingBox) orb.Bound {
	sw, ne := b.SouthWest(), b.NorthEast()
	east := ne.Longitude()
	if b.CrossesAntimeridian() {
		east += 360
	}
	return orb.Bound{
		Min: orb.Point{sw.Longitude(), sw.Latitude()},
		Max: orb.Point{east, ne.Latitude()},
	}
}

// BoxFromBound converts an orb.Bound. Longitudes are normalized, so a bound
// produced by BoundFromBox converts back to the original box.
func BoxFromBound(b orb.Bound) (geokit.BoundingBox, error) {
	return geokit.NewBoundingBox(
		geokit.NewPosition(geokit.NormalizeLongitude(b.Min.X()), b.Min.Y()),
		geokit.NewPosition(geokit.NormalizeLongitude(b.Max.X()), b.Max.Y()),
	)
}
