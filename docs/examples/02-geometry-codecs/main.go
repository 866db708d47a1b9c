package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/geokit/pkg/geometry"
	"github.com/beetlebugorg/geokit/pkg/geometry/wkb"
	"github.com/beetlebugorg/geokit/pkg/geometry/wkt"
)

func describe(g geometry.Geometry) {
	switch g := g.(type) {
	case geometry.Point:
		fmt.Printf("Point: %.6f, %.6f\n", g.X(), g.Y())

	case *geometry.LineString:
		fmt.Printf("LineString with %d points\n", g.Len())

	case *geometry.Polygon:
		// Rings are closed (first point == last point)
		fmt.Printf("Polygon with %d vertices and %d holes\n",
			g.Exterior().Len()-1, len(g.Interiors()))

	case *geometry.GeometryCollection:
		fmt.Printf("Collection of %d geometries:\n", len(g.Geometries()))
		for _, member := range g.Geometries() {
			fmt.Print("  ")
			describe(member)
		}

	default:
		fmt.Printf("%v\n", g.Type())
	}
}

func main() {
	// Parse WKT, as returned by PostGIS ST_AsText
	g, ok := wkt.Unmarshal("GEOMETRYCOLLECTION(POINT(-71.064544 42.28787)," +
		"POLYGON((0 0,10 0,10 10,0 10,0 0),(2 2,4 2,4 4,2 2)))")
	if !ok {
		log.Fatal("unparseable WKT")
	}
	describe(g)

	// Encode as hex WKB
	hex, err := wkb.NewWKBHex().Transform(g)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("WKB: %s\n", hex)

	// Decode PostGIS EWKB (SRID 4326)
	p, err := wkb.NewEWKBHex().ReverseTransform("0101000020e6100000000000000000f03f000000000000f03f")
	if err != nil {
		log.Fatal(err)
	}
	text, _ := wkt.Marshal(p)
	fmt.Printf("EWKB point: %s\n", text)

	// Strict OGC multipoint output
	mp := geometry.NewMultiPoint([]geometry.Point{
		geometry.NewPoint(1, 2),
		geometry.NewPoint(3, 4),
	})
	strict, _ := wkt.New(wkt.Options{StrictOGCMultiPoint: true}).Transform(mp)
	fmt.Printf("Strict: %s\n", strict)

	if box, ok := geometry.Envelope(g); ok {
		fmt.Printf("Envelope: %s\n", box)
	}
}
