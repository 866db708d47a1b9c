package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/geokit/pkg/geokit"
)

func main() {
	berlin := geokit.NewLatLng(52.5200, 13.4050)
	paris := geokit.NewLatLng(48.8566, 2.3522)

	// Great-circle distance on a sphere
	d := geokit.DistanceHaversine(berlin, paris)
	fmt.Printf("Haversine: %.1f km\n", d.Kilometers())

	// Ellipsoidal distance (WGS84)
	d, err := geokit.DistanceVincenty(berlin, paris)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Vincenty: %.1f km\n", d.Kilometers())

	fmt.Printf("Heading: %.2f°\n", geokit.Heading(berlin, paris))
	fmt.Printf("Midpoint: %s\n", geokit.Midpoint(berlin, paris))

	// Travel 100 nautical miles due west
	end := geokit.Endpoint(berlin, 270, geokit.NewDistance(100, geokit.UnitNauticalMiles))
	fmt.Printf("Endpoint: %s\n", end)

	// Grow a bounding box by 5 km in every direction
	box, err := geokit.ParseBoundingBox("52.3,13.0,52.7,13.8")
	if err != nil {
		log.Fatal(err)
	}
	radius, err := geokit.ParseDistance("5km")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Expanded: %s\n", geokit.Expand(box, radius))
	fmt.Printf("Shrunk: %s\n", geokit.Shrink(box, radius))
}
