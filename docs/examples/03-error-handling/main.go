package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/beetlebugorg/geokit/pkg/geocoder"
	"github.com/beetlebugorg/geokit/pkg/geokit"
	"github.com/beetlebugorg/geokit/pkg/geometry/wkb"
)

func main() {
	// Antipodal points on the equator do not converge
	_, err := geokit.DistanceVincenty(geokit.NewPosition(0, 0), geokit.NewPosition(180, 0))
	var notConverged *geokit.ErrNotConverged
	if errors.As(err, &notConverged) {
		log.Printf("Expected error: %v", err)
		fmt.Printf("Falling back to haversine: %s\n",
			geokit.DistanceHaversine(notConverged.From, notConverged.To))
	}

	// Unknown units are rejected
	if _, err := geokit.ParseDistance("3 furlongs"); err != nil {
		var unknown *geokit.ErrUnknownUnit
		if errors.As(err, &unknown) {
			log.Printf("Unknown unit %q", unknown.Unit)
		}
	}

	// Big-endian WKB is not supported
	_, err = wkb.NewWKBHex().ReverseTransform("00000000013ff00000000000003ff0000000000000")
	var order *wkb.ErrUnsupportedByteOrder
	if errors.As(err, &order) {
		log.Printf("Expected error: %v", err)
	}

	// A chain falls through failing geocoders
	chain := geocoder.NewChain(
		geocoder.GeocoderFunc(func(ctx context.Context, q geocoder.Query) (*geocoder.Result, error) {
			return nil, &geocoder.Error{StatusCode: 503, Message: "service unavailable"}
		}),
		geocoder.GeocoderFunc(func(ctx context.Context, q geocoder.Query) (*geocoder.Result, error) {
			return nil, geocoder.ErrNotFound
		}),
	)
	_, err = chain.Geocode(context.Background(), geocoder.AddressQuery("Atlantis"))
	if errors.Is(err, geocoder.ErrNotFound) {
		log.Printf("No result:\n%v", err)
	}
}
