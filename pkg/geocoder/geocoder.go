// Package geocoder defines the contract between geokit and geocoding
// services: what a geocoder is asked and what it answers.
//
// Concrete HTTP clients live outside this module. A Chain combines several
// geocoders and falls through to the next one when a delegate fails.
package geocoder

import (
	"context"

	"github.com/beetlebugorg/geokit/pkg/geokit"
)

// QueryKind identifies what a Query looks up.
type QueryKind int

const (
	QueryAddress QueryKind = iota + 1
	QueryReverse
	QueryIP
)

// String returns the kind name.
func (k QueryKind) String() string {
	switch k {
	case QueryAddress:
		return "address"
	case QueryReverse:
		return "reverse"
	case QueryIP:
		return "ip"
	default:
		return "unknown"
	}
}

// Query is a geocoding request.
type Query struct {
	Kind     QueryKind
	Address  string
	Position geokit.Position
	IP       string
}

// AddressQuery looks up a free-form address.
func AddressQuery(address string) Query {
	return Query{Kind: QueryAddress, Address: address}
}

// ReverseQuery looks up the address at a position.
func ReverseQuery(p geokit.Position) Query {
	return Query{Kind: QueryReverse, Position: p}
}

// IPQuery looks up the location of an IP address.
func IPQuery(ip string) Query {
	return Query{Kind: QueryIP, IP: ip}
}

// String renders the query subject.
func (q Query) String() string {
	switch q.Kind {
	case QueryAddress:
		return q.Address
	case QueryReverse:
		return q.Position.String()
	case QueryIP:
		return q.IP
	default:
		return ""
	}
}

// AddressComponent is one part of a structured address, such as a street
// number or a country.
type AddressComponent struct {
	LongName  string   `json:"long_name" yaml:"long_name"`
	ShortName string   `json:"short_name,omitempty" yaml:"short_name,omitempty"`
	Types     []string `json:"types,omitempty" yaml:"types,omitempty"`
}

// Result is a located answer.
type Result struct {
	Location geokit.Position     `json:"location" yaml:"location"`
	Bounds   *geokit.BoundingBox `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	Viewport *geokit.BoundingBox `json:"viewport,omitempty" yaml:"viewport,omitempty"`
	Address  []AddressComponent  `json:"address,omitempty" yaml:"address,omitempty"`
}

// Geocoder resolves a query to a location.
//
// Implementations return an *Error for service-level failures and
// ErrNotFound when the query has no match.
type Geocoder interface {
	Geocode(ctx context.Context, q Query) (*Result, error)
}

// GeocoderFunc adapts a function to the Geocoder interface.
type GeocoderFunc func(ctx context.Context, q Query) (*Result, error)

// Geocode calls f.
func (f GeocoderFunc) Geocode(ctx context.Context, q Query) (*Result, error) {
	return f(ctx, q)
}
