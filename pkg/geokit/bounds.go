package geokit

import (
	"math"
	"strconv"
	"strings"
)

// BoundingBox is a geographic box defined by its southwest and northeast corners.
//
// The southwest latitude never exceeds the northeast latitude. The southwest
// longitude may exceed the northeast longitude, in which case the box crosses
// the antimeridian.
type BoundingBox struct {
	southWest Position
	northEast Position
}

// NewBoundingBox creates a bounding box from its southwest and northeast corners.
//
// Returns ErrInvalidBoundingBox if the southwest corner lies north of the
// northeast corner.
func NewBoundingBox(southWest, northEast Position) (BoundingBox, error) {
	if southWest.Latitude() > northEast.Latitude() {
		return BoundingBox{}, &ErrInvalidBoundingBox{
			South: southWest.Latitude(),
			North: northEast.Latitude(),
		}
	}
	return BoundingBox{southWest: southWest, northEast: northEast}, nil
}

// SouthWest returns the southwest corner.
func (b BoundingBox) SouthWest() Position { return b.southWest }

// NorthEast returns the northeast corner.
func (b BoundingBox) NorthEast() Position { return b.northEast }

// CrossesAntimeridian reports whether the box spans the 180th meridian.
func (b BoundingBox) CrossesAntimeridian() bool {
	return b.southWest.Longitude() > b.northEast.Longitude()
}

// LatitudeSpan returns the north-south extent in degrees.
func (b BoundingBox) LatitudeSpan() float64 {
	return b.northEast.Latitude() - b.southWest.Latitude()
}

// LongitudeSpan returns the west-east extent in degrees, measured eastward
// from the southwest corner.
func (b BoundingBox) LongitudeSpan() float64 {
	return lngSpan(b.southWest.Longitude(), b.northEast.Longitude())
}

// Center returns the midpoint of the box in degree space.
func (b BoundingBox) Center() Position {
	lat := (b.southWest.Latitude() + b.northEast.Latitude()) / 2
	var lng float64
	if b.CrossesAntimeridian() {
		lng = b.southWest.Longitude() + b.LongitudeSpan()/2
	} else {
		lng = (b.southWest.Longitude() + b.northEast.Longitude()) / 2
	}
	return NewLatLng(lat, NormalizeLongitude(lng))
}

// Contains returns true if p lies within the box, edges included.
func (b BoundingBox) Contains(p Position) bool {
	lat := p.Latitude()
	return lat >= b.southWest.Latitude() && lat <= b.northEast.Latitude() &&
		b.containsLng(p.Longitude())
}

func (b BoundingBox) containsLng(lng float64) bool {
	if b.CrossesAntimeridian() {
		return lng <= b.northEast.Longitude() || lng >= b.southWest.Longitude()
	}
	return lng >= b.southWest.Longitude() && lng <= b.northEast.Longitude()
}

// Extend returns the smallest box containing both b and p.
//
// When p lies outside the longitude range the box grows eastward or westward,
// whichever yields the narrower box. Ties grow eastward.
func (b BoundingBox) Extend(p Position) BoundingBox {
	south := math.Min(b.southWest.Latitude(), p.Latitude())
	north := math.Max(b.northEast.Latitude(), p.Latitude())
	west := b.southWest.Longitude()
	east := b.northEast.Longitude()

	lng := p.Longitude()
	if !b.containsLng(lng) {
		extendEast := lngSpan(west, lng)
		extendWest := lngSpan(lng, east)
		if extendEast <= extendWest {
			east = lng
		} else {
			west = lng
		}
	}

	return BoundingBox{
		southWest: NewLatLng(south, west),
		northEast: NewLatLng(north, east),
	}
}

// Union returns the smallest box containing both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return b.Extend(other.southWest).Extend(other.northEast)
}

// String renders the box as "south,west,north,east".
func (b BoundingBox) String() string {
	return strings.Join([]string{
		strconv.FormatFloat(b.southWest.Latitude(), 'f', -1, 64),
		strconv.FormatFloat(b.southWest.Longitude(), 'f', -1, 64),
		strconv.FormatFloat(b.northEast.Latitude(), 'f', -1, 64),
		strconv.FormatFloat(b.northEast.Longitude(), 'f', -1, 64),
	}, ",")
}

// ParseBoundingBox parses "south,west,north,east".
func ParseBoundingBox(s string) (BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BoundingBox{}, &ErrInvalidPosition{Input: s, Reason: "expected south,west,north,east"}
	}
	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return BoundingBox{}, &ErrInvalidPosition{Input: s, Reason: "coordinate is not a number"}
		}
		values[i] = v
	}
	return NewBoundingBox(NewLatLng(values[0], values[1]), NewLatLng(values[2], values[3]))
}

// MarshalText implements encoding.TextMarshaler.
func (b BoundingBox) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseBoundingBox.
func (b *BoundingBox) UnmarshalText(text []byte) error {
	parsed, err := ParseBoundingBox(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// lngSpan measures eastward from west to east, wrapping across the antimeridian.
func lngSpan(west, east float64) float64 {
	if west > east {
		return east + 360 - west
	}
	return east - west
}
