package geokit

import (
	"math"
	"strconv"
	"strings"
)

// Position is a geographic coordinate pair.
//
// X is longitude-like and Y is latitude-like. Values are stored as given;
// Longitude and Latitude normalize on read.
type Position struct {
	x, y float64
}

// NewPosition creates a Position from x (longitude) and y (latitude).
func NewPosition(x, y float64) Position {
	return Position{x: x, y: y}
}

// NewLatLng creates a Position from latitude and longitude, in that order.
func NewLatLng(lat, lng float64) Position {
	return Position{x: lng, y: lat}
}

// X returns the raw longitude-like coordinate.
func (p Position) X() float64 { return p.x }

// Y returns the raw latitude-like coordinate.
func (p Position) Y() float64 { return p.y }

// Longitude returns X wrapped into (-180, 180].
func (p Position) Longitude() float64 { return NormalizeLongitude(p.x) }

// Latitude returns Y clamped into [-90, 90].
func (p Position) Latitude() float64 { return NormalizeLatitude(p.y) }

// String renders the position as "lat,lng".
func (p Position) String() string {
	return strconv.FormatFloat(p.Latitude(), 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Longitude(), 'f', -1, 64)
}

// NormalizeLatitude clamps a latitude into [-90, 90].
func NormalizeLatitude(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

// NormalizeLongitude wraps a longitude into (-180, 180].
func NormalizeLongitude(lng float64) float64 {
	lng = math.Mod(lng, 360)
	if lng <= -180 {
		lng += 360
	} else if lng > 180 {
		lng -= 360
	}
	return lng
}

// ParsePosition parses "lat,lng" (whitespace around either value is ignored).
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Position{}, &ErrInvalidPosition{Input: s, Reason: "expected lat,lng"}
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Position{}, &ErrInvalidPosition{Input: s, Reason: "latitude is not a number"}
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Position{}, &ErrInvalidPosition{Input: s, Reason: "longitude is not a number"}
	}
	return NewLatLng(lat, lng), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParsePosition.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
