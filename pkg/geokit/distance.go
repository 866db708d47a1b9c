package geokit

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit is a named length unit.
type Unit string

const (
	UnitMeters        Unit = "meters"
	UnitKilometers    Unit = "kilometers"
	UnitMiles         Unit = "miles"
	UnitFeet          Unit = "feet"
	UnitNauticalMiles Unit = "nautical"
)

// metersPerUnit holds the conversion factor from each unit to meters.
var metersPerUnit = map[Unit]float64{
	UnitMeters:        1,
	UnitKilometers:    1000,
	UnitMiles:         1609.344,
	UnitFeet:          0.3048,
	UnitNauticalMiles: 1852,
}

// unitAliases maps lowercase spellings to their canonical unit.
var unitAliases = map[string]Unit{
	"m":      UnitMeters,
	"meter":  UnitMeters,
	"meters": UnitMeters,
	"metre":  UnitMeters,
	"metres": UnitMeters,

	"km":         UnitKilometers,
	"kilometer":  UnitKilometers,
	"kilometers": UnitKilometers,
	"kilometre":  UnitKilometers,
	"kilometres": UnitKilometers,

	"mi":    UnitMiles,
	"mile":  UnitMiles,
	"miles": UnitMiles,

	"ft":   UnitFeet,
	"foot": UnitFeet,
	"feet": UnitFeet,

	"nm":            UnitNauticalMiles,
	"nmi":           UnitNauticalMiles,
	"nautical":      UnitNauticalMiles,
	"nauticalmile":  UnitNauticalMiles,
	"nauticalmiles": UnitNauticalMiles,
}

var distancePattern = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)\s*([A-Za-z]*)$`)

// ResolveUnit looks up a unit by any of its aliases, ignoring case.
func ResolveUnit(name string) (Unit, error) {
	unit, ok := unitAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", &ErrUnknownUnit{Unit: name}
	}
	return unit, nil
}

// Distance is a length, stored in meters.
type Distance struct {
	meters float64
}

// Meters creates a Distance from a value in meters.
func Meters(value float64) Distance {
	return Distance{meters: value}
}

// NewDistance creates a Distance from a value in the given unit.
//
// An unrecognized unit is treated as meters; use ResolveUnit to validate
// user input first.
func NewDistance(value float64, unit Unit) Distance {
	factor, ok := metersPerUnit[unit]
	if !ok {
		factor = 1
	}
	return Distance{meters: value * factor}
}

// ParseDistance parses text such as "100km", "1.5 miles" or "250".
//
// A bare number is interpreted as meters.
func ParseDistance(s string) (Distance, error) {
	m := distancePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Distance{}, &ErrInvalidDistance{Input: s}
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Distance{}, &ErrInvalidDistance{Input: s}
	}
	if m[2] == "" {
		return Meters(value), nil
	}
	unit, err := ResolveUnit(m[2])
	if err != nil {
		return Distance{}, err
	}
	return NewDistance(value, unit), nil
}

// Meters returns the distance in meters.
func (d Distance) Meters() float64 { return d.meters }

// Kilometers returns the distance in kilometers.
func (d Distance) Kilometers() float64 { return d.In(UnitKilometers) }

// Miles returns the distance in statute miles.
func (d Distance) Miles() float64 { return d.In(UnitMiles) }

// Feet returns the distance in feet.
func (d Distance) Feet() float64 { return d.In(UnitFeet) }

// NauticalMiles returns the distance in nautical miles.
func (d Distance) NauticalMiles() float64 { return d.In(UnitNauticalMiles) }

// In returns the distance expressed in the given unit.
func (d Distance) In(unit Unit) float64 {
	factor, ok := metersPerUnit[unit]
	if !ok {
		return d.meters
	}
	return d.meters / factor
}

// String renders the distance in meters, e.g. "1500m".
func (d Distance) String() string {
	return strconv.FormatFloat(d.meters, 'f', -1, 64) + "m"
}

// MarshalText implements encoding.TextMarshaler.
func (d Distance) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseDistance.
func (d *Distance) UnmarshalText(text []byte) error {
	parsed, err := ParseDistance(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
