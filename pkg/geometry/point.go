package geometry

import (
	"github.com/beetlebugorg/geokit/pkg/geokit"
)

// Point is a single position.
type Point struct {
	pos geokit.Position
}

// NewPoint creates a point from x (longitude) and y (latitude).
func NewPoint(x, y float64) Point {
	return Point{pos: geokit.NewPosition(x, y)}
}

// PointAt creates a point at a position.
func PointAt(p geokit.Position) Point {
	return Point{pos: p}
}

// Type returns TypePoint.
func (p Point) Type() Type { return TypePoint }

// X returns the raw x coordinate.
func (p Point) X() float64 { return p.pos.X() }

// Y returns the raw y coordinate.
func (p Point) Y() float64 { return p.pos.Y() }

// Position returns the point's position.
func (p Point) Position() geokit.Position { return p.pos }
