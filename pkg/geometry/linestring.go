package geometry

import (
	"fmt"
)

// LineString is an ordered sequence of at least two points.
type LineString struct {
	points []Point
}

// NewLineString creates a line string. Requires at least two points.
func NewLineString(points []Point) (*LineString, error) {
	if len(points) < 2 {
		return nil, &ErrInvalidGeometry{
			Type:   TypeLineString,
			Reason: fmt.Sprintf("requires at least 2 points, got %d", len(points)),
		}
	}
	return &LineString{points: append([]Point(nil), points...)}, nil
}

// Type returns TypeLineString.
func (l *LineString) Type() Type { return TypeLineString }

// Points returns a copy of the points.
func (l *LineString) Points() []Point { return append([]Point(nil), l.points...) }

// Len returns the number of points.
func (l *LineString) Len() int { return len(l.points) }

// Add appends a Point. Returns false, leaving the line unchanged, for any
// other geometry.
func (l *LineString) Add(g Geometry) bool {
	p, ok := g.(Point)
	if !ok {
		return false
	}
	l.points = append(l.points, p)
	return true
}
