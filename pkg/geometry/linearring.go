package geometry

import (
	"fmt"
)

// LinearRing is a closed line string: its last point always equals its first.
type LinearRing struct {
	points []Point
}

// NewLinearRing creates a ring from at least three points. An open point list
// is closed by appending a copy of the first point.
func NewLinearRing(points []Point) (*LinearRing, error) {
	if len(points) < 3 {
		return nil, &ErrInvalidGeometry{
			Type:   TypeLinearRing,
			Reason: fmt.Sprintf("requires at least 3 points, got %d", len(points)),
		}
	}
	ring := &LinearRing{points: append([]Point(nil), points...)}
	if ring.points[0] != ring.points[len(ring.points)-1] {
		ring.points = append(ring.points, ring.points[0])
	}
	return ring, nil
}

// Type returns TypeLinearRing.
func (r *LinearRing) Type() Type { return TypeLinearRing }

// Points returns a copy of the points, closing point included.
func (r *LinearRing) Points() []Point { return append([]Point(nil), r.points...) }

// Len returns the number of points, closing point included.
func (r *LinearRing) Len() int { return len(r.points) }

// Add inserts a Point just before the closing point. Returns false for any
// other geometry.
//
// Postcondition: the last point equals the first.
func (r *LinearRing) Add(g Geometry) bool {
	p, ok := g.(Point)
	if !ok {
		return false
	}
	return r.Insert(len(r.points)-1, p)
}

// Insert places p at index i, shifting later points. Valid indexes are
// 0..Len()-1; the closing point itself cannot be displaced. Inserting at 0
// makes p the new first point and rewrites the closing point to match.
//
// Precondition: 0 <= i < Len(). Returns false, leaving the ring unchanged,
// otherwise.
// Postcondition: the last point equals the first.
func (r *LinearRing) Insert(i int, p Point) bool {
	if i < 0 || i >= len(r.points) {
		return false
	}
	r.points = append(r.points, Point{})
	copy(r.points[i+1:], r.points[i:])
	r.points[i] = p
	r.points[len(r.points)-1] = r.points[0]
	return true
}
