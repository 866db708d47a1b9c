package geometry

import (
	"fmt"
)

// Polygon is an exterior ring followed by zero or more interior rings (holes).
type Polygon struct {
	rings []*LinearRing
}

// NewPolygon creates a polygon. Requires at least one ring.
func NewPolygon(rings []*LinearRing) (*Polygon, error) {
	if len(rings) == 0 {
		return nil, &ErrInvalidGeometry{Type: TypePolygon, Reason: "requires at least 1 ring"}
	}
	for i, ring := range rings {
		if ring == nil {
			return nil, &ErrInvalidGeometry{Type: TypePolygon, Reason: fmt.Sprintf("ring %d is nil", i)}
		}
	}
	return &Polygon{rings: append([]*LinearRing(nil), rings...)}, nil
}

// Type returns TypePolygon.
func (p *Polygon) Type() Type { return TypePolygon }

// Rings returns all rings, exterior first.
func (p *Polygon) Rings() []*LinearRing { return append([]*LinearRing(nil), p.rings...) }

// Exterior returns the outer ring.
func (p *Polygon) Exterior() *LinearRing { return p.rings[0] }

// Interiors returns the holes.
func (p *Polygon) Interiors() []*LinearRing { return append([]*LinearRing(nil), p.rings[1:]...) }

// Add appends a *LinearRing as a hole. Returns false for any other geometry.
func (p *Polygon) Add(g Geometry) bool {
	ring, ok := g.(*LinearRing)
	if !ok || ring == nil {
		return false
	}
	p.rings = append(p.rings, ring)
	return true
}
