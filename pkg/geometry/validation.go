package geometry

import (
	"fmt"
	"math"
)

// ValidateCoordinate checks that a point lies within geographic bounds
func ValidateCoordinate(p Point) error {
	x, y := p.X(), p.Y()
	if math.IsNaN(x) || math.IsNaN(y) {
		return &ErrInvalidCoordinate{X: x, Y: y}
	}
	if y < -90.0 || y > 90.0 {
		return &ErrInvalidCoordinate{X: x, Y: y}
	}
	if x < -180.0 || x > 180.0 {
		return &ErrInvalidCoordinate{X: x, Y: y}
	}
	return nil
}

// ValidateGeographic checks every coordinate of g against geographic bounds.
// Codecs do not call this; raw coordinates are passed through unchanged.
func ValidateGeographic(g Geometry) error {
	if IsNil(g) {
		return &ErrInvalidGeometry{Reason: "geometry is nil"}
	}
	for i, p := range AllPoints(g) {
		if err := ValidateCoordinate(p); err != nil {
			return &ErrInvalidGeometry{
				Type:   g.Type(),
				Reason: fmt.Sprintf("coordinate %d invalid: %v", i, err),
			}
		}
	}
	return nil
}
