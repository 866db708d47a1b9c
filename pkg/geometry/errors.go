package geometry

import (
	"fmt"
)

// ErrInvalidGeometry indicates a geometry that violates construction rules
type ErrInvalidGeometry struct {
	Type   Type
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	if e.Type != 0 {
		return fmt.Sprintf("invalid geometry (%v): %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}

// ErrInvalidCoordinate indicates a coordinate outside geographic bounds
type ErrInvalidCoordinate struct {
	X, Y float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: x=%f y=%f (x must be within ±180, y within ±90)",
		e.X, e.Y)
}
