package geokit

import (
	"fmt"
)

// ErrInvalidBoundingBox indicates a bounding box whose south edge lies north of its north edge
type ErrInvalidBoundingBox struct {
	South, North float64
}

func (e *ErrInvalidBoundingBox) Error() string {
	return fmt.Sprintf("invalid bounding box: south latitude %f is north of north latitude %f",
		e.South, e.North)
}

// ErrNotConverged indicates Vincenty's inverse formula failed to converge
type ErrNotConverged struct {
	From, To   Position
	Iterations int
}

func (e *ErrNotConverged) Error() string {
	return fmt.Sprintf("vincenty formula failed to converge after %d iterations (%s -> %s)",
		e.Iterations, e.From, e.To)
}

// ErrUnknownUnit indicates a distance unit that is not in the alias table
type ErrUnknownUnit struct {
	Unit string
}

func (e *ErrUnknownUnit) Error() string {
	return fmt.Sprintf("unknown distance unit: %q", e.Unit)
}

// ErrInvalidDistance indicates text that cannot be parsed as a distance
type ErrInvalidDistance struct {
	Input string
}

func (e *ErrInvalidDistance) Error() string {
	return fmt.Sprintf("invalid distance: %q", e.Input)
}

// ErrInvalidPosition indicates text that cannot be parsed as a position
type ErrInvalidPosition struct {
	Input  string
	Reason string
}

func (e *ErrInvalidPosition) Error() string {
	return fmt.Sprintf("invalid position %q: %s", e.Input, e.Reason)
}
