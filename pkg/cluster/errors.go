package cluster

import (
	"fmt"

	"github.com/beetlebugorg/geokit/pkg/geokit"
)

// ErrInvalidRadius indicates a clustering radius that is not positive
type ErrInvalidRadius struct {
	Radius geokit.Distance
}

func (e *ErrInvalidRadius) Error() string {
	return fmt.Sprintf("invalid cluster radius %s: must be greater than zero", e.Radius)
}
