package geocoder

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Chain tries each delegate in order and returns the first result.
type Chain struct {
	geocoders []Geocoder
}

// NewChain creates a chain over the given delegates.
func NewChain(geocoders ...Geocoder) *Chain {
	return &Chain{geocoders: append([]Geocoder(nil), geocoders...)}
}

// Geocode returns the first successful delegate result. When every delegate
// fails, the returned error joins all delegate errors. The context is checked
// before each delegate.
func (c *Chain) Geocode(ctx context.Context, q Query) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	if len(c.geocoders) == 0 {
		return nil, ErrNotFound
	}

	var errs []error
	for i, g := range c.geocoders {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			return nil, errors.Join(errs...)
		}

		result, err := g.Geocode(ctx, q)
		if err == nil && result != nil {
			return result, nil
		}
		if err == nil {
			err = ErrNotFound
		}

		logger.Debug().
			Err(err).
			Int("delegate", i).
			Stringer("kind", q.Kind).
			Str("query", q.String()).
			Msg("Geocoder delegate failed")

		errs = append(errs, fmt.Errorf("delegate %d: %w", i, err))
	}

	return nil, errors.Join(errs...)
}
