package mock

import (
	"context"

	"github.com/fwojciec/compass"
)

var _ compass.Coacher = (*Coacher)(nil)

// Coacher is a mock implementation of compass.Coacher.
type Coacher struct {
	CoachFn func(ctx context.Context, req compass.CoachRequest) (compass.CoachResult, error)
}

func (c *Coacher) Coach(ctx context.Context, req compass.CoachRequest) (compass.CoachResult, error) {
	return c.CoachFn(ctx, req)
}
