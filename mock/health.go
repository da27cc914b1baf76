package mock

import (
	"context"

	"github.com/fwojciec/compass"
)

var _ compass.HealthChecker = (*HealthChecker)(nil)

// HealthChecker is a mock implementation of compass.HealthChecker.
type HealthChecker struct {
	HealthFn func(ctx context.Context) (*compass.Health, error)
}

func (h *HealthChecker) Health(ctx context.Context) (*compass.Health, error) {
	return h.HealthFn(ctx)
}
