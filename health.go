package compass

import "context"

// Health is the backend's readiness report.
type Health struct {
	Status      string `json:"status"`
	Initialized bool   `json:"initialized"`
}

// HealthChecker reports whether the backend is ready to serve searches.
type HealthChecker interface {
	Health(ctx context.Context) (*Health, error)
}
