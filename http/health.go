package http

import (
	"context"
	"net/http"

	"github.com/fwojciec/compass"
)

// Ensure HealthChecker implements compass.HealthChecker at compile time.
var _ compass.HealthChecker = (*HealthChecker)(nil)

// HealthChecker queries the backend's health endpoint.
type HealthChecker struct {
	client *Client
}

// NewHealthChecker creates a new HealthChecker.
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client}
}

// Health returns the backend's readiness report.
func (h *HealthChecker) Health(ctx context.Context) (*compass.Health, error) {
	resp, err := h.client.do(ctx, http.MethodGet, HealthPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, statusError(resp.StatusCode, "Health check failed")
	}

	var health compass.Health
	if err := decode(resp, &health); err != nil {
		return nil, err
	}
	return &health, nil
}
