package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/compass"
)

// Ensure LoggingHealthChecker implements compass.HealthChecker.
var _ compass.HealthChecker = (*LoggingHealthChecker)(nil)

// LoggingHealthChecker wraps a HealthChecker with debug logging.
type LoggingHealthChecker struct {
	next   compass.HealthChecker
	logger *slog.Logger
}

// NewLoggingHealthChecker creates a new LoggingHealthChecker.
func NewLoggingHealthChecker(next compass.HealthChecker, logger *slog.Logger) *LoggingHealthChecker {
	return &LoggingHealthChecker{next: next, logger: logger}
}

// Health delegates to the wrapped checker and logs the operation.
func (h *LoggingHealthChecker) Health(ctx context.Context) (health *compass.Health, err error) {
	defer func(begin time.Time) {
		var status string
		if health != nil {
			status = health.Status
		}
		h.logger.Debug("health check",
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return h.next.Health(ctx)
}
