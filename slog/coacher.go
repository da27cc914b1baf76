package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/compass"
)

// Ensure LoggingCoacher implements compass.Coacher.
var _ compass.Coacher = (*LoggingCoacher)(nil)

// LoggingCoacher wraps a Coacher with logging.
type LoggingCoacher struct {
	next   compass.Coacher
	logger *slog.Logger
}

// NewLoggingCoacher creates a new LoggingCoacher.
func NewLoggingCoacher(next compass.Coacher, logger *slog.Logger) *LoggingCoacher {
	return &LoggingCoacher{next: next, logger: logger}
}

// Coach delegates to the wrapped coacher and logs the operation.
func (c *LoggingCoacher) Coach(ctx context.Context, req compass.CoachRequest) (result compass.CoachResult, err error) {
	defer func(begin time.Time) {
		ids := make([]string, 0, len(req.CaseIDs))
		for _, id := range req.CaseIDs {
			ids = append(ids, id.String())
		}
		c.logger.Info("coach request",
			"query", req.Query,
			"case_ids", ids,
			"bytes", len(result),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Coach(ctx, req)
}
