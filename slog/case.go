// Package slog provides log/slog decorators for the compass service
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/compass"
)

// Ensure LoggingCaseService implements compass.CaseService.
var _ compass.CaseService = (*LoggingCaseService)(nil)

// LoggingCaseService wraps a CaseService with logging.
type LoggingCaseService struct {
	next   compass.CaseService
	logger *slog.Logger
}

// NewLoggingCaseService creates a new LoggingCaseService.
func NewLoggingCaseService(next compass.CaseService, logger *slog.Logger) *LoggingCaseService {
	return &LoggingCaseService{next: next, logger: logger}
}

// SearchCases delegates to the wrapped service and logs the operation.
func (s *LoggingCaseService) SearchCases(ctx context.Context, query string) (cases []compass.Case, err error) {
	defer func(begin time.Time) {
		s.logger.Info("case search",
			"query", query,
			"count", len(cases),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchCases(ctx, query)
}

// FindCaseByID delegates to the wrapped service and logs the operation.
func (s *LoggingCaseService) FindCaseByID(ctx context.Context, id compass.CaseID) (c *compass.CaseDetail, err error) {
	defer func(begin time.Time) {
		s.logger.Info("case lookup",
			"case_id", id.String(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCaseByID(ctx, id)
}
