package mock

import (
	"context"

	"github.com/fwojciec/compass"
)

var _ compass.CaseService = (*CaseService)(nil)

// CaseService is a mock implementation of compass.CaseService.
type CaseService struct {
	SearchCasesFn  func(ctx context.Context, query string) ([]compass.Case, error)
	FindCaseByIDFn func(ctx context.Context, id compass.CaseID) (*compass.CaseDetail, error)
}

func (s *CaseService) SearchCases(ctx context.Context, query string) ([]compass.Case, error) {
	return s.SearchCasesFn(ctx, query)
}

func (s *CaseService) FindCaseByID(ctx context.Context, id compass.CaseID) (*compass.CaseDetail, error) {
	return s.FindCaseByIDFn(ctx, id)
}
