package http

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/fwojciec/compass"
)

// Ensure CaseService implements compass.CaseService at compile time.
var _ compass.CaseService = (*CaseService)(nil)

// CaseService searches and looks up cases via the backend API.
type CaseService struct {
	client *Client
}

// NewCaseService creates a new CaseService.
func NewCaseService(client *Client) *CaseService {
	return &CaseService{client: client}
}

type searchRequest struct {
	Query string `json:"query"`
}

// SearchCases posts the query to the search endpoint and returns the cases
// in the order the server sent them.
func (s *CaseService) SearchCases(ctx context.Context, query string) ([]compass.Case, error) {
	resp, err := s.client.do(ctx, http.MethodPost, SearchCasesPath, searchRequest{Query: query})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, statusError(resp.StatusCode, "Search failed")
	}

	var cases []compass.Case
	if err := decode(resp, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// FindCaseByID retrieves a case by id.
func (s *CaseService) FindCaseByID(ctx context.Context, id compass.CaseID) (*compass.CaseDetail, error) {
	if id.IsZero() {
		return nil, compass.Errorf(compass.EINVALID, "case id required")
	}

	resp, err := s.client.do(ctx, http.MethodGet, CasesPath+url.PathEscape(id.String()), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, compass.Errorf(compass.ENOTFOUND, "case %s not found", id)
	}
	if !isSuccess(resp.StatusCode) {
		return nil, statusError(resp.StatusCode, "Case lookup failed")
	}

	var c compass.CaseDetail
	if err := decode(resp, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
