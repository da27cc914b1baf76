package compass

import (
	"context"
	"slices"
	"sync"
)

// SessionState is a point-in-time copy of a Session's state.
type SessionState struct {
	Query   string
	Results []Case

	// Selected holds selected case ids in the order they were selected.
	// It may contain ids that are no longer in Results.
	Selected []CaseID

	IsSearching bool
	IsCoaching  bool

	// CoachResponse is nil until a coach request succeeds.
	CoachResponse CoachResult

	// Error is the user-readable message of the last failed operation.
	Error string
}

// Session is the single source of truth for a search-and-coach screen. It
// mediates between a view and the case and coaching services.
//
// Search and Coach block on the network and are meant to be called from
// their own goroutines. The lock is never held across a network call. When
// calls of the same kind overlap, only the most recently started one
// applies its outcome; earlier responses are discarded.
type Session struct {
	cases CaseSearcher
	coach Coacher

	mu            sync.Mutex
	query         string
	results       []Case
	selected      []CaseID
	isSearching   bool
	isCoaching    bool
	coachResponse CoachResult
	err           string

	searchGen uint64
	coachGen  uint64
}

// NewSession returns a new Session backed by the given services.
func NewSession(cases CaseSearcher, coach Coacher) *Session {
	return &Session{cases: cases, coach: coach}
}

// SetQuery replaces the current query text.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

// Search runs query against the case service. On success the results are
// replaced, sorted by score, and the selection is cleared. On failure the
// previous results stay and the session error is set. The returned error
// mirrors the outcome.
func (s *Session) Search(ctx context.Context, query string) error {
	_, err := s.SearchApplied(ctx, query)
	return err
}

// SearchApplied is Search, also reporting whether the outcome reached the
// session. It does not when a later search started before this one
// returned.
func (s *Session) SearchApplied(ctx context.Context, query string) (bool, error) {
	s.mu.Lock()
	s.searchGen++
	gen := s.searchGen
	s.query = query
	s.isSearching = true
	s.err = ""
	s.coachResponse = nil
	s.mu.Unlock()

	defer s.endSearch(gen)

	results, err := s.cases.SearchCases(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.searchGen {
		return false, err
	}
	if err != nil {
		s.err = "Failed to search cases: " + ErrorMessage(err)
		return true, err
	}

	sorted := slices.Clone(results)
	SortCases(sorted)
	s.results = sorted
	s.selected = nil
	return true, nil
}

func (s *Session) endSearch(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.searchGen {
		s.isSearching = false
	}
}

// ToggleSelection adds c to the selection if absent and removes it if
// present.
func (s *Session) ToggleSelection(c Case) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.selected, c.ID); i >= 0 {
		s.selected = slices.Delete(s.selected, i, i+1)
		return
	}
	s.selected = append(s.selected, c.ID)
}

// IsSelected reports whether id is in the selection.
func (s *Session) IsSelected(id CaseID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.selected, id)
}

// CoachCaseIDs returns the case ids a Coach call would send right now.
func (s *Session) CoachCaseIDs() []CaseID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coachCaseIDs()
}

// coachCaseIDs returns the selected ids still present in the results, in
// results order. With nothing usable selected it falls back to the top
// result, or to no ids at all when there are no results.
func (s *Session) coachCaseIDs() []CaseID {
	ids := make([]CaseID, 0, len(s.selected))
	for _, c := range s.results {
		if slices.Contains(s.selected, c.ID) {
			ids = append(ids, c.ID)
		}
	}
	if len(ids) == 0 && len(s.results) > 0 {
		ids = append(ids, s.results[0].ID)
	}
	return ids
}

// Coach requests a coach response for the current query and selection. On
// success the raw response is stored; on failure the session error is set.
// The returned error mirrors the outcome.
func (s *Session) Coach(ctx context.Context) error {
	s.mu.Lock()
	s.coachGen++
	gen := s.coachGen
	s.isCoaching = true
	s.err = ""
	s.coachResponse = nil
	req := CoachRequest{Query: s.query, CaseIDs: s.coachCaseIDs()}
	s.mu.Unlock()

	defer s.endCoach(gen)

	result, err := s.coach.Coach(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.coachGen {
		return err
	}
	if err != nil {
		s.err = "Failed to get coaching response: " + ErrorMessage(err)
		return err
	}
	s.coachResponse = slices.Clone(result)
	return nil
}

func (s *Session) endCoach(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.coachGen {
		s.isCoaching = false
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionState{
		Query:         s.query,
		Results:       slices.Clone(s.results),
		Selected:      slices.Clone(s.selected),
		IsSearching:   s.isSearching,
		IsCoaching:    s.isCoaching,
		CoachResponse: slices.Clone(s.coachResponse),
		Error:         s.err,
	}
}
