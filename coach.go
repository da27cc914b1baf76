package compass

import (
	"context"
	"encoding/json"
)

// CoachRequest asks for a coach response to a query, grounded in the given
// cases.
type CoachRequest struct {
	Query   string   `json:"query"`
	CaseIDs []CaseID `json:"case_ids"`
}

// MarshalJSON always encodes CaseIDs as an array, never null.
func (r CoachRequest) MarshalJSON() ([]byte, error) {
	ids := r.CaseIDs
	if ids == nil {
		ids = []CaseID{}
	}
	return json.Marshal(struct {
		Query   string   `json:"query"`
		CaseIDs []CaseID `json:"case_ids"`
	}{r.Query, ids})
}

// CoachResult is the coaching endpoint's response body, kept verbatim.
type CoachResult json.RawMessage

// MarshalJSON returns the result unchanged.
func (r CoachResult) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r, nil
}

// Answer decodes the fields of the result that are known to the client.
// Unknown fields are ignored.
func (r CoachResult) Answer() (*CoachAnswer, error) {
	if len(r) == 0 {
		return nil, Errorf(EINVALID, "empty coach response")
	}
	var a CoachAnswer
	if err := json.Unmarshal(r, &a); err != nil {
		return nil, Errorf(EINVALID, "cannot decode coach response: %s", err)
	}
	return &a, nil
}

// CoachAnswer is the display view of a CoachResult.
type CoachAnswer struct {
	AnswerMarkdown string     `json:"answer_markdown"`
	Citations      []Citation `json:"citations"`
	Refused        bool       `json:"refused"`
	RefusalReason  string     `json:"refusal_reason"`
}

// Citation points at a case, and optionally a sentence of its response,
// that an answer relies on.
type Citation struct {
	CaseID     CaseID `json:"case_id"`
	SentenceID *int   `json:"sent_id,omitempty"`
}

// Coacher synthesizes coaching guidance from cases.
type Coacher interface {
	// Coach returns the coach response for the request.
	Coach(ctx context.Context, req CoachRequest) (CoachResult, error)
}
