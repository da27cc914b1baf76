package compass

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"strconv"
)

// CaseID identifies a case. The search endpoint may return ids as JSON
// numbers or strings; CaseID remembers which so it is sent back to the
// coaching endpoint in the same form. CaseID is comparable and can be used
// as a map key.
type CaseID struct {
	value   string
	numeric bool
}

// IntCaseID returns a numeric case id.
func IntCaseID(n int64) CaseID {
	return CaseID{value: strconv.FormatInt(n, 10), numeric: true}
}

// StringCaseID returns a string case id.
func StringCaseID(s string) CaseID {
	return CaseID{value: s}
}

// ParseCaseID interprets user input as a case id. Integer input becomes a
// numeric id, anything else a string id.
func ParseCaseID(s string) CaseID {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntCaseID(n)
	}
	return StringCaseID(s)
}

// String returns the id as displayed to users.
func (id CaseID) String() string {
	return id.value
}

// IsZero reports whether the id is unset.
func (id CaseID) IsZero() bool {
	return id.value == "" && !id.numeric
}

// MarshalJSON encodes the id in the form it was received.
func (id CaseID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON accepts a JSON number or string. A JSON null leaves the
// zero id.
func (id *CaseID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = CaseID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringCaseID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return Errorf(EINVALID, "case id must be a number or string, got %s", data)
	}
	*id = CaseID{value: n.String(), numeric: true}
	return nil
}

// Case represents a single retrievable conversation record returned by a
// search, scored by its relevance to the query.
type Case struct {
	ID       CaseID  `json:"case_id"`
	Context  string  `json:"context"`
	Response string  `json:"response"`
	Score    float64 `json:"score"`
}

// CaseDetail is a case looked up by id, including the sentence spans of its
// response that coach citations refer to.
type CaseDetail struct {
	ID        CaseID     `json:"case_id"`
	Context   string     `json:"context"`
	Response  string     `json:"response"`
	Sentences []Sentence `json:"response_sentences,omitempty"`
}

// Sentence is a sentence of a case response with its character offsets.
type Sentence struct {
	ID    int    `json:"sent_id"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// CaseSearcher finds cases relevant to a free-text query.
type CaseSearcher interface {
	// SearchCases returns cases matching the query. Order is not guaranteed.
	SearchCases(ctx context.Context, query string) ([]Case, error)
}

// CaseService represents a service for finding cases.
type CaseService interface {
	CaseSearcher

	// FindCaseByID retrieves a case by id.
	// Returns ENOTFOUND if the case does not exist.
	FindCaseByID(ctx context.Context, id CaseID) (*CaseDetail, error)
}

// SortCases sorts cases by score, highest first. Cases with equal scores
// keep their relative order.
func SortCases(cases []Case) {
	sort.SliceStable(cases, func(i, j int) bool {
		return cases[i].Score > cases[j].Score
	})
}
