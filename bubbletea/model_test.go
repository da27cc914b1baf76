package bubbletea_test

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/compass"
	"github.com/fwojciec/compass/bubbletea"
	"github.com/fwojciec/compass/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and feeds the resulting message back into the model.
func run(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	return m
}

func newModel(cases compass.CaseSearcher, coacher compass.Coacher, opts ...bubbletea.Option) (tea.Model, *compass.Session) {
	session := compass.NewSession(cases, coacher)
	renderer := &mock.Renderer{
		RenderFn: func(md string) (string, error) {
			return "RENDERED " + md, nil
		},
	}
	return bubbletea.New(context.Background(), session, renderer, opts...), session
}

func searchReturning(cases ...compass.Case) *mock.CaseService {
	return &mock.CaseService{
		SearchCasesFn: func(_ context.Context, _ string) ([]compass.Case, error) {
			return cases, nil
		},
	}
}

func twoCases() []compass.Case {
	return []compass.Case{
		{ID: compass.IntCaseID(1), Context: "first context", Response: "first response", Score: 0.9},
		{ID: compass.IntCaseID(2), Context: "second context", Response: "second response", Score: 0.95},
	}
}

// search types query and submits it.
func search(t *testing.T, m tea.Model, query string) tea.Model {
	t.Helper()
	m, _ = m.Update(key(query))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return run(t, m, cmd)
}

func TestModel_InitialView(t *testing.T) {
	t.Parallel()

	m, _ := newModel(searchReturning(), nil)

	view := m.View()

	assert.Contains(t, view, "Search Results")
	assert.Contains(t, view, "No results found")
	assert.Contains(t, view, "Search for cases to enable coaching.")
}

func TestModel_TypingSetsQuery(t *testing.T) {
	t.Parallel()

	m, session := newModel(searchReturning(), nil)

	_, _ = m.Update(key("anxious"))

	assert.Equal(t, "anxious", session.Snapshot().Query)
}

func TestModel_Search(t *testing.T) {
	t.Parallel()

	t.Run("lists results by score", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		cases := &mock.CaseService{
			SearchCasesFn: func(_ context.Context, query string) ([]compass.Case, error) {
				gotQuery = query
				return twoCases(), nil
			},
		}
		m, _ := newModel(cases, nil)

		m = search(t, m, "feeling anxious")

		assert.Equal(t, "feeling anxious", gotQuery)
		view := m.View()
		first := strings.Index(view, "Conversation #2")
		second := strings.Index(view, "Conversation #1")
		require.NotEqual(t, -1, first)
		require.NotEqual(t, -1, second)
		assert.Less(t, first, second)
		assert.Contains(t, view, "Press c to get coaching based on 1 case(s).")
	})

	t.Run("shows error banner on failure", func(t *testing.T) {
		t.Parallel()

		cases := &mock.CaseService{
			SearchCasesFn: func(_ context.Context, _ string) ([]compass.Case, error) {
				return nil, compass.Errorf(compass.EINTERNAL, "Search failed: 500")
			},
		}
		m, _ := newModel(cases, nil)

		m = search(t, m, "q")

		assert.Contains(t, m.View(), "Failed to search cases: Search failed: 500")
	})

	t.Run("shows empty state for no matches", func(t *testing.T) {
		t.Parallel()

		m, _ := newModel(searchReturning(), nil)

		m = search(t, m, "q")

		assert.Contains(t, m.View(), "No results found")
	})
}

func TestModel_Selection(t *testing.T) {
	t.Parallel()

	m, session := newModel(searchReturning(twoCases()...), nil)
	m = search(t, m, "q")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, session.IsSelected(compass.IntCaseID(2)))
	assert.Contains(t, m.View(), "[x] Conversation #2")

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("x"))
	assert.True(t, session.IsSelected(compass.IntCaseID(1)))
	assert.Contains(t, m.View(), "Press c to get coaching based on 2 case(s).")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, session.IsSelected(compass.IntCaseID(1)))
	assert.Contains(t, m.View(), "[ ] Conversation #1")
}

func TestModel_StaleSearchKeepsViewState(t *testing.T) {
	t.Parallel()

	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	cases := &mock.CaseService{
		SearchCasesFn: func(_ context.Context, query string) ([]compass.Case, error) {
			if query == "slow" {
				close(slowStarted)
				<-releaseSlow
				return []compass.Case{{ID: compass.IntCaseID(9), Score: 1}}, nil
			}
			return twoCases(), nil
		},
	}
	m, session := newModel(cases, nil)

	m, _ = m.Update(key("slow"))
	m, slowCmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, slowCmd)
	slowDone := make(chan tea.Msg)
	go func() { slowDone <- slowCmd() }()
	<-slowStarted

	for range "slow" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = search(t, m, "fast")

	// Expand the top case, then move the cursor to the second one.
	m, _ = m.Update(key("f"))
	m, _ = m.Update(key("j"))

	close(releaseSlow)
	m, _ = m.Update(<-slowDone)

	assert.Equal(t, []compass.CaseID{compass.IntCaseID(2), compass.IntCaseID(1)}, ids(session.Snapshot().Results))
	assert.Contains(t, m.View(), "Full Response:")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, session.IsSelected(compass.IntCaseID(1)))
}

func ids(cases []compass.Case) []compass.CaseID {
	out := make([]compass.CaseID, len(cases))
	for i, c := range cases {
		out[i] = c.ID
	}
	return out
}

func TestModel_ToggleFullResponse(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 40)
	m, _ := newModel(searchReturning(compass.Case{ID: compass.IntCaseID(1), Response: long, Score: 1}), nil)
	m = search(t, m, "q")
	require.Contains(t, m.View(), "Summary:")

	m, _ = m.Update(key("f"))
	assert.Contains(t, m.View(), "Full Response:")

	m, _ = m.Update(key("f"))
	assert.Contains(t, m.View(), "Summary:")
}

func TestModel_Coach(t *testing.T) {
	t.Parallel()

	t.Run("is disabled without results", func(t *testing.T) {
		t.Parallel()

		called := false
		coacher := &mock.Coacher{
			CoachFn: func(_ context.Context, _ compass.CoachRequest) (compass.CoachResult, error) {
				called = true
				return nil, nil
			},
		}
		m, _ := newModel(searchReturning(), coacher)
		m = search(t, m, "q")
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

		_, cmd := m.Update(key("c"))

		assert.Nil(t, cmd)
		assert.False(t, called)
	})

	t.Run("renders coach answer", func(t *testing.T) {
		t.Parallel()

		var got compass.CoachRequest
		coacher := &mock.Coacher{
			CoachFn: func(_ context.Context, req compass.CoachRequest) (compass.CoachResult, error) {
				got = req
				return compass.CoachResult(`{"answer_markdown": "Try slow breathing."}`), nil
			},
		}
		m, _ := newModel(searchReturning(twoCases()...), coacher)
		m = search(t, m, "feeling anxious")

		m, cmd := m.Update(key("c"))
		m = run(t, m, cmd)

		assert.Equal(t, "feeling anxious", got.Query)
		assert.Equal(t, []compass.CaseID{compass.IntCaseID(2)}, got.CaseIDs)
		assert.Contains(t, m.View(), "RENDERED Try slow breathing.")
	})

	t.Run("clears answer on next search", func(t *testing.T) {
		t.Parallel()

		coacher := &mock.Coacher{
			CoachFn: func(_ context.Context, _ compass.CoachRequest) (compass.CoachResult, error) {
				return compass.CoachResult(`{"answer_markdown": "Old answer."}`), nil
			},
		}
		m, _ := newModel(searchReturning(twoCases()...), coacher)
		m = search(t, m, "q")
		m, cmd := m.Update(key("c"))
		m = run(t, m, cmd)
		require.Contains(t, m.View(), "Old answer.")

		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = run(t, m, cmd)

		assert.NotContains(t, m.View(), "Old answer.")
	})

	t.Run("shows coach error", func(t *testing.T) {
		t.Parallel()

		coacher := &mock.Coacher{
			CoachFn: func(_ context.Context, _ compass.CoachRequest) (compass.CoachResult, error) {
				return nil, compass.Errorf(compass.EINTERNAL, "Coach API error: 500")
			},
		}
		m, _ := newModel(searchReturning(twoCases()...), coacher)
		m = search(t, m, "q")

		m, cmd := m.Update(key("c"))
		m = run(t, m, cmd)

		assert.Contains(t, m.View(), "Failed to get coaching response: Coach API error: 500")
	})
}

func TestModel_WithQuery(t *testing.T) {
	t.Parallel()

	m, session := newModel(searchReturning(), nil, bubbletea.WithQuery("grief"))

	assert.Equal(t, "grief", session.Snapshot().Query)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "grief")
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	m, _ := newModel(searchReturning(), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
