// Package bubbletea provides the interactive terminal view for compass.
//
// The view is presentational: all state lives in a compass.Session, which
// the Model reads through snapshots and drives through its operations.
package bubbletea

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/compass"
)

// focus is the component receiving key input.
type focus int

const (
	focusInput focus = iota
	focusList
)

const (
	defaultWidth       = 80
	defaultCoachHeight = 12
)

// Model is the root Bubble Tea model.
type Model struct {
	ctx      context.Context
	session  *compass.Session
	renderer compass.Renderer

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	focus    focus
	cursor   int
	expanded map[compass.CaseID]bool

	// initialQuery is searched for on Init when set.
	initialQuery string

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithQuery pre-fills the query input and searches for it on start.
func WithQuery(query string) Option {
	return func(m *Model) {
		m.initialQuery = query
	}
}

// New creates a new Model over session. Coach answers are rendered with
// renderer. Network calls made by the view use ctx.
func New(ctx context.Context, session *compass.Session, renderer compass.Renderer, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Describe what you're going through..."
	ti.Prompt = "> "
	ti.CharLimit = 500
	ti.Width = defaultWidth - 4
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		ctx:      ctx,
		session:  session,
		renderer: renderer,
		input:    ti,
		spinner:  s,
		viewport: viewport.New(defaultWidth, defaultCoachHeight),
		expanded: make(map[compass.CaseID]bool),
		width:    defaultWidth,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.initialQuery != "" {
		m.input.SetValue(m.initialQuery)
		m.session.SetQuery(m.initialQuery)
	}
	return m
}

// Init starts the spinner and the initial search, if any.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.initialQuery != "" {
		cmds = append(cmds, m.search(m.initialQuery))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height/3, 5)
		m.refreshCoach()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchDoneMsg:
		if msg.stale {
			return m, nil
		}
		if msg.err == nil {
			m.cursor = 0
			m.expanded = make(map[compass.CaseID]bool)
			if len(m.session.Snapshot().Results) > 0 {
				m.focus = focusList
				m.input.Blur()
			}
		}
		m.refreshCoach()
		return m, nil

	case coachDoneMsg:
		m.refreshCoach()
		m.viewport.GotoTop()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "shift+tab":
		return m.toggleFocus()
	}

	if m.focus == focusInput {
		if msg.Type == tea.KeyEnter {
			query := m.input.Value()
			return m, m.search(query)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.session.SetQuery(m.input.Value())
		return m, cmd
	}

	state := m.session.Snapshot()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(state.Results)-1 {
			m.cursor++
		}
	case " ", "x":
		if c, ok := m.current(state); ok {
			m.session.ToggleSelection(c)
		}
	case "f":
		if c, ok := m.current(state); ok {
			m.expanded[c.ID] = !m.expanded[c.ID]
		}
	case "c":
		if len(state.Results) > 0 {
			return m, m.coach()
		}
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case "/":
		return m.toggleFocus()
	}
	return m, nil
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		return m, nil
	}
	m.focus = focusInput
	return m, m.input.Focus()
}

// current returns the case under the cursor.
func (m Model) current(state compass.SessionState) (compass.Case, bool) {
	if m.cursor < 0 || m.cursor >= len(state.Results) {
		return compass.Case{}, false
	}
	return state.Results[m.cursor], true
}

func (m Model) search(query string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		applied, err := session.SearchApplied(ctx, query)
		return searchDoneMsg{stale: !applied, err: err}
	}
}

func (m Model) coach() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return coachDoneMsg{err: session.Coach(ctx)}
	}
}

// refreshCoach renders the current coach response into the viewport.
func (m *Model) refreshCoach() {
	resp := m.session.Snapshot().CoachResponse
	if resp == nil {
		m.viewport.SetContent("")
		return
	}

	md := compass.FormatCoachResult(resp)
	if m.renderer == nil {
		m.viewport.SetContent(md)
		return
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		out = md
	}
	m.viewport.SetContent(out)
}
