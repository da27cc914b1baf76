package bubbletea

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/compass"
)

// View renders the screen from the current session snapshot.
func (m Model) View() string {
	state := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Personal Compass"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Search real conversations and get guidance drawn from them."))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Search Results"))
	b.WriteString("\n")
	b.WriteString(m.viewResults(state))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Coach"))
	b.WriteString("\n")
	b.WriteString(m.viewCoach(state))
	b.WriteString("\n")

	b.WriteString(m.viewHelp(state))
	return b.String()
}

func (m Model) viewResults(state compass.SessionState) string {
	switch {
	case state.IsSearching:
		return m.spinner.View() + " Searching..."
	case state.Error != "":
		return errorStyle.Render(state.Error)
	case len(state.Results) == 0:
		return emptyStyle.Render("No results found")
	}

	cardWidth := max(m.width-2, 20)
	cards := make([]string, 0, len(state.Results))
	for i, c := range state.Results {
		cards = append(cards, m.viewCase(c, i == m.cursor, slices.Contains(state.Selected, c.ID), cardWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) viewCase(c compass.Case, atCursor, selected bool, width int) string {
	check := "[ ]"
	if selected {
		check = "[x]"
	}

	label, response := "Summary:", compass.Summary(c.Response)
	if m.expanded[c.ID] {
		label, response = "Full Response:", c.Response
	}

	body := fmt.Sprintf("%s %s  %s\n%s %s\n%s %s",
		check, compass.CaseTitle(c.ID), labelStyle.Render(fmt.Sprintf("score %.3f", c.Score)),
		labelStyle.Render("Context:"), c.Context,
		labelStyle.Render(label), response,
	)

	style := cardStyle
	switch {
	case atCursor && m.focus == focusList:
		style = cursorCardStyle
	case selected:
		style = selectedCardStyle
	}
	return style.Width(width - 2).Render(body)
}

func (m Model) viewCoach(state compass.SessionState) string {
	switch {
	case state.IsCoaching:
		return m.spinner.View() + " Asking the coach..."
	case state.CoachResponse != nil:
		return m.viewport.View()
	case len(state.Results) == 0:
		return emptyStyle.Render("Search for cases to enable coaching.")
	}

	n := len(m.session.CoachCaseIDs())
	return emptyStyle.Render(fmt.Sprintf("Press c to get coaching based on %d case(s).", n))
}

func (m Model) viewHelp(state compass.SessionState) string {
	if m.focus == focusInput {
		return helpStyle.Render("enter search • tab results • esc quit")
	}
	keys := "↑/↓ move • space select • f full text • tab query • esc quit"
	if len(state.Results) > 0 {
		keys = "↑/↓ move • space select • f full text • c coach • pgup/pgdn scroll • tab query • esc quit"
	}
	return helpStyle.Render(keys)
}
