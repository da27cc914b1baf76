package bubbletea

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#14b8a6")
	colorMuted  = lipgloss.Color("#6b7280")
	colorError  = lipgloss.Color("#b91c1c")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorError).
			PaddingLeft(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(colorAccent)

	cursorCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("#f59e0b"))

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)
