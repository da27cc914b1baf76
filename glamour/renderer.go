// Package glamour renders coach answers for the terminal using
// charmbracelet/glamour.
package glamour

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fwojciec/compass"
)

// AutoStyle picks a dark or light style from the terminal background.
const AutoStyle = "auto"

// Ensure Renderer implements compass.Renderer at compile time.
var _ compass.Renderer = (*Renderer)(nil)

// Renderer wraps a glamour TermRenderer.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer creates a new Renderer. Style is AutoStyle, a standard glamour
// style name ("dark", "light", "notty", "ascii", ...) or a path to a JSON
// style file. A wordWrap of zero disables wrapping.
func NewRenderer(style string, wordWrap int) (*Renderer, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != AutoStyle {
		styleOpt = glamour.WithStylePath(style)
	}

	term, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return nil, compass.Errorf(compass.EINVALID, "invalid render style %q: %s", style, err)
	}
	return &Renderer{term: term}, nil
}

// Render transforms Markdown into styled terminal text.
func (r *Renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	return r.term.Render(markdown)
}
