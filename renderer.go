package compass

// Renderer renders Markdown for display in a terminal.
type Renderer interface {
	// Render transforms Markdown into styled terminal text.
	Render(markdown string) (string, error)
}
