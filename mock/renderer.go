package mock

import "github.com/fwojciec/compass"

var _ compass.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of compass.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
