package main

import (
	"fmt"

	"github.com/fwojciec/compass"
)

// Run executes the health command.
func (c *HealthCmd) Run(deps *Dependencies) error {
	h, err := deps.Health.Health(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", compass.ErrorMessage(err))
		fmt.Fprintf(deps.Stderr, "Hint: is the backend running at %s?\n", deps.Config.BaseURL)
		return err
	}

	fmt.Fprintf(deps.Stdout, "status: %s\ninitialized: %t\n", h.Status, h.Initialized)
	if !h.Initialized {
		fmt.Fprintln(deps.Stderr, "warning: backend is up but its case index is not loaded yet")
	}
	return nil
}
