package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/compass"
)

// Run executes the coach command.
func (c *CoachCmd) Run(deps *Dependencies) error {
	session := compass.NewSession(deps.Cases, deps.Coacher)
	if err := session.Search(deps.Ctx, strings.Join(c.Query, " ")); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", session.Snapshot().Error)
		return err
	}

	results := session.Snapshot().Results
	if len(results) == 0 && !c.AllowEmpty {
		fmt.Fprintln(deps.Stderr, "error: no cases found for query. Try different words, or pass --allow-empty to ask anyway.")
		return compass.Errorf(compass.ENOTFOUND, "no cases found")
	}

	for _, id := range c.CaseIDs {
		r, ok := findResult(results, id)
		if !ok {
			fmt.Fprintf(deps.Stderr, "warning: case %s is not in the search results, ignoring\n", id)
			continue
		}
		if !session.IsSelected(r.ID) {
			session.ToggleSelection(r)
		}
	}

	if err := session.Coach(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", session.Snapshot().Error)
		return err
	}
	resp := session.Snapshot().CoachResponse

	if c.Raw {
		fmt.Fprintln(deps.Stdout, string(resp))
		return nil
	}

	md := compass.FormatCoachResult(resp)
	out, err := deps.Renderer.Render(md)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", compass.ErrorMessage(err))
		out = md
	}
	fmt.Fprintln(deps.Stdout, strings.TrimRight(out, "\n"))
	return nil
}

// findResult matches id against result ids by their printed form, so "7"
// finds a case whether the backend sent it as a number or a string.
func findResult(results []compass.Case, id string) (compass.Case, bool) {
	for _, r := range results {
		if r.ID.String() == id {
			return r, true
		}
	}
	return compass.Case{}, false
}
