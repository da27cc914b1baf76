package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/compass"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	session := compass.NewSession(deps.Cases, deps.Coacher)
	if err := session.Search(deps.Ctx, strings.Join(c.Query, " ")); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", session.Snapshot().Error)
		return err
	}
	results := session.Snapshot().Results

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if results == nil {
			results = []compass.Case{}
		}
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found")
		return nil
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, compass.FormatCase(r, c.Full))
	}
	return nil
}
