package main

import (
	"fmt"

	"github.com/fwojciec/compass"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLookups bounds in-flight case lookups.
const maxConcurrentLookups = 4

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	details := make([]*compass.CaseDetail, len(c.IDs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, id := range c.IDs {
		i, id := i, id
		g.Go(func() error {
			d, err := deps.Cases.FindCaseByID(ctx, compass.ParseCaseID(id))
			if err != nil {
				return err
			}
			details[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", compass.ErrorMessage(err))
		return err
	}

	for i, d := range details {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, compass.FormatCaseDetail(d))
	}
	return nil
}
