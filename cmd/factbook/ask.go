package main

import (
	"fmt"

	"github.com/jmalczak/factbook"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	country, err := deps.Store.Country(deps.Ctx, c.Country)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", factbook.ErrorMessage(err))
		return err
	}

	res, err := deps.Resolver.Resolve(deps.Ctx, country, factbook.Query{Text: c.Query})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", factbook.ErrorMessage(err))
		return err
	}

	renderResolution(deps.Stdout, res)

	// Offer close topic names when nothing matched.
	if res.Kind == factbook.KindNoMatch {
		if _, _, isCmd := factbook.ParseCommand(c.Query); isCmd {
			return nil
		}
		sugg, err := deps.Resolver.Resolve(deps.Ctx, country, factbook.Query{
			Text: factbook.CmdMatches + " " + c.Query,
		})
		if err == nil && len(sugg.Names) > 0 {
			fmt.Fprintln(deps.Stdout, "Did you mean:")
			for _, name := range sugg.Names {
				fmt.Fprintf(deps.Stdout, "  %s\n", name)
			}
		}
	}

	return nil
}
