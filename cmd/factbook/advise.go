package main

import (
	"fmt"

	"github.com/jmalczak/factbook"
)

// Run executes the live command.
func (c *LiveCmd) Run(deps *Dependencies) error {
	suggestions, err := deps.Advisor.SuggestLive(deps.Ctx, factbook.LivePreferences{
		Climate:    c.Climate,
		Government: c.Government,
		Religion:   c.Religion,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", factbook.ErrorMessage(err))
		return err
	}

	renderSuggestions(deps.Stdout, suggestions, "countries")
	return nil
}

// Run executes the work command.
func (c *WorkCmd) Run(deps *Dependencies) error {
	suggestions, err := deps.Advisor.SuggestWork(deps.Ctx, factbook.WorkPreferences{
		Mode:  c.Mode,
		Field: c.Field,
		Trade: c.Trade,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", factbook.ErrorMessage(err))
		return err
	}

	renderSuggestions(deps.Stdout, suggestions, "countries")
	return nil
}

// Run executes the travel command.
func (c *TravelCmd) Run(deps *Dependencies) error {
	suggestions, err := deps.Advisor.SuggestTravel(deps.Ctx, factbook.TravelPreferences{
		Budget:    c.Budget,
		PlaceType: c.PlaceType,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", factbook.ErrorMessage(err))
		return err
	}

	renderSuggestions(deps.Stdout, suggestions, "destinations")
	return nil
}
