package main

import (
	"fmt"

	"github.com/jmalczak/factbook"
)

// Run executes the countries command.
func (c *CountriesCmd) Run(deps *Dependencies) error {
	countries, err := deps.Store.Countries(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", factbook.ErrorMessage(err))
		return err
	}

	if len(countries) == 0 {
		fmt.Fprintln(deps.Stdout, "No countries loaded.")
		return nil
	}

	for _, country := range countries {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", country.Code, country.Name)
	}

	return nil
}
