package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jmalczak/factbook"
)

// Run executes the shell command.
func (c *ShellCmd) Run(deps *Dependencies) error {
	country, err := deps.Store.Country(deps.Ctx, c.Country)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", factbook.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Ask about %s. Type 'exit' to quit.\n", country.Name)

	var lastQuery string
	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		res, err := deps.Resolver.Resolve(deps.Ctx, country, factbook.Query{
			Text:     line,
			LastText: lastQuery,
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", factbook.ErrorMessage(err))
			continue
		}

		renderResolution(deps.Stdout, res)

		// Command lines do not become the ";matches" fallback.
		if _, _, isCmd := factbook.ParseCommand(line); !isCmd {
			lastQuery = line
		}
	}

	return scanner.Err()
}
