package main

import (
	"context"
	"io"

	"github.com/jmalczak/factbook"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Stdin    io.Reader
	Store    factbook.KnowledgeStore
	Resolver factbook.TopicResolver
	Advisor  factbook.Advisor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Data    string `help:"Data directory containing the country archive and tables" env:"FACTBOOK_DATA" default:"."`
	Verbose bool   `short:"v" help:"Log lookups and queries to stderr"`

	Countries CountriesCmd `cmd:"" help:"List all known countries"`
	Ask       AskCmd       `cmd:"" help:"Ask a single question about a country"`
	Shell     ShellCmd     `cmd:"" help:"Start an interactive question session for a country"`
	Live      LiveCmd      `cmd:"" help:"Suggest countries to live in"`
	Work      WorkCmd      `cmd:"" help:"Suggest countries to work in"`
	Travel    TravelCmd    `cmd:"" help:"Suggest travel destinations"`
}

// CountriesCmd is the "countries" subcommand.
type CountriesCmd struct{}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Country string `arg:"" help:"Country name or page code"`
	Query   string `arg:"" help:"Topic to look up"`
}

// ShellCmd is the "shell" subcommand.
type ShellCmd struct {
	Country string `arg:"" help:"Country name or page code"`
}

// LiveCmd is the "live" subcommand.
type LiveCmd struct {
	Climate    string `help:"Preferred average weather"`
	Government string `help:"Preferred type of government"`
	Religion   string `help:"Preferred major religion"`
}

// WorkCmd is the "work" subcommand.
type WorkCmd struct {
	Mode  string `default:"job" enum:"job,business" help:"Work mode"`
	Field string `help:"Professional field domain"`
	Trade string `help:"Trade type, required in business mode"`
}

// TravelCmd is the "travel" subcommand.
type TravelCmd struct {
	Budget    int64  `help:"Trip budget"`
	PlaceType string `name:"place-type" help:"Kind of place to visit"`
}
