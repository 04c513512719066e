package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	fbcsv "github.com/jmalczak/factbook/csv"
	"github.com/jmalczak/factbook/fs"
	"github.com/jmalczak/factbook/goquery"
	"github.com/jmalczak/factbook/htmltomarkdown"
	"github.com/jmalczak/factbook/inmem"
	"github.com/jmalczak/factbook/resolve"
	"github.com/jmalczak/factbook/rules"
	fbslog "github.com/jmalczak/factbook/slog"
	fbzip "github.com/jmalczak/factbook/zip"
)

// Data directory file names.
const (
	archiveFile     = "countries.zip"
	catalogFile     = "countryList.txt"
	profileFile     = "countries.csv"
	destinationFile = "Tourism.csv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin for the interactive shell. Defaults to os.Stdin.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  m.Stdin,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("factbook"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'factbook --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Wire the knowledge base for fact lookup commands
	switch cmd {
	case "countries", "ask", "shell":
		archive, err := fbzip.Open(filepath.Join(cli.Data, archiveFile))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: set FACTBOOK_DATA or --data to the directory containing countries.zip")
			return fmt.Errorf("failed to open country archive: %w", err)
		}
		defer archive.Close()

		catalog, err := fs.OpenCatalog(filepath.Join(cli.Data, catalogFile))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: set FACTBOOK_DATA or --data to the directory containing countryList.txt")
			return fmt.Errorf("failed to open country catalog: %w", err)
		}

		loader := &inmem.Loader{
			Catalog: catalog,
			Pages:   archive,
			Parser:  goquery.NewParser(htmltomarkdown.NewConverter()),
		}

		var progress inmem.LoadProgressFunc
		if cli.Verbose {
			progress = func(p inmem.LoadProgress) {
				if p.Err != nil {
					logger.Warn("country skipped", "code", p.Code, "name", p.Name, "error", p.Err)
				}
			}
		}

		store, err := loader.Load(ctx, progress)
		if err != nil {
			return fmt.Errorf("failed to load knowledge base: %w", err)
		}

		resolver := resolve.New(store)
		deps.Store = store
		deps.Resolver = resolver
		if cli.Verbose {
			deps.Store = fbslog.NewLoggingStore(store, logger)
			deps.Resolver = fbslog.NewLoggingResolver(resolver, logger)
		}

	case "live", "work", "travel":
		tables, err := fbcsv.Open(
			filepath.Join(cli.Data, profileFile),
			filepath.Join(cli.Data, destinationFile),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: set FACTBOOK_DATA or --data to the directory containing countries.csv and Tourism.csv")
			return fmt.Errorf("failed to open tables: %w", err)
		}
		deps.Advisor = &rules.Engine{Profiles: tables, Destinations: tables}
	}

	return kongCtx.Run(deps)
}
