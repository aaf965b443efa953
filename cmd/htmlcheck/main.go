package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/fs"
	"github.com/fwojciec/htmlcheck/goquery"
	checkhttp "github.com/fwojciec/htmlcheck/http"
	"github.com/fwojciec/htmlcheck/json"
	checkslog "github.com/fwojciec/htmlcheck/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitCode(err))
	}
}

// ExitCode returns the process status for an error returned by Run.
// Every failure, whatever its code, exits with status 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Main represents the program.
type Main struct {
	// LogLevel is the minimum level of log records written to stderr.
	LogLevel slog.Level

	// HTTPOptions configure the fetcher used for --url.
	HTTPOptions []checkhttp.Option
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		LogLevel: slog.LevelWarn,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("htmlcheck"),
		kong.Description("Check an HTML file or URL for elements matching a list of CSS selectors"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Help anywhere in args prints usage and stops before any check runs.
	if _, err := parser.Parse(args); exited {
		return nil
	} else if err != nil {
		return err
	}

	cfg := cli.Config()

	// Validate before touching either source
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, path := range []string{cfg.ChecksFile(), cfg.File} {
		if path != "" && !fs.Exists(path) {
			return htmlcheck.Errorf(htmlcheck.ENOTFOUND, "%s does not exist. Exiting.", path)
		}
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: m.LogLevel}))

	// Wire dependencies
	fetcher := checkslog.NewLoggingFetcher(checkhttp.NewFetcher(m.HTTPOptions...), logger)
	deps := &Dependencies{
		Ctx:       ctx,
		Documents: checkslog.NewLoggingDocumentLoader(goquery.NewLoader(fetcher), logger),
		Selectors: checkslog.NewLoggingSelectorLoader(fs.NewSelectorLoader(), logger),
		Reporter:  json.NewReporter(stdout),
	}

	cmd := &CheckCmd{Config: cfg}
	return cmd.Run(deps)
}
