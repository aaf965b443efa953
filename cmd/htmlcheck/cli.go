package main

import (
	"context"

	"github.com/fwojciec/htmlcheck"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Checks string `short:"c" name:"checks" default:"checks.json" placeholder:"CHECK_FILE" help:"Path to checks.json"`
	File   string `short:"f" name:"file" placeholder:"HTML_FILE" help:"Path to file"`
	URL    string `short:"u" name:"url" placeholder:"URL_PATH" help:"Path of URL"`
}

// Config converts the parsed flags into a check configuration.
func (c *CLI) Config() htmlcheck.Config {
	return htmlcheck.Config{
		Checks: c.Checks,
		File:   c.File,
		URL:    c.URL,
	}
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx context.Context

	Documents htmlcheck.DocumentLoader
	Selectors htmlcheck.SelectorLoader
	Reporter  htmlcheck.Reporter
}
