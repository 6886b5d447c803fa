// Package cmd implements the wic CLI application.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/contrafactum/whatif"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&calcCmd{}, "calculations")
	c.Register(&dcaCmd{}, "calculations")
	c.Register(&scheduleCmd{}, "calculations")

	c.Register(&scenarioCmd{}, "content")
	c.Register(&storiesCmd{}, "content")
	c.Register(&tipCmd{}, "content")
	c.Register(&leaderboardCmd{}, "content")
	c.Register(&assetsCmd{}, "content")

	c.Register(&topicCmd{}, "help")
}

// CommandNames lists every registered subcommand, for shell completion.
func CommandNames() []string {
	return []string{"calc", "dca", "schedule", "scenario", "stories", "tip", "leaderboard", "assets", "topic"}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaultResolver *whatif.Resolver

// appResolver returns the shared resolver, built on first use so that flag
// values (the API key) are parsed before the remote clients are assembled.
func appResolver() *whatif.Resolver {
	if defaultResolver == nil {
		defaultResolver = whatif.NewDefaultResolver()
	}
	return defaultResolver
}

// parseRange parses the -from and -to flags. An empty -to defaults to today.
func parseRange(from, to string) (whatif.Date, whatif.Date, error) {
	if from == "" {
		return whatif.Date{}, whatif.Date{}, fmt.Errorf("-from is required")
	}
	f, err := whatif.ParseDate(from)
	if err != nil {
		return whatif.Date{}, whatif.Date{}, fmt.Errorf("invalid -from date: %w", err)
	}
	if to == "" {
		return f, whatif.Today(), nil
	}
	t, err := whatif.ParseDate(to)
	if err != nil {
		return whatif.Date{}, whatif.Date{}, fmt.Errorf("invalid -to date: %w", err)
	}
	return f, t, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when stdout is not a terminal or rendering fails.
func printMarkdown(md string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
