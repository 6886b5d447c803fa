package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/contrafactum/whatif"
	"github.com/contrafactum/whatif/renderer"
	"github.com/google/subcommands"
)

// dcaCmd holds the flags for the 'dca' subcommand.
type dcaCmd struct {
	asset  string
	amount float64
	every  string
	from   string
	to     string
}

func (*dcaCmd) Name() string     { return "dca" }
func (*dcaCmd) Synopsis() string { return "dollar-cost averaging over a period" }
func (*dcaCmd) Usage() string {
	return `wic dca -asset <id> -amount <usd> [-every <weekly|monthly>] -from <date> [-to <date>]

  Invests the amount at a fixed cadence across the whole period. The cadence
  steps over the resolved data points, so on coarse snapshots it is a coarse
  approximation.

Usage Examples:
$ wic dca -asset sp500 -amount 100 -every monthly -from 2015-01-01

`
}

func (c *dcaCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Asset identifier (see 'wic assets')")
	f.Float64Var(&c.amount, "amount", 0, "Amount of each contribution, in USD")
	f.StringVar(&c.every, "every", "monthly", "Contribution cadence (weekly, monthly)")
	f.StringVar(&c.from, "from", "", "Start date")
	f.StringVar(&c.to, "to", "", "End date (defaults to today)")
}

func parseFrequency(s string) (whatif.Frequency, error) {
	switch s {
	case "weekly":
		return whatif.Weekly, nil
	case "monthly":
		return whatif.Monthly, nil
	}
	return 0, fmt.Errorf("invalid cadence %q, want weekly or monthly", s)
}

func (c *dcaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, to, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	every, err := parseFrequency(c.every)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	schedule := whatif.PeriodicSchedule{Amount: whatif.USD(c.amount), Every: every}
	result, err := whatif.Calculate(appResolver(), c.asset, schedule, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ResultMarkdown(result))
	return subcommands.ExitSuccess
}
