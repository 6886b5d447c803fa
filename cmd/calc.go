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

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	asset  string
	amount float64
	from   string
	to     string
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "what a single lump-sum investment would be worth" }
func (*calcCmd) Usage() string {
	return `wic calc -asset <id> -amount <usd> -from <date> [-to <date>]

  Invests the amount once, at the price nearest the start date, and values the
  position at the last available price of the period.

Usage Examples:
$ wic calc -asset bitcoin -amount 100 -from 2011-02-01 -to 2021-11-01

`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Asset identifier (see 'wic assets')")
	f.Float64Var(&c.amount, "amount", 0, "Amount to invest, in USD")
	f.StringVar(&c.from, "from", "", "Buy date. See the user manual for supported date formats.")
	f.StringVar(&c.to, "to", "", "Sell date (defaults to today)")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, to, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	schedule := whatif.SingleSchedule{Amount: whatif.USD(c.amount), Date: from}
	result, err := whatif.Calculate(appResolver(), c.asset, schedule, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ResultMarkdown(result))
	return subcommands.ExitSuccess
}
