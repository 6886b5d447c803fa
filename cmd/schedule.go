package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/contrafactum/whatif"
	"github.com/contrafactum/whatif/renderer"
	"github.com/google/subcommands"
)

// lotsFlag collects repeated -lot <date>:<amount> flags.
type lotsFlag []whatif.Lot

func (l *lotsFlag) String() string {
	parts := make([]string, len(*l))
	for i, lot := range *l {
		parts[i] = fmt.Sprintf("%s:%g", lot.Date, lot.Amount.AsFloat())
	}
	return strings.Join(parts, ",")
}

func (l *lotsFlag) Set(v string) error {
	dateStr, amountStr, ok := strings.Cut(v, ":")
	if !ok {
		return fmt.Errorf("invalid lot %q, want <date>:<amount>", v)
	}
	date, err := whatif.ParseDate(dateStr)
	if err != nil {
		return fmt.Errorf("invalid lot date %q: %w", dateStr, err)
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return fmt.Errorf("invalid lot amount %q: %w", amountStr, err)
	}
	*l = append(*l, whatif.Lot{Date: date, Amount: whatif.USD(amount)})
	return nil
}

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	asset string
	lots  lotsFlag
	from  string
	to    string
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "an explicit list of dated contributions" }
func (*scheduleCmd) Usage() string {
	return `wic schedule -asset <id> -lot <date>:<usd> [-lot <date>:<usd> ...] [-from <date>] [-to <date>]

  Invests each lot at the first available price at or after its date. Lots may
  be given in any order. The period defaults to [earliest lot, today].

Usage Examples:
$ wic schedule -asset apple -lot 2020-01-15:500 -lot 2020-06-01:250

`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Asset identifier (see 'wic assets')")
	f.Var(&c.lots, "lot", "Contribution as <date>:<amount>, repeatable")
	f.StringVar(&c.from, "from", "", "Start date (defaults to the earliest lot)")
	f.StringVar(&c.to, "to", "", "End date (defaults to today)")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.lots) == 0 {
		fmt.Fprintln(os.Stderr, "at least one -lot is required")
		return subcommands.ExitUsageError
	}

	fromStr := c.from
	if fromStr == "" {
		earliest := c.lots[0].Date
		for _, lot := range c.lots[1:] {
			if lot.Date.Before(earliest) {
				earliest = lot.Date
			}
		}
		fromStr = earliest.String()
	}
	from, to, err := parseRange(fromStr, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	schedule := whatif.SteppedSchedule{Lots: c.lots}
	result, err := whatif.Calculate(appResolver(), c.asset, schedule, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ResultMarkdown(result))
	return subcommands.ExitSuccess
}
