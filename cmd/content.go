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

type storiesCmd struct{}

func (*storiesCmd) Name() string     { return "stories" }
func (*storiesCmd) Synopsis() string { return "educational stories about iconic investments" }
func (*storiesCmd) Usage() string {
	return `wic stories

  Prints the educational investment stories.
`
}
func (c *storiesCmd) SetFlags(f *flag.FlagSet) {}

func (c *storiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.StoriesMarkdown(whatif.InvestmentStories))
	return subcommands.ExitSuccess
}

// tipCmd prints the tip of the day, or all of them.
type tipCmd struct {
	all bool
}

func (*tipCmd) Name() string     { return "tip" }
func (*tipCmd) Synopsis() string { return "financial tip of the day" }
func (*tipCmd) Usage() string {
	return `wic tip [-all]

  Prints the tip of the day, rotating through the catalog. -all prints them all.
`
}

func (c *tipCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "print every tip instead of the daily one")
}

func (c *tipCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.all {
		printMarkdown(renderer.TipsMarkdown(whatif.DailyTips))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TipsMarkdown([]whatif.Tip{tipOfDay(whatif.Today())}))
	return subcommands.ExitSuccess
}

// tipOfDay rotates through the catalog, one tip per day.
func tipOfDay(day whatif.Date) whatif.Tip {
	epoch := whatif.NewDate(2024, 1, 1)
	i := day.Sub(epoch) % len(whatif.DailyTips)
	if i < 0 {
		i += len(whatif.DailyTips)
	}
	return whatif.DailyTips[i]
}

// leaderboardCmd holds the flags for the 'leaderboard' subcommand.
type leaderboardCmd struct {
	period string
}

func (*leaderboardCmd) Name() string     { return "leaderboard" }
func (*leaderboardCmd) Synopsis() string { return "best performers over a horizon" }
func (*leaderboardCmd) Usage() string {
	return `wic leaderboard [-period <1year|5years|10years>]

  Prints the best-performing assets for the given horizon.
`
}

func (c *leaderboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "1year", "Horizon of the board (1year, 5years, 10years)")
}

func (c *leaderboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, ok := whatif.Leaderboards[c.period]
	if !ok {
		fmt.Fprintf(os.Stderr, "no leaderboard for period %q, want 1year, 5years or 10years\n", c.period)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.LeaderboardMarkdown(c.period, entries))
	return subcommands.ExitSuccess
}

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the supported assets" }
func (*assetsCmd) Usage() string {
	return `wic assets

  Prints the asset catalog.
`
}
func (c *assetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.AssetsMarkdown())
	return subcommands.ExitSuccess
}
