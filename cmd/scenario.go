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

type scenarioCmd struct{}

func (*scenarioCmd) Name() string     { return "scenario" }
func (*scenarioCmd) Synopsis() string { return "replay a curated what-if scenario" }
func (*scenarioCmd) Usage() string {
	return `wic scenario [<id> ...]

  Replays the named scenarios through the real calculation pipeline. Without
  arguments, lists the available scenarios.

Usage Examples:
$ wic scenario bitcoin-2011

`
}

func (c *scenarioCmd) SetFlags(f *flag.FlagSet) {}

func (c *scenarioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ids := f.Args()
	if len(ids) == 0 {
		printMarkdown(renderer.ScenariosMarkdown(whatif.CuratedScenarios))
		return subcommands.ExitSuccess
	}

	for _, id := range ids {
		scenario, ok := findScenario(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "no scenario %q, see 'wic scenario' for the list\n", id)
			return subcommands.ExitUsageError
		}
		result, err := scenario.Run(appResolver())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error replaying %q: %v\n", id, err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.ScenarioMarkdown(scenario, result))
	}
	return subcommands.ExitSuccess
}

func findScenario(id string) (whatif.Scenario, bool) {
	for _, s := range whatif.CuratedScenarios {
		if s.ID == id {
			return s, true
		}
	}
	return whatif.Scenario{}, false
}
