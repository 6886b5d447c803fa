package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/contrafactum/whatif/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: this returns immediately unless invoked by the shell's
	// completion machinery.
	sub := make(map[string]*complete.Command)
	for _, name := range cmd.CommandNames() {
		sub[name] = &complete.Command{}
	}
	completer := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"alphavantage-api-key": predict.Something,
		},
	}
	completer.Complete("wic")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
