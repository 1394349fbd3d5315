package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/foliotool/folio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: a no-op unless invoked by the shell's completion
	// machinery, in which case it prints candidates and exits.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"report": {Flags: map[string]complete.Predictor{
				"i":        predict.Files("*.csv"),
				"warnings": predict.Nothing,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"i":    predict.Files("*.csv"),
				"head": predict.Something,
				"tail": predict.Something,
			}},
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
		},
	}
	completion.Complete("folio")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
