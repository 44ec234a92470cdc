package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/crowdfund/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// No-op unless invoked by a shell completion hook, in which case it
	// prints completions and exits.
	completion().Complete("cfd")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	projectFlag := map[string]complete.Predictor{"f": predict.Files("*.yaml")}
	sinceFlags := map[string]complete.Predictor{
		"f":     predict.Files("*.yaml"),
		"since": predict.Nothing,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"summary":  {Flags: projectFlag},
			"partners": {Flags: projectFlag},
			"expenses": {Flags: sinceFlags},
			"payments": {Flags: map[string]complete.Predictor{
				"f":     predict.Files("*.yaml"),
				"since": predict.Nothing,
				"group": predict.Set{"month", "year"},
			}},
			"sales": {Flags: sinceFlags},
			"check": {Flags: projectFlag},
			"topic": {Args: predict.Set{"readme", "configuration", "expressions", "reports"}},
		},
	}
}
