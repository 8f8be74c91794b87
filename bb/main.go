package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/bondbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. It returns immediately
// unless the shell is asking for completions.
func completion() {
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"add":   {},
			"rm":    {},
			"clear": {Flags: map[string]complete.Predictor{"f": predict.Nothing}},
			"list":  {Flags: map[string]complete.Predictor{"q": predict.Something}},
			"copy":  {Flags: map[string]complete.Predictor{"q": predict.Something}},
			"check": {Flags: map[string]complete.Predictor{
				"url":  predict.Something,
				"path": predict.Something,
			}},
			"serve":  {Flags: map[string]complete.Predictor{"addr": predict.Something}},
			"assist": {},
		},
		Flags: map[string]complete.Predictor{
			"config":     predict.Files("*.toml"),
			"store":      predict.Set{"file", "sqlite", "memory"},
			"store-path": predict.Files("*"),
		},
	}
	c.Complete("bb")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
