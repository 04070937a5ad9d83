// Command eqc manages a personal equipment registry: depreciation
// costs, health diagnosis, HTML/markdown reports, and GitHub sync.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/equipage/equipage/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. It exits early
// when invoked by the shell's completion hook.
func completion() {
	registry := map[string]complete.Predictor{"registry": predict.Files("*.json")}
	c := &complete.Command{
		Flags: registry,
		Sub: map[string]*complete.Command{
			"init": {Flags: map[string]complete.Predictor{
				"o":            predict.Files("*.json"),
				"currency":     predict.Set{"CNY", "USD", "EUR", "GBP", "JPY", "KRW"},
				"with-samples": predict.Nothing,
			}},
			"cost": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
				"c": predict.Set{"computer", "phone", "tablet", "wearable", "smart-home", "gaming", "ev-accessory", "vehicle", "other"},
				"o": predict.Files("*.json"),
				"w": predict.Nothing,
			}},
			"health": {Flags: map[string]complete.Predictor{
				"d":          predict.Nothing,
				"benchmarks": predict.Files("*.yaml"),
				"top":        predict.Nothing,
				"o":          predict.Files("*.md"),
			}},
			"report": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
				"o": predict.Files("*.html"),
			}},
			"sync": {Flags: map[string]complete.Predictor{
				"mode":       predict.Set{"gist", "repo"},
				"format":     predict.Set{"markdown", "json"},
				"gist-id":    predict.Nothing,
				"public":     predict.Nothing,
				"repo-owner": predict.Nothing,
				"repo-name":  predict.Nothing,
				"file-path":  predict.Nothing,
			}},
		},
	}
	c.Complete("eqc")
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
