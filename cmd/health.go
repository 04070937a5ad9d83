package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/equipage/equipage"
	"github.com/equipage/equipage/renderer"
	"github.com/google/subcommands"
)

type healthCmd struct {
	date       string
	benchmarks string
	top        int
	output     string
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "diagnose equipment health and suggest actions" }
func (*healthCmd) Usage() string {
	return `eqc health [-d <date>] [-benchmarks <file>] [-top <n>] [-o <file>]

  Scores every device (0-100) against its category benchmark: cost
  efficiency, age relative to expected lifespan, and operational status.
  Renders a markdown report with the top assets, sell candidates and a
  suggested annual refresh budget.

Usage Examples:
# Diagnose with the built-in benchmarks.
$ eqc health

# Use custom benchmarks and save the raw markdown.
$ eqc health -benchmarks benchmarks.yaml -o health.md

`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the diagnosis (defaults to today)")
	f.StringVar(&c.benchmarks, "benchmarks", "", "Path to a YAML file of per-category benchmark overrides")
	f.IntVar(&c.top, "top", 5, "Number of devices in the top-assets section")
	f.StringVar(&c.output, "o", "", "Write the raw markdown report to this file instead of the terminal")
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := refDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing reference date: %v\n", err)
		return subcommands.ExitUsageError
	}

	benchmarks := equipage.DefaultBenchmarks()
	if c.benchmarks != "" {
		benchmarks, err = equipage.LoadBenchmarks(c.benchmarks)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	r, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	diagnosis, err := equipage.Diagnose(r.Equipment, benchmarks, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.HealthMarkdown(diagnosis, c.top)
	if c.output != "" {
		if err := os.WriteFile(c.output, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("✅ Report written: %s\n", c.output)
		return subcommands.ExitSuccess
	}

	printMarkdown(md)
	return subcommands.ExitSuccess
}
