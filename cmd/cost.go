package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/equipage/equipage"
	"github.com/equipage/equipage/date"
	"github.com/equipage/equipage/renderer"
	"github.com/fsnotify/fsnotify"
	"github.com/google/subcommands"
)

type costCmd struct {
	date     string
	category string
	output   string
	watch    bool
}

func (*costCmd) Name() string     { return "cost" }
func (*costCmd) Synopsis() string { return "display the equipment cost table" }
func (*costCmd) Usage() string {
	return `eqc cost [-d <date>] [-c <category>] [-o <file>] [-w]

  Computes days used, daily cost and residual value for every device in
  the registry and prints the aligned cost table with totals and the
  per-category breakdown.

Usage Examples:
# Cost table as of today.
$ eqc cost

# Only phones, as of a past date, saving the merged results.
$ eqc cost -c phone -d 2025-06-01 -o results.json

`
}

func (c *costCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the calculation (defaults to today)")
	f.StringVar(&c.category, "c", "", "Only include devices of this category")
	f.StringVar(&c.output, "o", "", "Write the merged calculation results to this JSON file")
	f.BoolVar(&c.watch, "w", false, "Watch the registry file and re-render on change")
}

func (c *costCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := refDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing reference date: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := c.run(on); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.watch {
		return subcommands.ExitSuccess
	}
	if err := c.watchLoop(ctx, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run loads the registry, computes and renders once.
func (c *costCmd) run(on date.Date) error {
	r, err := loadRegistry()
	if err != nil {
		return err
	}
	results := equipage.CalculateAll(r.Filter(c.category), on)
	renderer.CostTable(os.Stdout, on, results)

	if c.output != "" {
		if err := equipage.WriteResults(c.output, on, results); err != nil {
			return err
		}
		fmt.Printf("💾 Results saved: %s\n", c.output)
	}
	return nil
}

// watchLoop re-renders the table each time the registry file changes.
// Editors often save via rename, so Create events count as changes too.
func (c *costCmd) watchLoop(ctx context.Context, on date.Date) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(*registryFile); err != nil {
		return err
	}
	log.Printf("watching %s for changes", *registryFile)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fmt.Println("\033[2J")
			if err := c.run(on); err != nil {
				// keep the previous rendering on a bad edit
				log.Printf("reload failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
