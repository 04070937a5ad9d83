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

type reportCmd struct {
	date   string
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate the HTML dashboard" }
func (*reportCmd) Usage() string {
	return `eqc report [-d <date>] [-o <file>]

  Renders a static, self-contained HTML page with summary cards,
  per-category cards and the device table.

Usage Examples:
$ eqc report -o report.html

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the calculation (defaults to today)")
	f.StringVar(&c.output, "o", "report.html", "Output HTML file path")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := refDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing reference date: %v\n", err)
		return subcommands.ExitUsageError
	}

	r, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	results := equipage.CalculateAll(r.Equipment, on)

	f2, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating report file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer f2.Close()

	if err := renderer.HTMLReport(f2, on, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Report written: %s\n", c.output)
	return subcommands.ExitSuccess
}
