package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/equipage/equipage"
	"github.com/google/subcommands"
)

type initCmd struct {
	output      string
	currency    string
	withSamples bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new equipment registry template" }
func (*initCmd) Usage() string {
	return `eqc init [-o <file>] [-currency <code>] [-with-samples]

  Creates an equipment registry template. Edit the file to add your own
  devices, then run 'eqc cost' or 'eqc health' against it.

Usage Examples:
# Create a registry with two sample devices.
$ eqc init -o equipment-data.json -with-samples

`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "equipment-data.json", "Output file path")
	f.StringVar(&c.currency, "currency", "CNY", "Base currency code for the registry")
	f.BoolVar(&c.withSamples, "with-samples", false, "Include sample equipment records")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(c.output); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %q already exists, refusing to overwrite\n", c.output)
		return subcommands.ExitFailure
	}

	r := equipage.NewRegistry(c.currency)
	if c.withSamples {
		r.Equipment = equipage.SampleEquipment()
	}
	if err := r.Save(c.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Registry created: %s\n", c.output)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit the file and add your devices")
	fmt.Printf("  2. Run: eqc cost -registry %s\n", c.output)
	fmt.Printf("  3. Run: eqc health -registry %s\n", c.output)
	return subcommands.ExitSuccess
}
