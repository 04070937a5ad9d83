// Package cmd implements the CLI application to manage an equipment
// registry.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/equipage/equipage"
	"github.com/equipage/equipage/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "registry")

	c.Register(&costCmd{}, "reports")
	c.Register(&healthCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&syncCmd{}, "sync")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var registryFile = flag.String("registry", "equipment-data.json", "Path to the equipment registry JSON file")

// loadRegistry opens the app registry file.
func loadRegistry() (*equipage.Registry, error) {
	return equipage.LoadRegistry(*registryFile)
}

// refDate parses the reference date flag, defaulting to today when
// empty.
func refDate(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when the renderer is unavailable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
