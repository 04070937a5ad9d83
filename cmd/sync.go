package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/equipage/equipage"
	"github.com/equipage/equipage/renderer"
	"github.com/google/subcommands"
)

type syncCmd struct {
	date   string
	mode   string
	format string

	gistID string
	public bool

	repoOwner string
	repoName  string
	filePath  string
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "push the registry report to GitHub" }
func (*syncCmd) Usage() string {
	return `eqc sync [-mode gist|repo] [-format markdown|json] [flags]

  Pushes the calculation results to GitHub, either as a gist or as a
  file in a repository. The token is read from the -github-token flag
  or the GITHUB_TOKEN environment variable.

Usage Examples:
# Create a new private gist with the markdown report.
$ eqc sync

# Update an existing gist.
$ eqc sync -gist-id 0123abcd

# Write the JSON results into a repository file.
$ eqc sync -mode repo -repo-owner me -repo-name assets -file-path equipment.json -format json

`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the calculation (defaults to today)")
	f.StringVar(&c.mode, "mode", "gist", "Sync mode: gist or repo")
	f.StringVar(&c.format, "format", "markdown", "Payload format: markdown or json")
	f.StringVar(&c.gistID, "gist-id", "", "Existing gist ID to update (gist mode)")
	f.BoolVar(&c.public, "public", false, "Create a public gist (gist mode)")
	f.StringVar(&c.repoOwner, "repo-owner", "", "Repository owner (repo mode)")
	f.StringVar(&c.repoName, "repo-name", "", "Repository name (repo mode)")
	f.StringVar(&c.filePath, "file-path", "equipment-data.md", "File path inside the repository (repo mode)")
}

func (c *syncCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	token := equipage.GitHubToken()
	if token == "" {
		fmt.Fprintln(os.Stderr, "Error: a GitHub token is required, set -github-token or GITHUB_TOKEN")
		return subcommands.ExitUsageError
	}

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
	doc := equipage.NewResultsDocument(on, equipage.CalculateAll(r.Equipment, on))

	var filename, content string
	switch c.format {
	case "markdown":
		filename = "equipment-registry.md"
		content = renderer.RegistryMarkdown(doc)
	case "json":
		filename = "equipment-data.json"
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding results: %v\n", err)
			return subcommands.ExitFailure
		}
		content = string(b)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want markdown or json\n", c.format)
		return subcommands.ExitUsageError
	}

	client := equipage.NewGitHubClient(token)

	if login, err := client.User(); err != nil {
		// the token may simply lack the read:user scope, keep going
		log.Printf("could not verify token: %v", err)
	} else {
		fmt.Printf("🔐 Authenticated as @%s\n", login)
	}

	result, err := c.push(client, filename, content, on.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Sync complete\n")
	if result.URL != "" {
		fmt.Printf("🌐 %s\n", result.URL)
	}
	if result.ID != "" {
		fmt.Printf("   id: %s\n", result.ID)
	}
	return subcommands.ExitSuccess
}

func (c *syncCmd) push(client *equipage.GitHubClient, filename, content, on string) (equipage.SyncResult, error) {
	switch c.mode {
	case "gist":
		if c.gistID != "" {
			return client.UpdateGist(c.gistID, filename, content)
		}
		description := "Equipment Asset Management - " + on
		return client.CreateGist(filename, content, description, c.public)
	case "repo":
		if c.repoOwner == "" || c.repoName == "" {
			return equipage.SyncResult{}, fmt.Errorf("repo mode needs -repo-owner and -repo-name")
		}
		message := "Update equipment data - " + on
		return client.SyncToRepo(c.repoOwner, c.repoName, c.filePath, content, message)
	default:
		return equipage.SyncResult{}, fmt.Errorf("unknown mode %q, want gist or repo", c.mode)
	}
}
