package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crowdfund"
	"github.com/etnz/crowdfund/renderer"
	"github.com/google/subcommands"
)

// salesCmd holds the flags for the 'sales' subcommand.
type salesCmd struct {
	projectFile string
	since       string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "display sales and their distribution to partners" }
func (*salesCmd) Usage() string {
	return `cfd sales [-f <project>] [-since <date>]

  Displays each sale with the breakdown of proceeds per partner,
  proportional to ownership.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.projectFile, "f", "", "Project file to report on. Defaults to the only project if one exists.")
	f.StringVar(&c.since, "since", "", "Only show sales dated on or after this date (YYYY-MM-DD).")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	since, err := parseSince(c.since)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	project, err := LoadProject(c.projectFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SalesMarkdown(crowdfund.NewSaleReport(project, since)))

	return subcommands.ExitSuccess
}
