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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	projectFile string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the project financial summary" }
func (*summaryCmd) Usage() string {
	return `cfd summary [-f <project>]

  Displays the project totals: investment, expenses, payments, sales,
  balance and remaining amount to collect.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.projectFile, "f", "", "Project file to report on. Defaults to the only project if one exists.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	project, err := LoadProject(c.projectFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(crowdfund.NewSummary(project)))

	return subcommands.ExitSuccess
}
