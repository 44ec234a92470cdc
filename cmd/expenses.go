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

// expensesCmd holds the flags for the 'expenses' subcommand.
type expensesCmd struct {
	projectFile string
	since       string
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "display expenses and their payment status" }
func (*expensesCmd) Usage() string {
	return `cfd expenses [-f <project>] [-since <date>]

  Displays each expense in chronological order with the amount paid so
  far, the remaining amount, and the payment status.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.projectFile, "f", "", "Project file to report on. Defaults to the only project if one exists.")
	f.StringVar(&c.since, "since", "", "Only show expenses dated on or after this date (YYYY-MM-DD).")
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.ExpensesMarkdown(crowdfund.NewExpenseReport(project, since)))

	return subcommands.ExitSuccess
}
