package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crowdfund"
	"github.com/etnz/crowdfund/date"
	"github.com/etnz/crowdfund/renderer"
	"github.com/google/subcommands"
)

// paymentsCmd holds the flags for the 'payments' subcommand.
type paymentsCmd struct {
	projectFile string
	since       string
	group       string
}

func (*paymentsCmd) Name() string     { return "payments" }
func (*paymentsCmd) Synopsis() string { return "display payments grouped by period" }
func (*paymentsCmd) Usage() string {
	return `cfd payments [-f <project>] [-since <date>] [-group <month|year>]

  Displays each payment with the partner who made it, the expense it
  covers, and its share of that expense, grouped by month or year with
  per-group subtotals.
`
}

func (c *paymentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.projectFile, "f", "", "Project file to report on. Defaults to the only project if one exists.")
	f.StringVar(&c.since, "since", "", "Only show payments dated on or after this date (YYYY-MM-DD).")
	f.StringVar(&c.group, "group", "month", "Grouping period for payments (month, year).")
}

func (c *paymentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	since, err := parseSince(c.since)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	period, err := date.ParsePeriod(c.group)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	project, err := LoadProject(c.projectFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PaymentsMarkdown(crowdfund.NewPaymentReport(project, since, period)))

	return subcommands.ExitSuccess
}
