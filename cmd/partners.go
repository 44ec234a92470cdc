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

// partnersCmd holds the flags for the 'partners' subcommand.
type partnersCmd struct {
	projectFile string
}

func (*partnersCmd) Name() string     { return "partners" }
func (*partnersCmd) Synopsis() string { return "display partner investments and ownership" }
func (*partnersCmd) Usage() string {
	return `cfd partners [-f <project>]

  Displays each partner's investment, ownership percentage, amount paid
  so far, and balance still owed.
`
}

func (c *partnersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.projectFile, "f", "", "Project file to report on. Defaults to the only project if one exists.")
}

func (c *partnersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	project, err := LoadProject(c.projectFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PartnersMarkdown(crowdfund.NewPartnerReport(project)))

	return subcommands.ExitSuccess
}
