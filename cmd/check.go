package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crowdfund"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	projectFile string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a project configuration file" }
func (*checkCmd) Usage() string {
	return `cfd check [-f <project>]

  Reads the project configuration and reports every validation issue it
  contains: malformed amounts or dates, duplicate names, payments that
  reference unknown partners or expenses.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.projectFile, "f", "project.yaml", "Project file to validate.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, err := os.Open(c.projectFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening project file %q: %v\n", c.projectFile, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	cfg, err := crowdfund.DecodeConfig(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading project file %q: %v\n", c.projectFile, err)
		return subcommands.ExitFailure
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ %s is a valid project configuration.\n", c.projectFile)
	return subcommands.ExitSuccess
}
