// Package cmd implements the CLI application to track a crowdfunding project.
package cmd

import (
	"github.com/etnz/crowdfund"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&partnersCmd{}, "reports")
	c.Register(&expensesCmd{}, "reports")
	c.Register(&paymentsCmd{}, "reports")
	c.Register(&salesCmd{}, "reports")

	c.Register(&checkCmd{}, "project")

	c.Register(&topicCmd{}, "documentation")
}

// LoadProject loads the project from the given file, or discovers the single
// project file in the current directory when file is empty.
func LoadProject(file string) (*crowdfund.Project, error) {
	if file != "" {
		return crowdfund.LoadProject(file)
	}
	return crowdfund.FindProject(".", "")
}

// parseSince parses an optional lower date bound, "" meaning unbounded.
func parseSince(s string) (crowdfund.Date, error) {
	if s == "" {
		return crowdfund.Date{}, nil
	}
	return crowdfund.ParseDate(s)
}
