package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/crowdfund"
)

// ExpensesMarkdown renders the expense report to a markdown string.
func ExpensesMarkdown(report *crowdfund.ExpenseReport) string {
	var b strings.Builder
	if report.Since.IsZero() {
		fmt.Fprintf(&b, "## Expenses\n\n")
	} else {
		fmt.Fprintf(&b, "## Expenses since %s\n\n", report.Since)
	}
	if len(report.Rows) == 0 {
		fmt.Fprintf(&b, "No expenses.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "| Date | Expense | Amount | Paid | Remaining | Status |\n")
	fmt.Fprintf(&b, "|:---|:---|---:|---:|---:|:---|\n")
	for _, row := range report.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			row.Date, row.Description, row.Amount, row.Paid, row.Remaining, row.Status)
	}
	fmt.Fprintf(&b, "| | **Total** | %s | %s | %s | |\n",
		report.TotalAmount, report.TotalPaid, report.TotalRemaining)
	return b.String()
}
