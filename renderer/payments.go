package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/crowdfund"
)

// PaymentsMarkdown renders the payment report to a markdown string, one
// section per calendar period.
func PaymentsMarkdown(report *crowdfund.PaymentReport) string {
	var b strings.Builder
	if report.Since.IsZero() {
		fmt.Fprintf(&b, "## Payments\n\n")
	} else {
		fmt.Fprintf(&b, "## Payments since %s\n\n", report.Since)
	}
	if len(report.Groups) == 0 {
		fmt.Fprintf(&b, "No payments.\n")
		return b.String()
	}
	for _, group := range report.Groups {
		fmt.Fprintf(&b, "### %s\n\n", group.Key)
		fmt.Fprintf(&b, "| Date | Partner | Expense | Amount | Share |\n")
		fmt.Fprintf(&b, "|:---|:---|:---|---:|---:|\n")
		for _, row := range group.Rows {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				row.Date, row.Partner, row.Expense, row.Amount, row.Share)
		}
		fmt.Fprintf(&b, "| | | **Subtotal** | %s | |\n\n", group.Subtotal)
	}
	fmt.Fprintf(&b, "Total payments: %s\n", report.Total)
	return b.String()
}
