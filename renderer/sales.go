package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/crowdfund"
)

// SalesMarkdown renders the sale report to a markdown string, with the
// virtual per-partner distribution under each sale.
func SalesMarkdown(report *crowdfund.SaleReport) string {
	var b strings.Builder
	if report.Since.IsZero() {
		fmt.Fprintf(&b, "## Sales\n\n")
	} else {
		fmt.Fprintf(&b, "## Sales since %s\n\n", report.Since)
	}
	if len(report.Rows) == 0 {
		fmt.Fprintf(&b, "No sales.\n")
		return b.String()
	}
	for _, row := range report.Rows {
		fmt.Fprintf(&b, "### %s: %s on %s\n\n", row.Description, row.Amount, row.Date)
		ConditionalBlock(&b, func(w io.Writer) bool {
			if len(row.Distribution) == 0 {
				return false
			}
			fmt.Fprintf(w, "| Partner | Ownership | Share |\n")
			fmt.Fprintf(w, "|:---|---:|---:|\n")
			for _, share := range row.Distribution {
				fmt.Fprintf(w, "| %s | %s | %s |\n", share.Partner, share.Ownership, share.Amount)
			}
			fmt.Fprintf(w, "\n")
			return true
		})
	}
	fmt.Fprintf(&b, "Total sales: %s\n", report.Total)
	return b.String()
}
