package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/crowdfund"
)

// PartnersMarkdown renders the partner report to a markdown string.
func PartnersMarkdown(report *crowdfund.PartnerReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Partners\n\n")
	if len(report.Rows) == 0 {
		fmt.Fprintf(&b, "No partners.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "| Partner | Investment | Ownership | Paid | Balance |\n")
	fmt.Fprintf(&b, "|:---|---:|---:|---:|---:|\n")
	for _, row := range report.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			row.Name, row.Investment, row.Ownership, row.Paid, row.Balance)
	}
	fmt.Fprintf(&b, "| **Total** | %s | | %s | |\n", report.TotalInvestment, report.TotalPaid)
	return b.String()
}
