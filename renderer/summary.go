package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/crowdfund"
)

// SummaryMarkdown renders the project summary to a markdown string.
func SummaryMarkdown(s *crowdfund.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Name)
	fmt.Fprintf(&b, "From %s to %s, amounts in %s.\n\n", s.Start, s.End, s.Currency)

	fmt.Fprintf(&b, "| | |\n")
	fmt.Fprintf(&b, "|:---|---:|\n")
	fmt.Fprintf(&b, "| Target amount | %s |\n", s.TargetAmount)
	fmt.Fprintf(&b, "| Total investments | %s |\n", s.TotalInvestment)
	fmt.Fprintf(&b, "| Total expenses | %s |\n", s.TotalExpenses)
	fmt.Fprintf(&b, "| Total payments | %s |\n", s.TotalPayments)
	fmt.Fprintf(&b, "| Total sales | %s |\n", s.TotalSales)
	fmt.Fprintf(&b, "| Remaining expenses | %s |\n", s.Remaining)
	fmt.Fprintf(&b, "| Balance | %s |\n", s.Balance.SignedString())
	return b.String()
}
