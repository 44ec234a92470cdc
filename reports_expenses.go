package crowdfund

import (
	"sort"

	"github.com/etnz/crowdfund/date"
)

// ExpenseReport lists expenses chronologically with their payment status.
type ExpenseReport struct {
	Currency       string
	Since          Date // zero when the report is unfiltered
	Rows           []ExpenseRow
	TotalAmount    Money
	TotalPaid      Money
	TotalRemaining Money
}

// ExpenseRow is the computed view of one expense.
type ExpenseRow struct {
	Description string
	Date        Date
	Amount      Money
	Paid        Money
	Remaining   Money
	Status      PaymentStatus
}

// NewExpenseReport builds the expense report, keeping only expenses dated on
// or after since (a zero since keeps everything). Rows are sorted
// chronologically; expenses on the same day keep their declaration order.
func NewExpenseReport(p *Project, since Date) *ExpenseReport {
	report := &ExpenseReport{Currency: p.Currency(), Since: since}
	zero := M(0, p.Currency())
	report.TotalAmount, report.TotalPaid, report.TotalRemaining = zero, zero, zero

	keep := date.Since(since)
	for _, e := range p.Expenses() {
		if !keep.Contains(e.Date()) {
			continue
		}
		paid := e.TotalPaid()
		report.Rows = append(report.Rows, ExpenseRow{
			Description: e.Description(),
			Date:        e.Date(),
			Amount:      e.Amount(),
			Paid:        paid,
			Remaining:   e.Remaining(),
			Status:      e.Status(),
		})
		report.TotalAmount = report.TotalAmount.Add(e.Amount())
		report.TotalPaid = report.TotalPaid.Add(paid)
		report.TotalRemaining = report.TotalRemaining.Add(e.Remaining())
	}
	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Date.Before(report.Rows[j].Date)
	})
	return report
}
