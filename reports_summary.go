package crowdfund

// Summary is the overall computed view of a project.
type Summary struct {
	Name     string
	Start    Date
	End      Date
	Currency string

	TargetAmount    Money // total of all expenses
	TotalInvestment Money
	TotalExpenses   Money
	TotalPayments   Money
	TotalSales      Money
	Balance         Money // sales minus payments, profitability to date
	Remaining       Money // expenses not yet covered by payments
}

// NewSummary builds the project summary.
func NewSummary(p *Project) *Summary {
	return &Summary{
		Name:            p.Name(),
		Start:           p.Start(),
		End:             p.End(),
		Currency:        p.Currency(),
		TargetAmount:    p.TargetAmount(),
		TotalInvestment: p.TotalInvestment(),
		TotalExpenses:   p.TotalExpenses(),
		TotalPayments:   p.TotalPayments(),
		TotalSales:      p.TotalSales(),
		Balance:         p.Balance(),
		Remaining:       p.TotalExpenses().Sub(p.TotalPayments()),
	}
}
