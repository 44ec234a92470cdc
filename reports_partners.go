package crowdfund

// PartnerReport lists every partner with its computed ownership and balances.
type PartnerReport struct {
	Currency        string
	Rows            []PartnerRow
	TotalInvestment Money
	TotalPaid       Money
}

// PartnerRow is the computed view of one partner.
type PartnerRow struct {
	Name       string
	Investment Money
	Ownership  Percent
	Paid       Money // payments made by the partner to date
	Balance    Money // committed capital not yet paid in
}

// NewPartnerReport builds the partner report. Partners appear in declaration
// order; ownership percentages sum to 100% unless the total investment is
// zero, in which case every partner owns 0%.
func NewPartnerReport(p *Project) *PartnerReport {
	report := &PartnerReport{
		Currency:        p.Currency(),
		TotalInvestment: p.TotalInvestment(),
	}
	report.TotalPaid = M(0, p.Currency())
	for _, partner := range p.Partners() {
		paid := p.PartnerPaid(partner)
		report.Rows = append(report.Rows, PartnerRow{
			Name:       partner.Name(),
			Investment: partner.Investment(),
			Ownership:  p.Ownership(partner),
			Paid:       paid,
			Balance:    p.PartnerBalance(partner),
		})
		report.TotalPaid = report.TotalPaid.Add(paid)
	}
	return report
}
