package crowdfund

import (
	"sort"

	"github.com/etnz/crowdfund/date"
	"github.com/shopspring/decimal"
)

// PaymentReport lists payments chronologically, grouped by calendar period.
type PaymentReport struct {
	Currency string
	Since    Date // zero when the report is unfiltered
	Period   date.Period
	Groups   []PaymentGroup
	Total    Money
}

// PaymentGroup holds the payments of one calendar period, like "2024-08".
type PaymentGroup struct {
	Key      string
	Rows     []PaymentRow
	Subtotal Money
}

// PaymentRow is the computed view of one payment.
type PaymentRow struct {
	Date    Date
	Partner string
	Expense string
	Amount  Money
	Share   Percent // part of the expense amount covered by this payment
}

// NewPaymentReport builds the payment report, keeping only payments dated on
// or after since (a zero since keeps everything), grouped by the given
// calendar period. Rows are sorted chronologically; payments on the same day
// keep their declaration order.
func NewPaymentReport(p *Project, since Date, period date.Period) *PaymentReport {
	report := &PaymentReport{Currency: p.Currency(), Since: since, Period: period}
	report.Total = M(0, p.Currency())

	keep := date.Since(since)
	var rows []PaymentRow
	for _, pay := range p.Payments() {
		if !keep.Contains(pay.Date()) {
			continue
		}
		share := pay.Amount().Amount().
			Div(pay.Expense().Amount().Amount()).
			Mul(decimal.NewFromInt(100))
		rows = append(rows, PaymentRow{
			Date:    pay.Date(),
			Partner: pay.Partner().Name(),
			Expense: pay.Expense().Description(),
			Amount:  pay.Amount(),
			Share:   Percent(share.InexactFloat64()),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	for _, row := range rows {
		key := period.Identifier(row.Date)
		if len(report.Groups) == 0 || report.Groups[len(report.Groups)-1].Key != key {
			report.Groups = append(report.Groups, PaymentGroup{Key: key, Subtotal: M(0, report.Currency)})
		}
		group := &report.Groups[len(report.Groups)-1]
		group.Rows = append(group.Rows, row)
		group.Subtotal = group.Subtotal.Add(row.Amount)
		report.Total = report.Total.Add(row.Amount)
	}
	return report
}
