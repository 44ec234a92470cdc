package crowdfund

import (
	"sort"

	"github.com/etnz/crowdfund/date"
	"github.com/shopspring/decimal"
)

// SaleReport lists sales chronologically, each with its virtual distribution
// across partners by ownership percentage. Nothing is persisted: the
// distribution is recomputed from current ownership on every report.
type SaleReport struct {
	Currency string
	Since    Date // zero when the report is unfiltered
	Rows     []SaleRow
	Total    Money
}

// SaleRow is the computed view of one sale.
type SaleRow struct {
	Description  string
	Date         Date
	Amount       Money
	Distribution []SaleShare
}

// SaleShare is one partner's part of a distributed sale.
type SaleShare struct {
	Partner   string
	Ownership Percent
	Amount    Money
}

// NewSaleReport builds the sale report, keeping only sales dated on or after
// since (a zero since keeps everything).
func NewSaleReport(p *Project, since Date) *SaleReport {
	report := &SaleReport{Currency: p.Currency(), Since: since}
	report.Total = M(0, p.Currency())

	keep := date.Since(since)
	for _, s := range p.Sales() {
		if !keep.Contains(s.Date()) {
			continue
		}
		report.Rows = append(report.Rows, SaleRow{
			Description:  s.Description(),
			Date:         s.Date(),
			Amount:       s.Amount(),
			Distribution: distribute(p, s.Amount()),
		})
		report.Total = report.Total.Add(s.Amount())
	}
	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Date.Before(report.Rows[j].Date)
	})
	return report
}

var cent = decimal.New(1, -2)

// distribute splits amount across partners by ownership, using the largest
// remainder method: each share is rounded down to the cent, then the leftover
// cents are handed out one at a time in order of largest discarded fraction,
// ties broken by larger ownership and then by partner name. The shares sum
// exactly to amount whenever ownership is defined (non-zero total
// investment); when the total investment is zero every share is zero and
// nothing is distributed.
func distribute(p *Project, amount Money) []SaleShare {
	partners := p.Partners()
	shares := make([]SaleShare, len(partners))
	rounded := make([]decimal.Decimal, len(partners))
	fractions := make([]decimal.Decimal, len(partners))

	distributed := decimal.Zero
	for i, partner := range partners {
		exact := amount.Amount().Mul(p.ownershipFraction(partner))
		rounded[i] = exact.RoundDown(2)
		fractions[i] = exact.Sub(rounded[i])
		distributed = distributed.Add(rounded[i])
	}

	if p.TotalInvestment().IsZero() {
		// Ownership is undefined, nothing to hand out.
		for i, partner := range partners {
			shares[i] = SaleShare{Partner: partner.Name(), Amount: M(0, amount.Currency())}
		}
		return shares
	}

	// Hand out the leftover cents by largest discarded fraction.
	order := make([]int, len(partners))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if !fractions[i].Equal(fractions[j]) {
			return fractions[i].GreaterThan(fractions[j])
		}
		pi, pj := partners[i].Investment(), partners[j].Investment()
		if !pi.Equal(pj) {
			return pi.GreaterThan(pj)
		}
		return partners[i].Name() < partners[j].Name()
	})
	leftover := amount.Amount().Sub(distributed)
	for _, i := range order {
		if !leftover.IsPositive() {
			break
		}
		rounded[i] = rounded[i].Add(cent)
		leftover = leftover.Sub(cent)
	}

	for i, partner := range partners {
		shares[i] = SaleShare{
			Partner:   partner.Name(),
			Ownership: p.Ownership(partner),
			Amount:    M(rounded[i], amount.Currency()),
		}
	}
	return shares
}
