package crowdfund

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ReferenceError reports a payment naming a partner or expense that does not
// exist in the project at add time.
type ReferenceError struct {
	Kind string // "partner" or "expense"
	Name string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

// Project owns the entity collections of one crowdfunding project and exposes
// computed views over them.
//
// A project is mutated only during the construction phase, through sequential
// Add calls, and is treated as read-only during the reporting phase. It is not
// safe for concurrent use.
type Project struct {
	name     string
	start    Date
	end      Date
	currency string

	partners []*Partner
	expenses []*Expense
	payments []*Payment
	sales    []*Sale

	partnerIndex map[string]*Partner // index partners by name
	expenseIndex map[string]*Expense // index expenses by description
	saleIndex    map[string]*Sale    // index sales by description
}

// NewProject creates an empty project. The currency defaults to
// DefaultCurrency; use SetCurrency to override it before adding entities.
func NewProject(name string, start, end Date) *Project {
	return &Project{
		name:         name,
		start:        start,
		end:          end,
		currency:     DefaultCurrency,
		partnerIndex: make(map[string]*Partner),
		expenseIndex: make(map[string]*Expense),
		saleIndex:    make(map[string]*Sale),
	}
}

// SetCurrency overrides the project reporting currency.
func (p *Project) SetCurrency(currency string) { p.currency = currency }

func (p *Project) Name() string     { return p.name }
func (p *Project) Start() Date      { return p.start }
func (p *Project) End() Date        { return p.end }
func (p *Project) Currency() string { return p.currency }

// Partners returns the partners in insertion order.
func (p *Project) Partners() []*Partner { return p.partners }

// Expenses returns the expenses in insertion order.
func (p *Project) Expenses() []*Expense { return p.expenses }

// Payments returns the payments in insertion order.
func (p *Project) Payments() []*Payment { return p.payments }

// Sales returns the sales in insertion order.
func (p *Project) Sales() []*Sale { return p.sales }

// Partner returns the partner with this name, or nil if unknown.
func (p *Project) Partner(name string) *Partner { return p.partnerIndex[name] }

// Expense returns the expense with this description, or nil if unknown.
func (p *Project) Expense(description string) *Expense { return p.expenseIndex[description] }

// money wraps a raw decimal in the project currency.
func (p *Project) money(value decimal.Decimal) Money { return M(value, p.currency) }

// AddPartner adds a partner to the project. The name must be unique and the
// investment non-negative.
func (p *Project) AddPartner(name string, investment Money) (*Partner, error) {
	if name == "" {
		return nil, fmt.Errorf("partner name is missing")
	}
	if _, exists := p.partnerIndex[name]; exists {
		return nil, fmt.Errorf("duplicate partner %q", name)
	}
	if investment.IsNegative() {
		return nil, fmt.Errorf("partner %q investment must not be negative, got %s", name, investment)
	}
	partner := &Partner{name: name, investment: investment}
	p.partners = append(p.partners, partner)
	p.partnerIndex[name] = partner
	return partner, nil
}

// AddExpense adds an expense to the project. The description must be unique
// and the amount positive.
func (p *Project) AddExpense(description string, amount Money, on Date) (*Expense, error) {
	if description == "" {
		return nil, fmt.Errorf("expense description is missing")
	}
	if _, exists := p.expenseIndex[description]; exists {
		return nil, fmt.Errorf("duplicate expense %q", description)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("expense %q amount must be positive, got %s", description, amount)
	}
	expense := &Expense{description: description, amount: amount, date: on}
	p.expenses = append(p.expenses, expense)
	p.expenseIndex[description] = expense
	return expense, nil
}

// AddPayment adds a payment made by a partner against an expense. Both
// references must already exist; an unknown reference fails with a
// *ReferenceError and mutates nothing. The loader checks references too, but
// direct construction paths bypass it.
func (p *Project) AddPayment(amount Money, on Date, partnerName, expenseName string) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive, got %s", amount)
	}
	partner, ok := p.partnerIndex[partnerName]
	if !ok {
		return nil, &ReferenceError{Kind: "partner", Name: partnerName}
	}
	expense, ok := p.expenseIndex[expenseName]
	if !ok {
		return nil, &ReferenceError{Kind: "expense", Name: expenseName}
	}
	payment := &Payment{amount: amount, date: on, partner: partner, expense: expense}
	p.payments = append(p.payments, payment)
	expense.payments = append(expense.payments, payment)
	return payment, nil
}

// AddSale adds a sale to the project. The description must be unique and the
// amount positive.
func (p *Project) AddSale(description string, amount Money, on Date) (*Sale, error) {
	if description == "" {
		return nil, fmt.Errorf("sale description is missing")
	}
	if _, exists := p.saleIndex[description]; exists {
		return nil, fmt.Errorf("duplicate sale %q", description)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("sale %q amount must be positive, got %s", description, amount)
	}
	sale := &Sale{description: description, amount: amount, date: on}
	p.sales = append(p.sales, sale)
	p.saleIndex[description] = sale
	return sale, nil
}

// TotalInvestment returns the capital committed by all partners.
func (p *Project) TotalInvestment() Money {
	total := p.money(decimal.Zero)
	for _, partner := range p.partners {
		total = total.Add(partner.investment)
	}
	return total
}

// TotalExpenses returns the sum of all expense amounts.
func (p *Project) TotalExpenses() Money {
	total := p.money(decimal.Zero)
	for _, e := range p.expenses {
		total = total.Add(e.amount)
	}
	return total
}

// TotalPayments returns the sum of all payments.
func (p *Project) TotalPayments() Money {
	total := p.money(decimal.Zero)
	for _, pay := range p.payments {
		total = total.Add(pay.amount)
	}
	return total
}

// TotalSales returns the sum of all sale amounts.
func (p *Project) TotalSales() Money {
	total := p.money(decimal.Zero)
	for _, s := range p.sales {
		total = total.Add(s.amount)
	}
	return total
}

// TargetAmount returns the funding target, defined as the total of all
// expenses.
func (p *Project) TargetAmount() Money { return p.TotalExpenses() }

// Balance returns the project profitability to date: total sales minus total
// payments.
func (p *Project) Balance() Money { return p.TotalSales().Sub(p.TotalPayments()) }

// ownershipFraction returns the partner's exact share of the total committed
// investment, in [0,1]. When the total investment is zero every partner owns
// 0, by policy, so reports never divide by zero.
func (p *Project) ownershipFraction(partner *Partner) decimal.Decimal {
	total := p.TotalInvestment()
	if total.IsZero() {
		return decimal.Zero
	}
	return partner.investment.Amount().Div(total.Amount())
}

// Ownership returns the partner's share of the total committed investment as
// a percentage. Shares over all partners sum to 100%, except when the total
// investment is zero, in which case every partner owns 0%.
func (p *Project) Ownership(partner *Partner) Percent {
	return Percent(p.ownershipFraction(partner).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// PartnerPaid returns the sum of payments made by this partner.
func (p *Project) PartnerPaid(partner *Partner) Money {
	total := p.money(decimal.Zero)
	for _, pay := range p.payments {
		if pay.partner == partner {
			total = total.Add(pay.amount)
		}
	}
	return total
}

// PartnerBalance returns the partner's committed capital not yet paid in:
// investment minus the payments the partner made.
func (p *Project) PartnerBalance(partner *Partner) Money {
	return partner.investment.Sub(p.PartnerPaid(partner))
}
