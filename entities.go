package crowdfund

// The project entities. They are created once during project construction and
// are immutable afterwards, except for the append-only payment list attached
// to each expense. There is no update or delete API.

// Partner is an investor in the project, identified by name.
type Partner struct {
	name       string
	investment Money
}

// Name returns the partner's name, the unique key within a project.
func (p *Partner) Name() string { return p.name }

// Investment returns the capital the partner committed to the project.
func (p *Partner) Investment() Money { return p.investment }

// Expense is a cost of the project, identified by description.
type Expense struct {
	description string
	amount      Money
	date        Date
	payments    []*Payment // append-only, in insertion order
}

// Description returns the expense description, the unique key within a project.
func (e *Expense) Description() string { return e.description }

// Amount returns the expense amount.
func (e *Expense) Amount() Money { return e.amount }

// Date returns the day the expense occurred.
func (e *Expense) Date() Date { return e.date }

// Payments returns the payments made against this expense.
func (e *Expense) Payments() []*Payment { return e.payments }

// TotalPaid returns the sum of all payments made against this expense.
func (e *Expense) TotalPaid() Money {
	total := M(0, e.amount.Currency())
	for _, p := range e.payments {
		total = total.Add(p.amount)
	}
	return total
}

// Remaining returns the part of the expense amount not yet covered by payments.
func (e *Expense) Remaining() Money { return e.amount.Sub(e.TotalPaid()) }

// Status derives the payment status from the linked payments. It is recomputed
// on every call; there is no stored state to get out of sync.
func (e *Expense) Status() PaymentStatus {
	paid := e.TotalPaid()
	switch {
	case paid.IsZero():
		return Unpaid
	case paid.GreaterThanOrEqual(e.amount):
		return FullyPaid
	default:
		return PartiallyPaid
	}
}

// Payment settles part of an expense with a partner's money. Both references
// are resolved at construction time.
type Payment struct {
	amount  Money
	date    Date
	partner *Partner
	expense *Expense
}

// Amount returns the payment amount.
func (p *Payment) Amount() Money { return p.amount }

// Date returns the day the payment was made.
func (p *Payment) Date() Date { return p.date }

// Partner returns the partner who made the payment.
func (p *Payment) Partner() *Partner { return p.partner }

// Expense returns the expense this payment settles.
func (p *Payment) Expense() *Expense { return p.expense }

// Sale is revenue of the project, identified by description. Sales are
// distributed virtually across partners by ownership percentage at report
// time; no allocation is persisted.
type Sale struct {
	description string
	amount      Money
	date        Date
}

// Description returns the sale description, the unique key within a project.
func (s *Sale) Description() string { return s.description }

// Amount returns the sale amount.
func (s *Sale) Amount() Money { return s.amount }

// Date returns the day the sale occurred.
func (s *Sale) Date() Date { return s.date }
