package crowdfund

import "fmt"

// PaymentStatus classifies an expense by how much of its amount is covered by
// linked payments.
type PaymentStatus int

const (
	// Unpaid means no payment has been made against the expense.
	Unpaid PaymentStatus = iota
	// PartiallyPaid means payments cover part of the expense amount.
	PartiallyPaid
	// FullyPaid means payments cover the whole expense amount (or more).
	FullyPaid
)

func (s PaymentStatus) String() string {
	switch s {
	case Unpaid:
		return "unpaid"
	case PartiallyPaid:
		return "partially paid"
	case FullyPaid:
		return "fully paid"
	default:
		return "unknown"
	}
}

// ParsePaymentStatus parses a string into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case "unpaid":
		return Unpaid, nil
	case "partially paid":
		return PartiallyPaid, nil
	case "fully paid":
		return FullyPaid, nil
	default:
		return 0, fmt.Errorf("unknown payment status: %q", s)
	}
}
