package crowdfund

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/crowdfund/date"
)

// newLandProject builds the reference scenario: two partners funding a single
// land purchase in full.
func newLandProject(t *testing.T) *Project {
	t.Helper()

	p := NewProject("Land Deal", date.New(2024, time.January, 1), date.New(2025, time.January, 1))
	if _, err := p.AddPartner("A", M(600000, "SAR")); err != nil {
		t.Fatalf("AddPartner(A) failed: %v", err)
	}
	if _, err := p.AddPartner("B", M(400000, "SAR")); err != nil {
		t.Fatalf("AddPartner(B) failed: %v", err)
	}
	if _, err := p.AddExpense("Land", M(1000000, "SAR"), date.New(2024, time.January, 15)); err != nil {
		t.Fatalf("AddExpense(Land) failed: %v", err)
	}
	if _, err := p.AddPayment(M(600000, "SAR"), date.New(2024, time.January, 16), "A", "Land"); err != nil {
		t.Fatalf("AddPayment(A) failed: %v", err)
	}
	if _, err := p.AddPayment(M(400000, "SAR"), date.New(2024, time.January, 17), "B", "Land"); err != nil {
		t.Fatalf("AddPayment(B) failed: %v", err)
	}
	return p
}

func TestProject_EndToEnd(t *testing.T) {
	p := newLandProject(t)

	if got := p.Ownership(p.Partner("A")); !got.Equal(60) {
		t.Errorf("Ownership(A) = %s, want 60.00%%", got)
	}
	if got := p.Ownership(p.Partner("B")); !got.Equal(40) {
		t.Errorf("Ownership(B) = %s, want 40.00%%", got)
	}

	land := p.Expense("Land")
	if got := land.Status(); got != FullyPaid {
		t.Errorf("Status(Land) = %s, want fully paid", got)
	}
	if got := land.TotalPaid(); !got.Equal(M(1000000, "SAR")) {
		t.Errorf("TotalPaid(Land) = %s, want SAR 1,000,000.00", got)
	}

	if got := p.PartnerBalance(p.Partner("A")); !got.IsZero() {
		t.Errorf("PartnerBalance(A) = %s, want 0", got)
	}
	if got := p.PartnerBalance(p.Partner("B")); !got.IsZero() {
		t.Errorf("PartnerBalance(B) = %s, want 0", got)
	}
}

func TestProject_OwnershipSumsTo100(t *testing.T) {
	p := NewProject("p", date.New(2024, time.January, 1), date.New(2025, time.January, 1))
	investments := []int{1000000, 500000, 440690, 205481, 120000}
	for i, inv := range investments {
		name := string(rune('A' + i))
		if _, err := p.AddPartner(name, M(inv, "SAR")); err != nil {
			t.Fatalf("AddPartner(%s) failed: %v", name, err)
		}
	}

	var sum Percent
	for _, partner := range p.Partners() {
		sum += p.Ownership(partner)
	}
	if !sum.Equal(100) {
		t.Errorf("ownership percentages sum to %s, want 100.00%%", sum)
	}
}

func TestProject_OwnershipZeroTotalInvestment(t *testing.T) {
	p := NewProject("p", date.New(2024, time.January, 1), date.New(2025, time.January, 1))
	// Zero investments are allowed; ownership must be 0 for everyone, not a fault.
	if _, err := p.AddPartner("A", M(0, "SAR")); err != nil {
		t.Fatalf("AddPartner(A) failed: %v", err)
	}
	if _, err := p.AddPartner("B", M(0, "SAR")); err != nil {
		t.Fatalf("AddPartner(B) failed: %v", err)
	}
	for _, partner := range p.Partners() {
		if got := p.Ownership(partner); !got.Equal(0) {
			t.Errorf("Ownership(%s) = %s, want 0.00%%", partner.Name(), got)
		}
	}
}

func TestExpense_Status(t *testing.T) {
	tests := []struct {
		name     string
		payments []int
		want     PaymentStatus
	}{
		{name: "no payment", payments: nil, want: Unpaid},
		{name: "partial", payments: []int{400}, want: PartiallyPaid},
		{name: "exact", payments: []int{400, 600}, want: FullyPaid},
		{name: "overpaid", payments: []int{1500}, want: FullyPaid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProject("p", date.New(2024, time.January, 1), date.New(2025, time.January, 1))
			if _, err := p.AddPartner("A", M(2000, "SAR")); err != nil {
				t.Fatalf("AddPartner failed: %v", err)
			}
			if _, err := p.AddExpense("e", M(1000, "SAR"), date.New(2024, time.February, 1)); err != nil {
				t.Fatalf("AddExpense failed: %v", err)
			}
			for _, amount := range tc.payments {
				if _, err := p.AddPayment(M(amount, "SAR"), date.New(2024, time.February, 2), "A", "e"); err != nil {
					t.Fatalf("AddPayment(%d) failed: %v", amount, err)
				}
			}
			if got := p.Expense("e").Status(); got != tc.want {
				t.Errorf("Status() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestProject_AddPaymentUnknownReference(t *testing.T) {
	p := NewProject("p", date.New(2024, time.January, 1), date.New(2025, time.January, 1))
	if _, err := p.AddPartner("A", M(1000, "SAR")); err != nil {
		t.Fatalf("AddPartner failed: %v", err)
	}
	if _, err := p.AddExpense("e", M(1000, "SAR"), date.New(2024, time.February, 1)); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	tests := []struct {
		name             string
		partner, expense string
	}{
		{name: "unknown partner", partner: "ghost", expense: "e"},
		{name: "unknown expense", partner: "A", expense: "ghost"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.AddPayment(M(10, "SAR"), date.New(2024, time.February, 2), tc.partner, tc.expense)
			var rerr *ReferenceError
			if !errors.As(err, &rerr) {
				t.Fatalf("AddPayment error %T (%v), want *ReferenceError", err, err)
			}
			// The failed add must not have mutated any collection.
			if len(p.Payments()) != 0 {
				t.Errorf("payments list mutated by failed AddPayment")
			}
			if len(p.Expense("e").Payments()) != 0 {
				t.Errorf("expense payment list mutated by failed AddPayment")
			}
		})
	}
}

func TestProject_DuplicateKeys(t *testing.T) {
	p := NewProject("p", date.New(2024, time.January, 1), date.New(2025, time.January, 1))
	if _, err := p.AddPartner("A", M(1000, "SAR")); err != nil {
		t.Fatalf("AddPartner failed: %v", err)
	}
	if _, err := p.AddPartner("A", M(500, "SAR")); err == nil {
		t.Errorf("duplicate partner accepted")
	}
	if _, err := p.AddExpense("e", M(100, "SAR"), date.New(2024, time.February, 1)); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if _, err := p.AddExpense("e", M(200, "SAR"), date.New(2024, time.February, 2)); err == nil {
		t.Errorf("duplicate expense accepted")
	}
	if _, err := p.AddSale("s", M(100, "SAR"), date.New(2024, time.March, 1)); err != nil {
		t.Fatalf("AddSale failed: %v", err)
	}
	if _, err := p.AddSale("s", M(100, "SAR"), date.New(2024, time.March, 2)); err == nil {
		t.Errorf("duplicate sale accepted")
	}
}

func TestProject_Positivity(t *testing.T) {
	p := NewProject("p", date.New(2024, time.January, 1), date.New(2025, time.January, 1))
	if _, err := p.AddPartner("N", M(-1, "SAR")); err == nil {
		t.Errorf("negative investment accepted")
	}
	if _, err := p.AddExpense("e", M(0, "SAR"), date.New(2024, time.February, 1)); err == nil {
		t.Errorf("zero expense amount accepted")
	}
	if _, err := p.AddSale("s", M(-5, "SAR"), date.New(2024, time.March, 1)); err == nil {
		t.Errorf("negative sale amount accepted")
	}
	if _, err := p.AddPartner("A", M(100, "SAR")); err != nil {
		t.Fatalf("AddPartner failed: %v", err)
	}
	if _, err := p.AddExpense("ok", M(100, "SAR"), date.New(2024, time.February, 1)); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if _, err := p.AddPayment(M(0, "SAR"), date.New(2024, time.February, 2), "A", "ok"); err == nil {
		t.Errorf("zero payment amount accepted")
	}
}

func TestProject_Balance(t *testing.T) {
	p := newLandProject(t)
	if _, err := p.AddSale("Duplex 1", M(1500000, "SAR"), date.New(2024, time.June, 1)); err != nil {
		t.Fatalf("AddSale failed: %v", err)
	}
	// balance = sales - payments = 1,500,000 - 1,000,000
	if got := p.Balance(); !got.Equal(M(500000, "SAR")) {
		t.Errorf("Balance() = %s, want SAR 500,000.00", got)
	}
	if got := p.TargetAmount(); !got.Equal(M(1000000, "SAR")) {
		t.Errorf("TargetAmount() = %s, want SAR 1,000,000.00", got)
	}
}
