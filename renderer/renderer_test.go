package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/crowdfund"
	"github.com/etnz/crowdfund/date"
)

// newTestProject builds a small fully-paid project with one sale.
func newTestProject(t *testing.T) *crowdfund.Project {
	t.Helper()

	p := crowdfund.NewProject("Ghadeer Land", date.New(2024, time.July, 22), date.New(2025, time.July, 22))
	if _, err := p.AddPartner("Hussain", crowdfund.M(600000, "SAR")); err != nil {
		t.Fatalf("AddPartner failed: %v", err)
	}
	if _, err := p.AddPartner("Ali", crowdfund.M(400000, "SAR")); err != nil {
		t.Fatalf("AddPartner failed: %v", err)
	}
	if _, err := p.AddExpense("Land", crowdfund.M(1000000, "SAR"), date.New(2024, time.July, 22)); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if _, err := p.AddPayment(crowdfund.M(600000, "SAR"), date.New(2024, time.July, 24), "Hussain", "Land"); err != nil {
		t.Fatalf("AddPayment failed: %v", err)
	}
	if _, err := p.AddPayment(crowdfund.M(400000, "SAR"), date.New(2024, time.August, 15), "Ali", "Land"); err != nil {
		t.Fatalf("AddPayment failed: %v", err)
	}
	if _, err := p.AddSale("Duplex 1", crowdfund.M(500000, "SAR"), date.New(2025, time.June, 1)); err != nil {
		t.Fatalf("AddSale failed: %v", err)
	}
	return p
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}

func TestPartnersMarkdown(t *testing.T) {
	p := newTestProject(t)
	got := PartnersMarkdown(crowdfund.NewPartnerReport(p))
	assertContains(t, got,
		"## Partners",
		"| Hussain |",
		"60.00%",
		"40.00%",
		"**Total**",
	)
}

func TestExpensesMarkdown(t *testing.T) {
	p := newTestProject(t)
	got := ExpensesMarkdown(crowdfund.NewExpenseReport(p, crowdfund.Date{}))
	assertContains(t, got,
		"## Expenses",
		"| 2024-07-22 | Land |",
		"fully paid",
	)
}

func TestPaymentsMarkdown(t *testing.T) {
	p := newTestProject(t)
	got := PaymentsMarkdown(crowdfund.NewPaymentReport(p, crowdfund.Date{}, date.Monthly))
	assertContains(t, got,
		"## Payments",
		"### 2024-07",
		"### 2024-08",
		"| 2024-07-24 | Hussain | Land |",
		"Total payments:",
	)
}

func TestSalesMarkdown(t *testing.T) {
	p := newTestProject(t)
	got := SalesMarkdown(crowdfund.NewSaleReport(p, crowdfund.Date{}))
	assertContains(t, got,
		"## Sales",
		"### Duplex 1:",
		"| Hussain |",
		"Total sales:",
	)
}

func TestSummaryMarkdown(t *testing.T) {
	p := newTestProject(t)
	got := SummaryMarkdown(crowdfund.NewSummary(p))
	assertContains(t, got,
		"# Ghadeer Land",
		"From 2024-07-22 to 2025-07-22",
		"| Target amount |",
		"| Balance |",
	)
}

func TestEmptyProjectMarkdown(t *testing.T) {
	p := crowdfund.NewProject("bare", date.New(2024, time.January, 1), date.New(2024, time.December, 31))
	assertContains(t, PartnersMarkdown(crowdfund.NewPartnerReport(p)), "No partners.")
	assertContains(t, ExpensesMarkdown(crowdfund.NewExpenseReport(p, crowdfund.Date{})), "No expenses.")
	assertContains(t, PaymentsMarkdown(crowdfund.NewPaymentReport(p, crowdfund.Date{}, date.Monthly)), "No payments.")
	assertContains(t, SalesMarkdown(crowdfund.NewSaleReport(p, crowdfund.Date{})), "No sales.")
}
