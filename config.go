package crowdfund

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the raw, loosely-typed project configuration document. Amount
// fields accept either a plain number or an addition expression string (see
// EvaluateAmount); dates are "YYYY-MM-DD" strings.
type Config struct {
	Project  ProjectSection   `yaml:"project"`
	Partners []PartnerSection `yaml:"partners"`
	Expenses []ExpenseSection `yaml:"expenses"`
	Payments []PaymentSection `yaml:"payments"`
	Sales    []SaleSection    `yaml:"sales"`
}

type ProjectSection struct {
	Name      string `yaml:"name"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
	Currency  string `yaml:"currency"` // optional, defaults to DefaultCurrency
}

type PartnerSection struct {
	Name             string `yaml:"name"`
	InvestmentAmount any    `yaml:"investment_amount"`
}

type ExpenseSection struct {
	Description string `yaml:"description"`
	Amount      any    `yaml:"amount"`
	Date        string `yaml:"date"`
}

type PaymentSection struct {
	Amount  any    `yaml:"amount"`
	Date    string `yaml:"date"`
	Partner string `yaml:"partner"`
	Expense string `yaml:"expense"`
}

type SaleSection struct {
	Description string `yaml:"description"`
	Amount      any    `yaml:"amount"`
	Date        string `yaml:"date"`
}

// ConfigIssue is one problem found in a configuration document, located by a
// field path like "expenses[2].amount".
type ConfigIssue struct {
	Path    string
	Message string
}

func (i ConfigIssue) String() string { return i.Path + ": " + i.Message }

// ConfigValidationError aggregates every problem found in a configuration
// document so the user sees all mistakes in one pass.
type ConfigValidationError struct {
	Issues []ConfigIssue
}

func (e *ConfigValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid configuration (%d issues):", len(e.Issues))
	for _, issue := range e.Issues {
		b.WriteString("\n  ")
		b.WriteString(issue.String())
	}
	return b.String()
}

// DecodeConfig decodes a YAML configuration document. Decoding errors (bad
// syntax, a section of the wrong shape) are reported immediately; semantic
// validation is a separate step, see Validate.
func DecodeConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("could not decode configuration: %w", err)
	}
	return &cfg, nil
}

// collector accumulates validation issues instead of failing fast.
type collector struct {
	issues []ConfigIssue
}

func (c *collector) addf(path, format string, args ...any) {
	c.issues = append(c.issues, ConfigIssue{Path: path, Message: fmt.Sprintf(format, args...)})
}

// err returns the accumulated issues as an error, or nil if there are none.
func (c *collector) err() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ConfigValidationError{Issues: c.issues}
}

// checkAmount resolves an amount field through the expression evaluator and
// records evaluator failures and positivity violations under the field path.
// allowZero relaxes the check to non-negative (partner investments).
func (c *collector) checkAmount(path string, raw any, allowZero bool) {
	value, err := EvaluateAmount(raw)
	if err != nil {
		c.addf(path, "%v", err)
		return
	}
	if value.IsNegative() || (!allowZero && value.IsZero()) {
		if allowZero {
			c.addf(path, "must not be negative, got %s", value)
		} else {
			c.addf(path, "must be positive, got %s", value)
		}
	}
}

// checkDate records a malformed date under the field path.
func (c *collector) checkDate(path, raw string) {
	if raw == "" {
		c.addf(path, "date is missing")
		return
	}
	if _, err := ParseDate(raw); err != nil {
		c.addf(path, "%v", err)
	}
}

// Validate checks the configuration document and returns a
// *ConfigValidationError enumerating every problem found, or nil if the
// document is valid. It never constructs entities.
func (cfg *Config) Validate() error {
	var c collector

	// Project section.
	if cfg.Project.Name == "" {
		c.addf("project.name", "name is missing")
	}
	c.checkDate("project.start_date", cfg.Project.StartDate)
	c.checkDate("project.end_date", cfg.Project.EndDate)
	start, serr := ParseDate(cfg.Project.StartDate)
	end, eerr := ParseDate(cfg.Project.EndDate)
	if serr == nil && eerr == nil && end.Before(start) {
		c.addf("project.end_date", "must not be before start_date")
	}

	// Per-section field checks and uniqueness.
	partnerNames := make(map[string]bool)
	for i, p := range cfg.Partners {
		path := fmt.Sprintf("partners[%d]", i)
		if p.Name == "" {
			c.addf(path+".name", "name is missing")
		} else if partnerNames[p.Name] {
			c.addf(path+".name", "duplicate partner %q", p.Name)
		}
		partnerNames[p.Name] = true
		c.checkAmount(path+".investment_amount", p.InvestmentAmount, true)
	}

	expenseNames := make(map[string]bool)
	for i, e := range cfg.Expenses {
		path := fmt.Sprintf("expenses[%d]", i)
		if e.Description == "" {
			c.addf(path+".description", "description is missing")
		} else if expenseNames[e.Description] {
			c.addf(path+".description", "duplicate expense %q", e.Description)
		}
		expenseNames[e.Description] = true
		c.checkAmount(path+".amount", e.Amount, false)
		c.checkDate(path+".date", e.Date)
	}

	for i, p := range cfg.Payments {
		path := fmt.Sprintf("payments[%d]", i)
		c.checkAmount(path+".amount", p.Amount, false)
		c.checkDate(path+".date", p.Date)
		// Referential integrity: both references must be declared in this
		// same document.
		if p.Partner == "" {
			c.addf(path+".partner", "partner is missing")
		} else if !partnerNames[p.Partner] {
			c.addf(path+".partner", "unknown partner %q", p.Partner)
		}
		if p.Expense == "" {
			c.addf(path+".expense", "expense is missing")
		} else if !expenseNames[p.Expense] {
			c.addf(path+".expense", "unknown expense %q", p.Expense)
		}
	}

	saleNames := make(map[string]bool)
	for i, s := range cfg.Sales {
		path := fmt.Sprintf("sales[%d]", i)
		if s.Description == "" {
			c.addf(path+".description", "description is missing")
		} else if saleNames[s.Description] {
			c.addf(path+".description", "duplicate sale %q", s.Description)
		}
		saleNames[s.Description] = true
		c.checkAmount(path+".amount", s.Amount, false)
		c.checkDate(path+".date", s.Date)
	}

	return c.err()
}

// Build validates the configuration and constructs the project. Construction
// is ordered so that partners and expenses exist before the payments that
// reference them; nothing is constructed if validation fails.
func (cfg *Config) Build() (*Project, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	currency := cfg.Project.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	project := NewProject(cfg.Project.Name, MustParseDate(cfg.Project.StartDate), MustParseDate(cfg.Project.EndDate))
	project.SetCurrency(currency)

	amount := func(raw any) Money {
		// Validate has already vetted every amount field.
		value, err := EvaluateAmount(raw)
		if err != nil {
			panic(fmt.Sprintf("validated amount failed to evaluate: %v", err))
		}
		return M(value, currency)
	}

	for _, p := range cfg.Partners {
		if _, err := project.AddPartner(p.Name, amount(p.InvestmentAmount)); err != nil {
			return nil, err
		}
	}
	for _, e := range cfg.Expenses {
		if _, err := project.AddExpense(e.Description, amount(e.Amount), MustParseDate(e.Date)); err != nil {
			return nil, err
		}
	}
	for _, p := range cfg.Payments {
		if _, err := project.AddPayment(amount(p.Amount), MustParseDate(p.Date), p.Partner, p.Expense); err != nil {
			return nil, err
		}
	}
	for _, s := range cfg.Sales {
		if _, err := project.AddSale(s.Description, amount(s.Amount), MustParseDate(s.Date)); err != nil {
			return nil, err
		}
	}
	return project, nil
}
