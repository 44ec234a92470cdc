package crowdfund

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount fields in a project configuration accept either a plain number or a
// restricted arithmetic expression like "440000 + 690". The grammar is
// addition only:
//
//	expression = NUMBER (WS* '+' WS* NUMBER)*
//	NUMBER     = DIGITS ('.' DIGITS)?
//	WS         = ' '
//
// The grammar is closed: no signs, no other operators, no parentheses, no
// identifiers. Evaluation never goes through a general-purpose expression
// interpreter, so an expression can never execute code.

// MalformedExpressionError reports an amount expression that fails the
// character or grammar check. It carries the offending raw string.
type MalformedExpressionError struct {
	Raw    string
	Reason string
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed expression %q: %s", e.Raw, e.Reason)
}

// EvaluateAmount evaluates a raw amount value into an exact decimal. Numeric
// values are converted and returned unchanged; strings are evaluated with the
// restricted addition grammar. Positivity is the caller's concern.
func EvaluateAmount(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case uint64:
		return decimal.NewFromUint64(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return evaluateExpression(n)
	default:
		return decimal.Decimal{}, &MalformedExpressionError{
			Raw:    fmt.Sprint(v),
			Reason: fmt.Sprintf("unsupported amount type %T", v),
		}
	}
}

// evaluateExpression parses and sums a restricted addition expression.
//
// Validation is a two-phase gate: a character-class scan rejects the whole
// string before any arithmetic is attempted, then each '+'-separated token
// must be a plain decimal literal.
func evaluateExpression(raw string) (decimal.Decimal, error) {
	for _, r := range raw {
		if r >= '0' && r <= '9' || r == '.' || r == '+' || r == ' ' {
			continue
		}
		return decimal.Decimal{}, &MalformedExpressionError{
			Raw:    raw,
			Reason: fmt.Sprintf("invalid character %q, only digits, '.', '+' and spaces are allowed", r),
		}
	}

	var total decimal.Decimal
	for _, tok := range strings.Split(raw, "+") {
		tok = strings.TrimSpace(tok)
		if err := checkNumber(tok); err != nil {
			return decimal.Decimal{}, &MalformedExpressionError{Raw: raw, Reason: err.Error()}
		}
		// The shape check above guarantees NewFromString cannot fail, and
		// already rejected the signs and exponents it would otherwise accept.
		n, err := decimal.NewFromString(tok)
		if err != nil {
			return decimal.Decimal{}, &MalformedExpressionError{Raw: raw, Reason: err.Error()}
		}
		total = total.Add(n)
	}
	return total, nil
}

// checkNumber verifies that tok matches DIGITS('.'DIGITS)? exactly.
func checkNumber(tok string) error {
	if tok == "" {
		return fmt.Errorf("empty term")
	}
	intPart, fracPart, dotted := strings.Cut(tok, ".")
	if !allDigits(intPart) || intPart == "" {
		return fmt.Errorf("invalid number %q", tok)
	}
	if dotted && (!allDigits(fracPart) || fracPart == "") {
		return fmt.Errorf("invalid number %q", tok)
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
