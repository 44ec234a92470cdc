package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar bucket used to group chronological reports.
type Period int

const (
	Monthly Period = iota
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a string into a Period.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %q", p)
	}
}

// StartOf returns the first day of the period containing d.
func (d Date) StartOf(p Period) Date {
	switch p {
	case Monthly:
		return New(d.y, d.m, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(p Period) Date {
	switch p {
	case Monthly:
		return New(d.y, d.m+1, 1).Add(-1)
	case Yearly:
		return New(d.y+1, time.January, 1).Add(-1)
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Identifier computes a short unique key for the period containing d,
// like "2024-07" for a month or "2024" for a year. Keys sort chronologically.
func (p Period) Identifier(d Date) string {
	switch p {
	case Monthly:
		return d.Format("2006-01")
	case Yearly:
		return d.Format("2006")
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}
