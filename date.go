package crowdfund

import "github.com/etnz/crowdfund/date"

// Date re-exports date.Date so that most callers do not need to import the
// date subpackage.
type Date = date.Date

// Today returns the current date.
func Today() Date { return date.Today() }

// NewDate returns a normalized Date for the given year, month, and day.
var NewDate = date.New

// ParseDate parses a Date from a string like "2024-07-22".
func ParseDate(str string) (Date, error) { return date.Parse(str) }

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date { return date.MustParse(str) }
