package date

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange returns the range spanning a whole period around d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Since returns an open-ended range starting at d. A zero From or To leaves
// that side of the range unbounded.
func Since(d Date) Range { return Range{From: d} }

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}
