package date

import (
	"fmt"
	"iter"
)

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains reports whether d is in the range, boundaries included. A zero
// boundary leaves that side open.
func (r Range) Contains(d Date) bool {
	return (r.From.IsZero() || !d.Before(r.From)) && (r.To.IsZero() || !d.After(r.To))
}

// IsZero reports whether neither boundary is set.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Periods returns an iterator that yields each sequential range of a given
// period 'p' that contains at least one day within the original range 'r'.
func (r Range) Periods(p Period) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for current := r.From; !current.After(r.To); {
			periodRange := p.Range(current)
			if !yield(periodRange) {
				return
			}
			// Move to the day after the end of the yielded period to start the next iteration.
			current = periodRange.To.Add(1)
		}
	}
}

// Period returns the period of this range if it is exactly one month or one
// quarter.
func (r Range) Period() (p Period, ok bool) {
	switch {
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return Monthly, true
	case r.From.StartOf(Quarterly) == r.From && r.From.EndOf(Quarterly) == r.To:
		return Quarterly, true
	default:
		return Monthly, false
	}
}

// Identifier returns "2024-02" for a month, "2024-Q1" for a quarter and both
// boundaries otherwise.
func (r Range) Identifier() string {
	p, ok := r.Period()
	switch {
	case !ok:
		return fmt.Sprintf("%s_%s", r.From, r.To)
	case p == Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), r.From.Quarter())
	default:
		return r.From.Format("2006-01")
	}
}

// Identifier returns the short identifier of the period of kind p containing d, like "2024-02" or "2024-Q1".
func Identifier(d Date, p Period) string { return p.Range(d).Identifier() }
