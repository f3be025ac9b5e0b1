package registration

import (
	"fmt"
	"strings"

	"github.com/etnz/registration/date"
)

// Granularity is the width of the time buckets records are aggregated into.
type Granularity int

const (
	Monthly Granularity = iota
	Quarterly
)

// Period returns the calendar period of a bucket.
func (g Granularity) Period() date.Period {
	switch g {
	case Monthly:
		return date.Monthly
	case Quarterly:
		return date.Quarterly
	default:
		panic(fmt.Sprintf("unknown granularity %d", g))
	}
}

func (g Granularity) String() string { return g.Period().String() }

// Name returns the singular noun of the bucket ("month", "quarter").
func (g Granularity) Name() string { return g.Period().Name() }

// Key returns the period key of the bucket containing d: its first day.
func (g Granularity) Key(d date.Date) date.Date { return d.StartOf(g.Period()) }

// Identifier returns the short name of the bucket starting at key, like "2024-02" or "2024-Q1".
func (g Granularity) Identifier(key date.Date) string { return date.Identifier(key, g.Period()) }

// ParseGranularity parses "month"/"monthly" or "quarter"/"quarterly".
func ParseGranularity(s string) (Granularity, error) {
	p, err := date.ParsePeriod(s)
	if err != nil {
		return Monthly, fmt.Errorf("unsupported granularity %q, want %s or %s", strings.TrimSpace(s), Monthly, Quarterly)
	}
	if p == date.Quarterly {
		return Quarterly, nil
	}
	return Monthly, nil
}
