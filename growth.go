package registration

import (
	"fmt"
	"strings"

	"github.com/etnz/registration/date"
	"github.com/shopspring/decimal"
)

// Mode selects the comparison period of a growth computation.
type Mode int

const (
	// YoY compares with the same period one year earlier.
	YoY Mode = iota
	// QoQ compares with the period one quarter earlier.
	QoQ
)

// Months returns how far back the comparison period starts.
func (m Mode) Months() int {
	switch m {
	case YoY:
		return 12
	case QoQ:
		return 3
	default:
		panic(fmt.Sprintf("unknown growth mode %d", m))
	}
}

func (m Mode) String() string {
	switch m {
	case YoY:
		return "YoY"
	case QoQ:
		return "QoQ"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Title returns the long name of the mode.
func (m Mode) Title() string {
	switch m {
	case YoY:
		return "Year-over-Year"
	case QoQ:
		return "Quarter-over-Quarter"
	default:
		return m.String()
	}
}

// Granularity returns the granularity the mode is usually computed on:
// months for YoY, quarters for QoQ.
func (m Mode) Granularity() Granularity {
	if m == QoQ {
		return Quarterly
	}
	return Monthly
}

// ParseMode parses "yoy" or "qoq" (and their long forms).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yoy", "year", "year-over-year":
		return YoY, nil
	case "qoq", "quarter", "quarter-over-quarter":
		return QoQ, nil
	default:
		return YoY, fmt.Errorf("unknown growth mode %q, want yoy or qoq", s)
	}
}

// Status tells whether a growth rate could be computed.
type Status int

const (
	Undefined Status = iota
	Computed
)

// Reason explains why a growth rate is undefined.
type Reason int

const (
	NoReason Reason = iota
	// EmptySeries: there is no current period at all.
	EmptySeries
	// MissingComparison: the comparison period is not in the series.
	MissingComparison
	// ZeroComparison: the comparison period has a zero count.
	ZeroComparison
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return ""
	case EmptySeries:
		return "no data"
	case MissingComparison:
		return "insufficient history"
	case ZeroComparison:
		return "zero in comparison period"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Growth is the result of comparing the latest period of a Series with an
// earlier one.
//
// A Computed growth has a meaningful Rate, possibly 0. An Undefined growth
// has a Reason and a zero Rate. Current and Comparison are filled as far as
// the computation went: Current is zero for an EmptySeries, Comparison.Key is
// always set once Current is known.
type Growth struct {
	Mode        Mode
	Granularity Granularity
	Status      Status
	Reason      Reason
	Rate        Percent
	Current     Point
	Comparison  Point
}

// Defined reports whether the rate was computed.
func (g Growth) Defined() bool { return g.Status == Computed }

// Change returns the absolute difference between the current and the comparison values.
func (g Growth) Change() int64 { return g.Current.Value - g.Comparison.Value }

// Sentinel returns the growth as the historical (rate, comparison value)
// pair, where an undefined growth is a 0 rate.
func (g Growth) Sentinel() (rate float64, comparison int64) {
	if g.Status != Computed {
		if g.Reason == ZeroComparison {
			return 0, g.Comparison.Value
		}
		return 0, 0
	}
	return float64(g.Rate), g.Comparison.Value
}

// String returns the signed rate, or "N/A" with the reason when undefined.
func (g Growth) String() string {
	if g.Status != Computed {
		return fmt.Sprintf("N/A (%s)", g.Reason)
	}
	return g.Rate.SignedString()
}

// ComparisonKey returns the key of the period compared with current: the
// period starting mode.Months() earlier, aligned on the start of a g bucket.
func ComparisonKey(current date.Date, g Granularity, mode Mode) date.Date {
	return current.AddMonth(-mode.Months()).StartOf(g.Period())
}

// Compute compares the latest period of s with the period one year (YoY) or
// one quarter (QoQ) earlier.
//
// The comparison period is looked up by exact key, never by position, so
// gaps in the series are detected as missing history.
func Compute(s Series, mode Mode) Growth {
	g := Growth{Mode: mode, Granularity: s.Granularity()}

	current, ok := s.Latest()
	if !ok {
		g.Reason = EmptySeries
		return g
	}
	g.Current = current
	g.Comparison.Key = ComparisonKey(current.Key, s.Granularity(), mode)

	value, ok := s.Get(g.Comparison.Key)
	if !ok {
		g.Reason = MissingComparison
		return g
	}
	g.Comparison.Value = value

	if value == 0 {
		g.Reason = ZeroComparison
		return g
	}

	g.Status = Computed
	g.Rate = rate(current.Value, value)
	return g
}

// rate returns (current - previous) / previous * 100, previous being non zero.
func rate(current, previous int64) Percent {
	change := decimal.NewFromInt(current - previous)
	r := change.Mul(hundred).Div(decimal.NewFromInt(previous))
	return Percent(r.InexactFloat64())
}

// LabeledGrowth is the growth of the records sharing one label of a Dimension.
type LabeledGrowth struct {
	Label  string
	Growth Growth
}

// GrowthBy computes the growth of each label of dim, records being aggregated into g.
func GrowthBy(records []Record, g Granularity, mode Mode, dim Dimension) []LabeledGrowth {
	groups := AggregateBy(records, g, dim)
	result := make([]LabeledGrowth, 0, len(groups))
	for _, group := range groups {
		result = append(result, LabeledGrowth{Label: group.Label, Growth: Compute(group.Series, mode)})
	}
	return result
}
