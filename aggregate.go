package registration

import (
	"cmp"
	"slices"

	"github.com/etnz/registration/date"
	"github.com/shopspring/decimal"
)

// Aggregate sums the counts of records into buckets of granularity g.
//
// Records are bucketed by the start of the month or quarter of their
// registration date. The result is sorted by key; no records yield an empty
// Series.
func Aggregate(records []Record, g Granularity) Series {
	s := Series{granularity: g}
	for _, r := range records {
		s.history.AppendAdd(g.Key(r.On), r.Count)
	}
	return s
}

// Group is the Series of the records sharing one label of a Dimension.
type Group struct {
	Label  string
	Series Series
}

// AggregateBy splits records by the labels of dim and aggregates each group into granularity g.
//
// Groups are sorted by label. With dim None there is a single group with an empty label.
func AggregateBy(records []Record, g Granularity, dim Dimension) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, r := range records {
		label := dim.Label(r)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label, Series: Series{granularity: g}})
		}
		groups[i].Series.history.AppendAdd(g.Key(r.On), r.Count)
	}
	slices.SortFunc(groups, func(a, b Group) int { return cmp.Compare(a.Label, b.Label) })
	return groups
}

// Keys returns the key of every bucket from the earliest to the latest key of
// the groups, including the buckets no group has a value for.
func Keys(groups []Group, g Granularity) []date.Date {
	var first, last date.Date
	for _, group := range groups {
		for k := range group.Series.All() {
			if first.IsZero() || k.Before(first) {
				first = k
			}
			if last.IsZero() || k.After(last) {
				last = k
			}
		}
	}
	if first.IsZero() {
		return nil
	}
	var keys []date.Date
	for period := range date.NewRange(first, last).Periods(g.Period()) {
		keys = append(keys, period.From)
	}
	return keys
}

// Share is the total count of one label of a Dimension and its part of the grand total.
type Share struct {
	Label   string
	Total   int64
	Percent Percent
}

// Breakdown returns the total count per label of dim, largest first.
//
// Ties are ordered by label. Percentages are 0 when the grand total is 0.
func Breakdown(records []Record, dim Dimension) []Share {
	totals := make(map[string]int64)
	var grand int64
	for _, r := range records {
		totals[dim.Label(r)] += r.Count
		grand += r.Count
	}

	shares := make([]Share, 0, len(totals))
	for label, total := range totals {
		shares = append(shares, Share{Label: label, Total: total, Percent: ratio(total, grand)})
	}
	slices.SortFunc(shares, func(a, b Share) int {
		return cmp.Or(cmp.Compare(b.Total, a.Total), cmp.Compare(a.Label, b.Label))
	})
	return shares
}

// ratio returns part/whole as a Percent, 0 when whole is 0.
func ratio(part, whole int64) Percent {
	if whole == 0 {
		return 0
	}
	p := decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(whole))
	return Percent(p.InexactFloat64())
}

var hundred = decimal.NewFromInt(100)
