package registration

import (
	"strings"

	"github.com/etnz/registration/date"
)

// Filter selects records by registration date, category and manufacturer.
//
// A zero From or To leaves that side of the date range open. An empty
// Categories or Manufacturers list does not restrict that dimension. Values
// are matched case-insensitively; several values of one dimension are OR-ed,
// dimensions are AND-ed.
type Filter struct {
	From, To      date.Date
	Categories    []string
	Manufacturers []string
}

// Match reports whether r passes the filter.
func (f Filter) Match(r Record) bool {
	if !f.Range().Contains(r.On) {
		return false
	}
	return matchAny(f.Categories, r.Category) && matchAny(f.Manufacturers, r.Manufacturer)
}

// Range returns the date range of f, open where From or To is zero.
func (f Filter) Range() date.Range { return date.Range{From: f.From, To: f.To} }

// IsZero reports whether the filter lets every record through.
func (f Filter) IsZero() bool {
	return f.From.IsZero() && f.To.IsZero() && len(f.Categories) == 0 && len(f.Manufacturers) == 0
}

func matchAny(values []string, v string) bool {
	if len(values) == 0 {
		return true
	}
	for _, want := range values {
		if strings.EqualFold(strings.TrimSpace(want), v) {
			return true
		}
	}
	return false
}

// SplitList splits a comma separated flag value, dropping blanks.
func SplitList(s string) []string {
	var list []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
