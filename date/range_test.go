package date

import (
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestRange_Periods(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		p        Period
		expected []Range
	}{
		{
			name: "Monthly periods over parts of three months",
			r:    NewRange(New(2024, 2, 15), New(2024, 4, 10)),
			p:    Monthly,
			expected: []Range{
				{New(2024, 2, 1), New(2024, 2, 29)},
				{New(2024, 3, 1), New(2024, 3, 31)},
				{New(2024, 4, 1), New(2024, 4, 30)},
			},
		},
		{
			name: "Quarterly periods across a year",
			r:    NewRange(New(2023, 11, 30), New(2024, 4, 1)),
			p:    Quarterly,
			expected: []Range{
				{New(2023, 10, 1), New(2023, 12, 31)},
				{New(2024, 1, 1), New(2024, 3, 31)},
				{New(2024, 4, 1), New(2024, 6, 30)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(tt.r.Periods(tt.p))
			if diff := cmp.Diff(tt.expected, got, cmp.AllowUnexported(Date{})); diff != "" {
				t.Errorf("Range.Periods() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewRange_Swaps(t *testing.T) {
	r := NewRange(New(2024, time.May, 1), New(2024, time.January, 1))
	if r.From != New(2024, time.January, 1) || r.To != New(2024, time.May, 1) {
		t.Errorf("NewRange() = %v, want boundaries swapped", r)
	}
	if !r.Contains(New(2024, time.January, 1)) || !r.Contains(New(2024, time.May, 1)) {
		t.Errorf("Contains() must include both boundaries")
	}
	if r.Contains(New(2024, time.May, 2)) {
		t.Errorf("Contains(2024-05-02) = true, want false")
	}
}

func TestIdentifier(t *testing.T) {
	testCases := []struct {
		in   Date
		p    Period
		want string
	}{
		{New(2024, time.February, 14), Monthly, "2024-02"},
		{New(2024, time.February, 14), Quarterly, "2024-Q1"},
		{New(2024, time.July, 1), Quarterly, "2024-Q3"},
	}
	for _, tc := range testCases {
		if got := Identifier(tc.in, tc.p); got != tc.want {
			t.Errorf("Identifier(%v, %v) = %q, want %q", tc.in, tc.p, got, tc.want)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	jan, feb, mar := New(2024, time.January, 31), New(2024, time.February, 29), New(2024, time.March, 31)
	testCases := []struct {
		name string
		r    Range
		in   Date
		want bool
	}{
		{"inside", Range{From: jan, To: mar}, feb, true},
		{"before", Range{From: feb, To: mar}, jan, false},
		{"after", Range{From: jan, To: feb}, mar, false},
		{"open start", Range{To: feb}, jan, true},
		{"open start after", Range{To: feb}, mar, false},
		{"open end", Range{From: feb}, mar, true},
		{"open end before", Range{From: feb}, jan, false},
		{"unbounded", Range{}, jan, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.in); got != tc.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", tc.r, tc.in, got, tc.want)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		in   Range
		want string
	}{
		{Monthly.Range(New(2025, time.September, 1)), "2025-09"},
		{Quarterly.Range(New(2024, time.March, 31)), "2024-Q1"},
		{Quarterly.Range(New(2024, time.October, 1)), "2024-Q4"},
		{Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
		{Range{From: New(2025, time.January, 1), To: New(2025, time.December, 31)}, "2025-01-01_2025-12-31"},
	}
	for _, tc := range testCases {
		if got := tc.in.Identifier(); got != tc.want {
			t.Errorf("%v.Identifier() = %q, want %q", tc.in, got, tc.want)
		}
	}
}
