package registration

import (
	"fmt"
	"testing"
	"time"

	"github.com/etnz/registration/date"
	"github.com/google/go-cmp/cmp"
)

func TestGenerate(t *testing.T) {
	opts := GenerateOptions{End: date.New(2024, time.June, 15), Seed: 42}
	records := Generate(opts)

	if got, want := len(records), 36*len(DefaultManufacturers)*len(DefaultCategories); got != want {
		t.Fatalf("len(Generate()) = %d, want %d", got, want)
	}
	if got, want := records[0].On, date.New(2021, time.July, 31); got != want {
		t.Errorf("first date = %v, want %v", got, want)
	}
	if got, want := records[len(records)-1].On, date.New(2024, time.June, 30); got != want {
		t.Errorf("last date = %v, want %v", got, want)
	}
	for _, r := range records {
		if r.On != r.On.EndOf(date.Monthly) {
			t.Errorf("record on %v is not a month end", r.On)
		}
		if err := r.Validate(); err != nil {
			t.Errorf("Generate() produced an invalid record: %v", err)
		}
	}

	months := Aggregate(records, Monthly)
	if months.Len() != 36 {
		t.Errorf("Generate() covers %d months, want 36", months.Len())
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := GenerateOptions{End: date.New(2024, time.June, 30), Months: 6, Seed: 7, Manufacturers: []string{"Ford"}}
	first, second := Generate(opts), Generate(opts)
	if diff := cmp.Diff(first, second, dateComparer); diff != "" {
		t.Errorf("Generate() is not deterministic (-first +second):\n%s", diff)
	}
	if len(first) != 6*len(DefaultCategories) {
		t.Errorf("len(Generate()) = %d, want %d", len(first), 6*len(DefaultCategories))
	}

	opts.Seed = 8
	if diff := cmp.Diff(first, Generate(opts), dateComparer); diff == "" {
		t.Errorf("Generate() with another seed returned the same records")
	}
}

func TestGenerate_UpwardTrend(t *testing.T) {
	manufacturers := make([]string, 2000)
	for i := range manufacturers {
		manufacturers[i] = fmt.Sprintf("M%04d", i)
	}
	opts := GenerateOptions{End: date.New(2024, time.June, 30), Seed: 42, Manufacturers: manufacturers, Categories: []string{"4W"}}
	records := Generate(opts)

	mean := func(on date.Date) float64 {
		var sum, n float64
		for _, r := range records {
			if r.On == on {
				sum += float64(r.Count)
				n++
			}
		}
		return sum / n
	}
	first, last := mean(date.New(2021, time.July, 31)), mean(date.New(2024, time.June, 30))

	// 1065 days apart: the expected ratio is about 1.053.
	if ratio := last / first; ratio < 1.02 || ratio > 1.09 {
		t.Errorf("last/first monthly mean = %.4f (first %.0f, last %.0f), want about 1.053", ratio, first, last)
	}
}
