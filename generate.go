package registration

import (
	"math/rand/v2"
	"time"

	"github.com/etnz/registration/date"
)

// DefaultManufacturers and DefaultCategories are the labels of generated data.
var (
	DefaultManufacturers = []string{"Toyota", "Honda", "Maruti", "Ford", "Tesla"}
	DefaultCategories    = []string{"2W", "4W", "Commercial"}
)

// GenerateOptions configures Generate. Zero values select the defaults.
type GenerateOptions struct {
	// End is the last month generated, defaults to the previous month.
	End date.Date
	// Months is the number of month-end dates, defaults to 36.
	Months int
	// Seed makes the output reproducible.
	Seed          uint64
	Manufacturers []string
	Categories    []string
}

func (o GenerateOptions) withDefaults() GenerateOptions {
	if o.End.IsZero() {
		o.End = date.Today().AddMonth(-1)
	}
	if o.Months <= 0 {
		o.Months = 36
	}
	if len(o.Manufacturers) == 0 {
		o.Manufacturers = DefaultManufacturers
	}
	if len(o.Categories) == 0 {
		o.Categories = DefaultCategories
	}
	return o
}

// Generate returns mock registrations: one record per month end, manufacturer
// and category.
//
// A count is a uniform base in [5000, 20000) scaled by a slow upward trend of
// 5% per thousand days since the first month, plus normal noise of standard
// deviation 1000, truncated and floored at 0. The same options always yield
// the same records.
func Generate(opts GenerateOptions) []Record {
	opts = opts.withDefaults()
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	last := opts.End.EndOf(date.Monthly)
	first := last.StartOf(date.Monthly).AddMonth(1 - opts.Months).EndOf(date.Monthly)

	records := make([]Record, 0, opts.Months*len(opts.Manufacturers)*len(opts.Categories))
	for i := 0; i < opts.Months; i++ {
		on := first.StartOf(date.Monthly).AddMonth(i).EndOf(date.Monthly)
		days := on.Time().Sub(first.Time()) / (24 * time.Hour)
		trend := 1 + 0.05*float64(days)/1000
		for _, m := range opts.Manufacturers {
			for _, c := range opts.Categories {
				base := 5000 + rng.IntN(15000)
				count := int64(float64(base)*trend + rng.NormFloat64()*1000)
				records = append(records, Record{On: on, Category: c, Manufacturer: m, Count: max(count, 0)})
			}
		}
	}
	return records
}
