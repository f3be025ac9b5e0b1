package registration

import (
	"cmp"
	"errors"
	"iter"
	"slices"

	"github.com/etnz/registration/date"
)

// ErrEmptyDataset is returned when an operation needs at least one record.
var ErrEmptyDataset = errors.New("no data available for the selected filters")

// Dataset is an immutable, validated collection of records sorted by
// registration date, category and manufacturer.
//
// Datasets are values: Filter returns a new Dataset and nothing mutates one
// after NewDataset.
type Dataset struct {
	records []Record
}

// NewDataset validates and copies records into a Dataset.
func NewDataset(records []Record) (Dataset, error) {
	if err := ValidateAll(records); err != nil {
		return Dataset{}, err
	}
	rs := slices.Clone(records)
	slices.SortStableFunc(rs, compareRecords)
	return Dataset{records: rs}, nil
}

func compareRecords(a, b Record) int {
	return cmp.Or(
		a.On.Compare(b.On),
		cmp.Compare(a.Category, b.Category),
		cmp.Compare(a.Manufacturer, b.Manufacturer),
	)
}

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// Records returns a copy of the records.
func (d Dataset) Records() []Record { return slices.Clone(d.records) }

// All returns an iterator over the records in order.
func (d Dataset) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range d.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Filter returns the records matching f as a new Dataset.
func (d Dataset) Filter(f Filter) Dataset {
	if f.IsZero() {
		return d
	}
	var rs []Record
	for _, r := range d.records {
		if f.Match(r) {
			rs = append(rs, r)
		}
	}
	return Dataset{records: rs}
}

// Total returns the sum of all counts.
func (d Dataset) Total() int64 {
	var total int64
	for _, r := range d.records {
		total += r.Count
	}
	return total
}

// Range returns the first and last registration dates, or a zero Range for an empty dataset.
func (d Dataset) Range() date.Range {
	if len(d.records) == 0 {
		return date.Range{}
	}
	return date.Range{From: d.records[0].On, To: d.records[len(d.records)-1].On}
}

// Categories returns the distinct categories, sorted.
func (d Dataset) Categories() []string { return d.labels(Category) }

// Manufacturers returns the distinct manufacturers, sorted.
func (d Dataset) Manufacturers() []string { return d.labels(Manufacturer) }

func (d Dataset) labels(dim Dimension) []string {
	var labels []string
	for _, r := range d.records {
		labels = append(labels, dim.Label(r))
	}
	slices.Sort(labels)
	return slices.Compact(labels)
}
