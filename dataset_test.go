package registration

import (
	"errors"
	"slices"
	"testing"

	"github.com/etnz/registration/date"
)

func testDataset(t *testing.T) Dataset {
	t.Helper()
	ds, err := NewDataset([]Record{
		rec("2024-03-31", "4W", "Tesla", 30),
		rec("2024-01-31", "2W", "Honda", 10),
		rec("2024-02-29", "Commercial", "Ford", 20),
		rec("2024-01-31", "4W", "Ford", 5),
		rec("2023-12-31", "2W", "Maruti", 1),
	})
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	return ds
}

func TestNewDataset_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		r    Record
	}{
		{"negative count", rec("2024-01-31", "4W", "Ford", -1)},
		{"missing category", rec("2024-01-31", " ", "Ford", 1)},
		{"missing manufacturer", rec("2024-01-31", "4W", "", 1)},
		{"missing date", Record{Category: "4W", Manufacturer: "Ford", Count: 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDataset([]Record{rec("2024-01-31", "4W", "Ford", 1), tc.r})
			if !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("NewDataset() error = %v, want %v", err, ErrInvalidRecord)
			}
		})
	}
}

func TestDataset_Facets(t *testing.T) {
	ds := testDataset(t)
	if got := ds.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
	if got := ds.Total(); got != 66 {
		t.Errorf("Total() = %d, want 66", got)
	}
	if got, want := ds.Categories(), []string{"2W", "4W", "Commercial"}; !slices.Equal(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
	if got, want := ds.Manufacturers(), []string{"Ford", "Honda", "Maruti", "Tesla"}; !slices.Equal(got, want) {
		t.Errorf("Manufacturers() = %v, want %v", got, want)
	}
	want := date.Range{From: date.New(2023, 12, 31), To: date.New(2024, 3, 31)}
	if got := ds.Range(); got != want {
		t.Errorf("Range() = %v, want %v", got, want)
	}
	if got := (Dataset{}).Range(); !got.IsZero() {
		t.Errorf("empty Dataset.Range() = %v, want zero", got)
	}

	records := ds.Records()
	if !slices.IsSortedFunc(records, compareRecords) {
		t.Errorf("Records() is not sorted: %v", records)
	}
	records[0].Count = 1000
	if ds.Total() != 66 {
		t.Errorf("modifying Records() changed the dataset")
	}
}

func TestDataset_Filter(t *testing.T) {
	ds := testDataset(t)
	testCases := []struct {
		name      string
		filter    Filter
		wantCount int
		wantTotal int64
	}{
		{"no filter", Filter{}, 5, 66},
		{"inclusive date range", Filter{From: date.New(2024, 1, 31), To: date.New(2024, 2, 29)}, 3, 35},
		{"open start", Filter{To: date.New(2024, 1, 1)}, 1, 1},
		{"open end", Filter{From: date.New(2024, 3, 1)}, 1, 30},
		{"category case insensitive", Filter{Categories: []string{"4w"}}, 2, 35},
		{"categories are OR-ed", Filter{Categories: []string{"4W", "2W"}}, 4, 46},
		{"dimensions are AND-ed", Filter{Categories: []string{"4W"}, Manufacturers: []string{"FORD"}}, 1, 5},
		{"empty result", Filter{Manufacturers: []string{"Toyota"}}, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ds.Filter(tc.filter)
			if got.Len() != tc.wantCount || got.Total() != tc.wantTotal {
				t.Errorf("Filter() = %d records, %d vehicles, want %d, %d", got.Len(), got.Total(), tc.wantCount, tc.wantTotal)
			}
		})
	}
	if ds.Len() != 5 {
		t.Errorf("Filter() modified the original dataset")
	}
}

func TestSplitList(t *testing.T) {
	if got, want := SplitList(" 4W, ,2W,"), []string{"4W", "2W"}; !slices.Equal(got, want) {
		t.Errorf("SplitList() = %q, want %q", got, want)
	}
	if got := SplitList(""); got != nil {
		t.Errorf("SplitList(\"\") = %q, want nil", got)
	}
}

func TestParseDimension(t *testing.T) {
	testCases := []struct {
		in      string
		want    Dimension
		wantErr bool
	}{
		{"", None, false},
		{"category", Category, false},
		{"Manufacturer", Manufacturer, false},
		{"vehicle_category", Category, false},
		{"color", None, true},
	}
	for _, tc := range testCases {
		got, err := ParseDimension(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseDimension(%q) = %v, %v want %v, wantErr %v", tc.in, got, err, tc.want, tc.wantErr)
		}
	}
}
