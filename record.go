package registration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/registration/date"
)

// ErrInvalidRecord is wrapped by every validation failure on input records.
var ErrInvalidRecord = errors.New("invalid record")

// Record is a number of vehicles registered on a given day, for a vehicle
// category and a manufacturer.
type Record struct {
	On           date.Date `json:"registration_date"`
	Category     string    `json:"vehicle_category"`
	Manufacturer string    `json:"manufacturer"`
	Count        int64     `json:"total_vehicles"`
}

// Validate returns an error wrapping ErrInvalidRecord listing every problem of r.
func (r Record) Validate() error {
	var problems []string
	if r.On.IsZero() {
		problems = append(problems, "missing registration date")
	}
	if strings.TrimSpace(r.Category) == "" {
		problems = append(problems, "missing vehicle category")
	}
	if strings.TrimSpace(r.Manufacturer) == "" {
		problems = append(problems, "missing manufacturer")
	}
	if r.Count < 0 {
		problems = append(problems, fmt.Sprintf("negative vehicle count %d", r.Count))
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(problems, ", "))
}

// parseRecord builds a validated Record from textual fields, the way every
// decoder reads them: lenient dates, trimmed labels and integral counts.
func parseRecord(on, category, manufacturer, count string) (Record, error) {
	d, err := date.Parse(on)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	n, err := ParseCount(count)
	if err != nil {
		return Record{}, err
	}
	rec := Record{
		On:           d,
		Category:     strings.TrimSpace(category),
		Manufacturer: strings.TrimSpace(manufacturer),
		Count:        n,
	}
	return rec, rec.Validate()
}

// ValidateAll validates records and reports the first invalid one with its index.
func ValidateAll(records []Record) error {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
