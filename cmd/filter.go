package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/registration"
	"github.com/etnz/registration/date"
)

// filterFlags are the dataset filters shared by the report commands.
type filterFlags struct {
	from, to               string
	category, manufacturer string
}

func (ff *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&ff.from, "from", "", "First registration date included. See 'vreg topic dates' for the supported formats.")
	f.StringVar(&ff.to, "to", "", "Last registration date included.")
	f.StringVar(&ff.category, "category", "", "Comma separated vehicle categories to keep (case insensitive).")
	f.StringVar(&ff.manufacturer, "manufacturer", "", "Comma separated manufacturers to keep (case insensitive).")
}

// Filter parses the flags into a registration.Filter.
func (ff *filterFlags) Filter() (registration.Filter, error) {
	f := registration.Filter{
		Categories:    registration.SplitList(ff.category),
		Manufacturers: registration.SplitList(ff.manufacturer),
	}
	var err error
	if ff.from != "" {
		if f.From, err = date.Parse(ff.from); err != nil {
			return f, fmt.Errorf("invalid -from: %w", err)
		}
	}
	if ff.to != "" {
		if f.To, err = date.Parse(ff.to); err != nil {
			return f, fmt.Errorf("invalid -to: %w", err)
		}
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return f, fmt.Errorf("-from %s is after -to %s", f.From, f.To)
	}
	return f, nil
}
