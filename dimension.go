package registration

import (
	"fmt"
	"strings"
)

// Dimension is a label column records can be grouped by, besides time.
type Dimension int

const (
	// None does not split records, every record has the same empty label.
	None Dimension = iota
	Category
	Manufacturer
)

func (d Dimension) String() string {
	switch d {
	case None:
		return "none"
	case Category:
		return "category"
	case Manufacturer:
		return "manufacturer"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// Title returns the column title used in reports.
func (d Dimension) Title() string {
	switch d {
	case Category:
		return "Vehicle Category"
	case Manufacturer:
		return "Manufacturer"
	default:
		return "All"
	}
}

// Label returns the value of the dimension for r.
func (d Dimension) Label(r Record) string {
	switch d {
	case Category:
		return r.Category
	case Manufacturer:
		return r.Manufacturer
	default:
		return ""
	}
}

// ParseDimension parses "category", "manufacturer" (or "none"/"").
func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "all":
		return None, nil
	case "category", "categories", "vehicle_category":
		return Category, nil
	case "manufacturer", "manufacturers", "maker":
		return Manufacturer, nil
	default:
		return None, fmt.Errorf("unknown dimension %q, want category or manufacturer", s)
	}
}
