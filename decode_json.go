package registration

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// JSONOptions locates records and their fields in an arbitrary JSON document
// with JSONPath expressions. Zero values select the defaults.
type JSONOptions struct {
	// Records selects the list of record objects, defaults to "$" (the document is an array).
	Records string
	// Field paths are evaluated on each record object.
	Date, Category, Manufacturer, Count string
}

func (o JSONOptions) withDefaults() JSONOptions {
	if o.Records == "" {
		o.Records = "$"
	}
	if o.Date == "" {
		o.Date = "$." + colDate
	}
	if o.Category == "" {
		o.Category = "$." + colCategory
	}
	if o.Manufacturer == "" {
		o.Manufacturer = "$." + colManufacturer
	}
	if o.Count == "" {
		o.Count = "$." + colCount
	}
	return o
}

// DecodeJSON reads a JSON document and extracts records with JSONPath selectors.
//
// The Records selector may return a list or a single object. Counts may be
// JSON numbers or numeric strings.
func DecodeJSON(r io.Reader, opts JSONOptions) ([]Record, error) {
	opts = opts.withDefaults()

	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode JSON document: %w", err)
	}

	selected, err := jsonpath.Get(opts.Records, doc)
	if err != nil {
		return nil, fmt.Errorf("could not select records with %q: %w", opts.Records, err)
	}
	var items []any
	switch v := selected.(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil, fmt.Errorf("%w: %q selects a %T, want a list of objects", ErrInvalidRecord, opts.Records, selected)
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		rec, err := opts.record(item)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// record extracts one Record from a decoded JSON object.
func (o JSONOptions) record(item any) (Record, error) {
	str := func(path string) (string, error) {
		v, err := jsonpath.Get(path, item)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrInvalidRecord, path, err)
		}
		switch v := v.(type) {
		case string:
			return v, nil
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		default:
			return "", fmt.Errorf("%w: %q is a %T, want a string or a number", ErrInvalidRecord, path, v)
		}
	}

	var fields [4]string
	for i, path := range []string{o.Date, o.Category, o.Manufacturer, o.Count} {
		v, err := str(path)
		if err != nil {
			return Record{}, err
		}
		fields[i] = v
	}
	return parseRecord(fields[0], fields[1], fields[2], fields[3])
}
