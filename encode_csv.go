package registration

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// CSV columns, as exported by the registration dashboards.
const (
	colDate         = "registration_date"
	colCategory     = "vehicle_category"
	colManufacturer = "manufacturer"
	colCount        = "total_vehicles"
)

// csvHeader is the header written by EncodeCSV.
var csvHeader = []string{colDate, colCategory, colManufacturer, colCount}

// columnAliases maps accepted header names to canonical columns.
var columnAliases = map[string]string{
	"registration_date": colDate,
	"date":              colDate,
	"vehicle_category":  colCategory,
	"category":          colCategory,
	"manufacturer":      colManufacturer,
	"maker":             colManufacturer,
	"total_vehicles":    colCount,
	"count":             colCount,
	"vehicles":          colCount,
}

// DecodeCSV reads records from a CSV stream with a header line.
//
// Columns are found by name, in any order, extra columns are ignored. Each
// row is validated; the first invalid row stops decoding with an error
// wrapping ErrInvalidRecord and naming the line.
func DecodeCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}
	index := make(map[string]int)
	for i, h := range header {
		// the first line of a file may start with a byte order mark
		h = strings.TrimPrefix(h, "\ufeff")
		h = strings.ToLower(strings.Trim(strings.TrimSpace(h), `"`))
		if col, ok := columnAliases[h]; ok {
			index[col] = i
		}
	}
	for _, col := range csvHeader {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q in CSV header %q", ErrInvalidRecord, col, strings.Join(header, ","))
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("could not read CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
}

func parseRow(row []string, index map[string]int) (Record, error) {
	return parseRecord(row[index[colDate]], row[index[colCategory]], row[index[colManufacturer]], row[index[colCount]])
}

// ParseCount parses a vehicle count. Integral decimal notations like "1200.0" are accepted.
func ParseCount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid count %q: not a number", ErrInvalidRecord, s)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: invalid count %q: not an integer", ErrInvalidRecord, s)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w: invalid count %q: out of range", ErrInvalidRecord, s)
	}
	return int64(f), nil
}

// EncodeCSV writes records with a header line.
func EncodeCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.On.String(), r.Category, r.Manufacturer, strconv.FormatInt(r.Count, 10)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
