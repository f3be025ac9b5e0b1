package registration

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// DecodeJSONL reads records from a stream of JSON lines, one record per line.
//
// Empty lines are skipped. Fields are read like the default JSON fields, so
// dates, labels and counts accept what the CSV decoder accepts.
func DecodeJSONL(r io.Reader) ([]Record, error) {
	opts := JSONOptions{}.withDefaults()
	var records []Record
	scanner := bufio.NewScanner(r)
	for i := 1; scanner.Scan(); i++ {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var item any
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", i, ErrInvalidRecord, err)
		}
		rec, err := opts.record(item)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read JSONL: %w", err)
	}
	return records, nil
}

// EncodeJSONL writes one JSON object per record.
func EncodeJSONL(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
