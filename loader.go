package registration

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned for files whose extension has no codec.
var ErrUnknownFormat = errors.New("unknown data file format")

// Format is the encoding of a data file, derived from its extension.
type Format string

const (
	CSV   Format = "csv"
	JSONL Format = "jsonl"
	JSON  Format = "json"
)

// FormatOf returns the format of a file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".jsonl", ".ndjson":
		return JSONL, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q, want .csv, .jsonl or .json", ErrUnknownFormat, path)
	}
}

// Decode reads records encoded in format f. opts is only used for JSON.
func Decode(r io.Reader, f Format, opts JSONOptions) ([]Record, error) {
	switch f {
	case CSV:
		return DecodeCSV(r)
	case JSONL:
		return DecodeJSONL(r)
	case JSON:
		return DecodeJSON(r, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Encode writes records in format f. JSON documents are written as a single array.
func Encode(w io.Writer, f Format, records []Record) error {
	switch f {
	case CSV:
		return EncodeCSV(w, records)
	case JSONL:
		return EncodeJSONL(w, records)
	case JSON:
		if records == nil {
			records = []Record{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// LoadFile decodes a data file into a Dataset.
func LoadFile(path string, opts JSONOptions) (Dataset, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Dataset{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("could not open data file %q: %w", path, err)
	}
	defer f.Close()

	records, err := Decode(f, format, opts)
	if err != nil {
		return Dataset{}, fmt.Errorf("could not decode data file %q: %w", path, err)
	}
	log.Printf("loaded %d records from %q", len(records), path)
	return NewDataset(records)
}

// WriteFile encodes records into path, its format given by the extension.
func WriteFile(path string, records []Record) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create data file %q: %w", path, err)
	}
	if err := Encode(f, format, records); err != nil {
		f.Close()
		return fmt.Errorf("could not encode data file %q: %w", path, err)
	}
	return f.Close()
}
