// Package cmd implements the vreg command line application: growth, trend,
// breakdown and dashboard reports over a vehicle registration dataset.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/registration"
	"github.com/etnz/registration/store"
	"github.com/google/subcommands"
)

// Commands are the subcommands of vreg.
var Commands = []subcommands.Command{
	&generateCmd{},
	&importCmd{},
	&growthCmd{},
	&trendCmd{},
	&breakdownCmd{},
	&reportCmd{},
	&topicCmd{},
	&assistCmd{},
}

const (
	EnvData        = "VREG_DATA"
	EnvJSONRecords = "VREG_JSON_RECORDS"
	EnvFormat      = "VREG_FORMAT"
	EnvVerbose     = "VREG_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataFile     = flag.String("data", envOr(EnvData, "registrations.csv"), "Path to the dataset (.csv, .jsonl, .json or a .db SQLite store). Defaults to $"+EnvData)
	jsonRecords  = flag.String("json-records", os.Getenv(EnvJSONRecords), "JSONPath selecting the records in a .json dataset. Defaults to $"+EnvJSONRecords+" or the document root")
	outputFormat = flag.String("format", envOr(EnvFormat, "markdown"), "Output format: markdown, table or csv. Defaults to $"+EnvFormat)
	Verbose      = flag.Bool("v", false, "Verbose logging on stderr")
)

// stdout and stderr are variables so that tests can capture the output.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// Setup applies the global flags, it must be called after flag.Parse.
func Setup() {
	log.SetFlags(0)
	log.SetPrefix("vreg: ")
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// isStore reports whether path is a SQLite store rather than a data file.
func isStore(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// loadDataset loads the app dataset and applies f.
//
// An empty result is reported as registration.ErrEmptyDataset.
func loadDataset(ctx context.Context, f registration.Filter) (registration.Dataset, error) {
	path := *dataFile
	var ds registration.Dataset
	if isStore(path) {
		s, err := store.Open(path)
		if err != nil {
			return ds, err
		}
		defer s.Close()
		if ds, err = s.Load(ctx, f); err != nil {
			return ds, err
		}
	} else {
		all, err := registration.LoadFile(path, registration.JSONOptions{Records: *jsonRecords})
		if err != nil {
			return ds, err
		}
		ds = all.Filter(f)
		log.Printf("%d of %d records match the filters", ds.Len(), all.Len())
	}
	if ds.Len() == 0 {
		return ds, registration.ErrEmptyDataset
	}
	return ds, nil
}

// loadOrFail loads the dataset, printing errors the way every report command does.
func loadOrFail(ctx context.Context, ff *filterFlags) (registration.Dataset, subcommands.ExitStatus) {
	f, err := ff.Filter()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return registration.Dataset{}, subcommands.ExitUsageError
	}
	ds, err := loadDataset(ctx, f)
	switch {
	case errors.Is(err, registration.ErrEmptyDataset):
		warn("No data available for the selected filters.")
		return ds, subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ds, subcommands.ExitFailure
	}
	return ds, subcommands.ExitSuccess
}
