package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/registration"
	"github.com/etnz/registration/store"
	"github.com/google/subcommands"
)

type importCmd struct {
	list   bool
	delete string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import data files into a SQLite store" }
func (*importCmd) Usage() string {
	return `vreg -data <store.db> import [-list] [-delete <batch>] <file>...

  Imports each data file (.csv, .jsonl or .json) as a batch of the SQLite store
  given by -data. Reports then read every batch of the store.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List the imported batches.")
	f.StringVar(&c.delete, "delete", "", "Delete a batch by ID.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !isStore(*dataFile) {
		fmt.Fprintf(stderr, "Error: -data %q is not a SQLite store, want a .db file\n", *dataFile)
		return subcommands.ExitUsageError
	}
	if f.NArg() == 0 && !c.list && c.delete == "" {
		fmt.Fprintln(stderr, "Error: nothing to import")
		return subcommands.ExitUsageError
	}

	s, err := store.Open(*dataFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if c.delete != "" {
		if err := s.Delete(ctx, c.delete); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Deleted batch %s\n", c.delete)
	}

	for _, file := range f.Args() {
		ds, err := registration.LoadFile(file, registration.JSONOptions{Records: *jsonRecords})
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		batch, err := s.Import(ctx, file, ds.Records())
		if err != nil {
			fmt.Fprintf(stderr, "Error importing %q: %v\n", file, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Imported %d records from %s (batch %s)\n", batch.Records, file, batch.ID)
	}

	if c.list {
		batches, err := s.Batches(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		var sh sheet
		sh.header = []string{"batch", "source", "records", "imported_at"}
		for _, b := range batches {
			sh.append(b.ID, b.Source, fmt.Sprint(b.Records), b.ImportedAt.Format("2006-01-02 15:04:05"))
		}
		if err := printTable(sh); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
