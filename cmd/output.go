package cmd

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// sheet is the tabular form of a report, used by the table and csv formats.
type sheet struct {
	header []string
	rows   [][]string
}

func (s *sheet) append(row ...string) { s.rows = append(s.rows, row) }

// checkFormat validates the -format flag.
func checkFormat() error {
	switch *outputFormat {
	case "markdown", "table", "csv":
		return nil
	default:
		return fmt.Errorf("unknown format %q, want markdown, table or csv", *outputFormat)
	}
}

// output prints a report in the selected format: md for markdown, s otherwise.
func output(md string, s sheet) error {
	switch *outputFormat {
	case "table":
		return printTable(s)
	case "csv":
		w := csv.NewWriter(stdout)
		w.Write(s.header)
		w.WriteAll(s.rows)
		return w.Error()
	default:
		printMarkdown(md)
		return nil
	}
}

// printMarkdown renders md for the terminal, or prints it as is when the output is not a terminal.
func printMarkdown(md string) {
	if color.NoColor {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}

func printTable(s sheet) error {
	table := tablewriter.NewTable(stdout,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignRight},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
	table.Header(s.header)
	if err := table.Bulk(s.rows); err != nil {
		return err
	}
	return table.Render()
}

// warn prints a user facing warning on stderr, in yellow on terminals.
func warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	color.New(color.FgYellow).Fprint(stderr, "Warning: "+msg)
}
