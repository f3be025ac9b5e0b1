package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/registration"
	"github.com/etnz/registration/date"
	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func rec(on, category, manufacturer string, count int64) registration.Record {
	return registration.Record{On: date.MustParse(on), Category: category, Manufacturer: manufacturer, Count: count}
}

// outline is the structure of a rendered markdown document.
type outline struct {
	Headings []string
	// Tables holds the cells of each table, row by row, header included.
	Tables [][][]string
	// Code holds the language of each fenced code block.
	Code []string
}

// parse parses a GitHub flavored markdown document into its outline.
func parse(t *testing.T, src string) outline {
	t.Helper()
	source := []byte(src)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var o outline
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			o.Headings = append(o.Headings, inline(n, source))
			return ast.WalkSkipChildren, nil
		case *extast.Table:
			var rows [][]string
			for row := n.FirstChild(); row != nil; row = row.NextSibling() {
				var cells []string
				for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
					cells = append(cells, inline(cell, source))
				}
				rows = append(rows, cells)
			}
			o.Tables = append(o.Tables, rows)
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			o.Code = append(o.Code, string(n.Language(source)))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk markdown: %v", err)
	}
	return o
}

// inline returns the raw text of the inline children of n.
func inline(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func TestCount(t *testing.T) {
	testCases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tc := range testCases {
		if got := Count(tc.in); got != tc.want {
			t.Errorf("Count(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := SignedCount(1500); got != "+1,500" {
		t.Errorf("SignedCount(1500) = %q, want +1,500", got)
	}
}

func TestGrowthMarkdown(t *testing.T) {
	s := registration.MustSeries(registration.Monthly,
		registration.Point{Key: date.New(2023, 1, 1), Value: 1000},
		registration.Point{Key: date.New(2024, 1, 1), Value: 1500},
	)
	o := parse(t, GrowthMarkdown(registration.Compute(s, registration.YoY)))

	want := outline{
		Headings: []string{"Year-over-Year Growth"},
		Tables: [][][]string{{
			{"", "Period", "Vehicles"},
			{"Current", "2024-01", "1,500"},
			{"Comparison", "2023-01", "1,000"},
		}},
	}
	if diff := cmp.Diff(want, o); diff != "" {
		t.Errorf("GrowthMarkdown() mismatch (-want +got):\n%s", diff)
	}

	got := GrowthMarkdown(registration.Compute(s, registration.QoQ))
	if !strings.Contains(got, "N/A (insufficient history)") {
		t.Errorf("GrowthMarkdown() = %q, want an insufficient history notice", got)
	}
	if got := GrowthMarkdown(registration.Compute(registration.Series{}, registration.YoY)); !strings.Contains(got, "No data available") {
		t.Errorf("GrowthMarkdown(empty) = %q, want a no data notice", got)
	}
}

func TestGrowthByMarkdown(t *testing.T) {
	records := []registration.Record{
		rec("2023-01-31", "4W", "Ford", 100),
		rec("2024-01-31", "4W", "Ford", 120),
		rec("2024-01-31", "2W", "Honda", 50),
	}
	growths := registration.GrowthBy(records, registration.Monthly, registration.YoY, registration.Manufacturer)
	o := parse(t, GrowthByMarkdown(growths, registration.Manufacturer, registration.YoY))
	want := [][]string{
		{"Manufacturer", "Period", "Vehicles", "Previous", "YoY"},
		{"Ford", "2024-01", "120", "100", "+20.00%"},
		{"Honda", "2024-01", "50", "n/a", "N/A (insufficient history)"},
	}
	if len(o.Tables) != 1 {
		t.Fatalf("GrowthByMarkdown() has %d tables, want 1", len(o.Tables))
	}
	if diff := cmp.Diff(want, o.Tables[0]); diff != "" {
		t.Errorf("GrowthByMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestTrendMarkdown(t *testing.T) {
	records := []registration.Record{
		rec("2024-01-31", "4W", "Ford", 1200),
		rec("2024-02-29", "4W", "Ford", 100),
		rec("2024-02-29", "2W", "Honda", 50),
	}
	groups := registration.AggregateBy(records, registration.Monthly, registration.Category)
	o := parse(t, TrendMarkdown(groups, registration.Monthly, registration.Category))

	want := outline{
		Headings: []string{"Month Registrations by Vehicle Category"},
		Tables: [][][]string{{
			{"Month", "2W", "4W", "Total"},
			{"2024-01", "", "1,200", "1,200"},
			{"2024-02", "50", "100", "150"},
		}},
	}
	if diff := cmp.Diff(want, o); diff != "" {
		t.Errorf("TrendMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestTrendMarkdown_Gaps(t *testing.T) {
	records := []registration.Record{
		rec("2024-01-31", "4W", "Ford", 10),
		rec("2024-04-30", "2W", "Honda", 20),
	}
	groups := registration.AggregateBy(records, registration.Monthly, registration.Category)
	o := parse(t, TrendMarkdown(groups, registration.Monthly, registration.Category))

	want := [][]string{
		{"Month", "2W", "4W", "Total"},
		{"2024-01", "", "10", "10"},
		{"2024-02", "", "", ""},
		{"2024-03", "", "", ""},
		{"2024-04", "20", "", "20"},
	}
	if len(o.Tables) != 1 {
		t.Fatalf("TrendMarkdown() has %d tables, want 1", len(o.Tables))
	}
	if diff := cmp.Diff(want, o.Tables[0]); diff != "" {
		t.Errorf("TrendMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestBreakdownMarkdown(t *testing.T) {
	records := []registration.Record{
		rec("2024-01-31", "4W", "Ford", 300),
		rec("2024-01-31", "2W", "Honda", 100),
	}
	got := BreakdownMarkdown(registration.Breakdown(records, registration.Manufacturer), registration.Manufacturer)
	o := parse(t, got)

	want := outline{
		Headings: []string{"Registrations by Manufacturer"},
		Tables: [][][]string{{
			{"Manufacturer", "Vehicles", "Share"},
			{"Ford", "300", "75.00%"},
			{"Honda", "100", "25.00%"},
		}},
		Code: []string{"mermaid"},
	}
	if diff := cmp.Diff(want, o); diff != "" {
		t.Errorf("BreakdownMarkdown() mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(got, `"Ford" : 300`) {
		t.Errorf("BreakdownMarkdown() pie chart is missing Ford:\n%s", got)
	}
}

func TestReportMarkdown(t *testing.T) {
	ds, err := registration.NewDataset([]registration.Record{
		rec("2023-01-31", "4W", "Ford", 100),
		rec("2024-01-31", "2W", "Honda", 150),
	})
	if err != nil {
		t.Fatal(err)
	}
	got := ReportMarkdown(registration.NewReport(ds), ReportOptions{})
	o := parse(t, got)
	wantHeadings := []string{
		"Vehicle Registrations",
		"Key Metrics",
		"Monthly Trend",
		"Quarterly Trend",
		"By Vehicle Category",
		"By Manufacturer",
	}
	if diff := cmp.Diff(wantHeadings, o.Headings); diff != "" {
		t.Errorf("ReportMarkdown() headings mismatch (-want +got):\n%s", diff)
	}
	if len(o.Tables) != 5 || len(o.Code) != 2 {
		t.Errorf("ReportMarkdown() has %d tables and %d charts, want 5 and 2", len(o.Tables), len(o.Code))
	}

	o = parse(t, ReportMarkdown(registration.NewReport(ds), ReportOptions{SkipCharts: true}))
	if len(o.Code) != 0 {
		t.Errorf("ReportMarkdown(SkipCharts) has %d charts, want none", len(o.Code))
	}

	o = parse(t, ReportMarkdown(registration.NewReport(registration.Dataset{}), ReportOptions{Title: "Empty"}))
	if diff := cmp.Diff([]string{"Empty", "Key Metrics"}, o.Headings); diff != "" {
		t.Errorf("ReportMarkdown(empty) headings mismatch (-want +got):\n%s", diff)
	}
}
