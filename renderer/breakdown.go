package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/registration"
	md "github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// BreakdownMarkdown renders the shares of a dimension as a table followed by a mermaid pie chart.
func BreakdownMarkdown(shares []registration.Share, dim registration.Dimension) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Registrations by %s", dim.Title()))
	breakdown(doc, shares, dim)
	return doc.String()
}

func breakdown(doc *md.Markdown, shares []registration.Share, dim registration.Dimension) {
	breakdownTable(doc, shares, dim)
	doc.CodeBlocks(md.SyntaxHighlightMermaid, pieChart(shares, dim))
}

func breakdownTable(doc *md.Markdown, shares []registration.Share, dim registration.Dimension) {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{dim.Title(), "Vehicles", "Share"},
		Rows:      [][]string{},
	}
	for _, s := range shares {
		table.Rows = append(table.Rows, []string{label(dim, s.Label), Count(s.Total), s.Percent.String()})
	}
	doc.Table(table)
}

// pieChart returns the mermaid source of a pie chart of the shares.
func pieChart(shares []registration.Share, dim registration.Dimension) string {
	var buf bytes.Buffer
	pie := piechart.NewPieChart(&buf, piechart.WithTitle(fmt.Sprintf("Vehicles by %s", dim.Title())), piechart.WithShowData(true))
	for _, s := range shares {
		pie.LabelAndIntValue(label(dim, s.Label), uint64(s.Total))
	}
	return pie.String()
}
