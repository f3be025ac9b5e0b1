package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/registration"
	md "github.com/nao1215/markdown"
)

// GrowthMarkdown renders a single growth: both periods, their counts and the rate.
func GrowthMarkdown(g registration.Growth) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Growth", g.Mode.Title()))

	if g.Reason == registration.EmptySeries {
		doc.PlainText("No data available for the selected filters.")
		return doc.String()
	}

	comparison := Count(g.Comparison.Value)
	if g.Reason == registration.MissingComparison {
		comparison = "n/a"
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Period", "Vehicles"},
		Rows: [][]string{
			{"Current", g.Granularity.Identifier(g.Current.Key), Count(g.Current.Value)},
			{"Comparison", g.Granularity.Identifier(g.Comparison.Key), comparison},
		},
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%s Growth: **%s**", g.Mode, g))
	if g.Defined() {
		doc.PlainText(fmt.Sprintf("Change: %s vehicles", SignedCount(g.Change())))
	}
	return doc.String()
}

// GrowthByMarkdown renders the growth of each label of a dimension.
func GrowthByMarkdown(growths []registration.LabeledGrowth, dim registration.Dimension, mode registration.Mode) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Growth by %s", mode.Title(), dim.Title()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{dim.Title(), "Period", "Vehicles", "Previous", mode.String()},
		Rows:      [][]string{},
	}
	for _, lg := range growths {
		g := lg.Growth
		previous := "n/a"
		if g.Reason != registration.MissingComparison {
			previous = Count(g.Comparison.Value)
		}
		table.Rows = append(table.Rows, []string{
			label(dim, lg.Label),
			g.Granularity.Identifier(g.Current.Key),
			Count(g.Current.Value),
			previous,
			g.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
