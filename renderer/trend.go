package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/registration"
	md "github.com/nao1215/markdown"
)

// TrendMarkdown renders the series of each group as one table: a row per
// period, a column per label and the total of the period.
//
// Periods missing from a group show an empty cell, periods missing from every
// group an empty row.
func TrendMarkdown(groups []registration.Group, g registration.Granularity, dim registration.Dimension) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if dim == registration.None {
		doc.H1(fmt.Sprintf("%s Registrations", title(g)))
	} else {
		doc.H1(fmt.Sprintf("%s Registrations by %s", title(g), dim.Title()))
	}
	trendTable(doc, groups, g, dim)
	return doc.String()
}

func trendTable(doc *md.Markdown, groups []registration.Group, g registration.Granularity, dim registration.Dimension) {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{title(g)},
		Rows:      [][]string{},
	}
	for _, group := range groups {
		table.Header = append(table.Header, label(dim, group.Label))
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	if len(groups) > 1 {
		table.Header = append(table.Header, "Total")
		table.Alignment = append(table.Alignment, md.AlignRight)
	}

	for _, k := range registration.Keys(groups, g) {
		row := []string{g.Identifier(k)}
		var (
			total int64
			seen  bool
		)
		for _, group := range groups {
			v, ok := group.Series.Get(k)
			if !ok {
				row = append(row, "")
				continue
			}
			total, seen = total+v, true
			row = append(row, Count(v))
		}
		if len(groups) > 1 {
			if seen {
				row = append(row, Count(total))
			} else {
				row = append(row, "")
			}
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
}

// title returns "Month" or "Quarter".
func title(g registration.Granularity) string {
	name := g.Name()
	return string(name[0]-'a'+'A') + name[1:]
}
