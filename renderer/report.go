package renderer

import (
	"bytes"
	"io"
	"strings"

	"github.com/etnz/registration"
	md "github.com/nao1215/markdown"
)

// ReportOptions holds configuration for rendering a dashboard.
type ReportOptions struct {
	Title  string
	Filter registration.Filter
	// SkipCharts drops the mermaid pie charts.
	SkipCharts bool
}

// ReportMarkdown renders the full dashboard: key metrics, monthly and
// quarterly trends and the breakdowns by category and manufacturer.
//
// Sections without data are left out.
func ReportMarkdown(r registration.Report, opts ReportOptions) string {
	if opts.Title == "" {
		opts.Title = "Vehicle Registrations"
	}
	var b strings.Builder
	b.WriteString(RenderReport(NewReport(opts.Title, r, opts.Filter)))

	section := func(heading string, content func(doc *md.Markdown) bool) {
		ConditionalBlock(&b, func(w io.Writer) bool {
			var buf bytes.Buffer
			doc := md.NewMarkdown(&buf)
			doc.H2(heading)
			if !content(doc) {
				return false
			}
			io.WriteString(w, doc.String())
			io.WriteString(w, "\n")
			return true
		})
	}

	section("Monthly Trend", func(doc *md.Markdown) bool {
		trendTable(doc, []registration.Group{{Series: r.Monthly}}, registration.Monthly, registration.None)
		return r.Monthly.Len() > 0
	})
	section("Quarterly Trend", func(doc *md.Markdown) bool {
		trendTable(doc, []registration.Group{{Series: r.Quarterly}}, registration.Quarterly, registration.None)
		return r.Quarterly.Len() > 0
	})
	shares := func(s []registration.Share, dim registration.Dimension) func(doc *md.Markdown) bool {
		return func(doc *md.Markdown) bool {
			if opts.SkipCharts {
				breakdownTable(doc, s, dim)
			} else {
				breakdown(doc, s, dim)
			}
			return len(s) > 0
		}
	}
	section("By Vehicle Category", shares(r.ByCategory, registration.Category))
	section("By Manufacturer", shares(r.ByManufacturer, registration.Manufacturer))
	return b.String()
}
