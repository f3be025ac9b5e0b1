package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/etnz/registration"
	"github.com/etnz/registration/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	filters  filterFlags
	title    string
	noCharts bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the registration dashboard" }
func (*reportCmd) Usage() string {
	return `vreg report [-title <title>] [-no-charts] [filters]

  Displays the dashboard of the filtered dataset: totals, YoY and QoQ growth,
  monthly and quarterly trends and the breakdowns by vehicle category and
  manufacturer.

  With -format table or csv only the key metrics are printed.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	f.StringVar(&c.title, "title", "Vehicle Registrations", "Title of the dashboard.")
	f.BoolVar(&c.noCharts, "no-charts", false, "Do not render the mermaid pie charts.")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := checkFormat(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ds, status := loadOrFail(ctx, &c.filters)
	if status != subcommands.ExitSuccess {
		return status
	}
	filter, _ := c.filters.Filter()
	r := registration.NewReport(ds)

	md := renderer.ReportMarkdown(r, renderer.ReportOptions{Title: c.title, Filter: filter, SkipCharts: c.noCharts})
	if err := output(md, metricsSheet(r)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// metricsSheet lists the key metrics of a report.
func metricsSheet(r registration.Report) sheet {
	rate := func(g registration.Growth) string {
		if !g.Defined() {
			return ""
		}
		return fmt.Sprintf("%.2f", float64(g.Rate))
	}
	var s sheet
	s.header = []string{"metric", "value"}
	s.append("from", r.Range.From.String())
	s.append("to", r.Range.To.String())
	s.append("records", strconv.Itoa(r.Records))
	s.append("vehicles", strconv.FormatInt(r.Vehicles, 10))
	s.append("yoy", rate(r.YoY))
	s.append("qoq", rate(r.QoQ))
	return s
}
