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

type breakdownCmd struct {
	filters filterFlags
	by      string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display the share of each category or manufacturer" }
func (*breakdownCmd) Usage() string {
	return `vreg breakdown [-by category|manufacturer] [filters]

  Displays the total registrations of each vehicle category or manufacturer
  and its share of the total, largest first, with a pie chart.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	f.StringVar(&c.by, "by", "category", "Dimension: category or manufacturer.")
}

func (c *breakdownCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dim, err := registration.ParseDimension(c.by)
	if err == nil && dim == registration.None {
		err = fmt.Errorf("-by must be category or manufacturer")
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := checkFormat(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ds, status := loadOrFail(ctx, &c.filters)
	if status != subcommands.ExitSuccess {
		return status
	}
	shares := registration.Breakdown(ds.Records(), dim)

	var s sheet
	s.header = []string{dim.String(), "vehicles", "share"}
	for _, share := range shares {
		s.append(share.Label, strconv.FormatInt(share.Total, 10), fmt.Sprintf("%.2f", float64(share.Percent)))
	}
	if err := output(renderer.BreakdownMarkdown(shares, dim), s); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
