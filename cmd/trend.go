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

type trendCmd struct {
	filters     filterFlags
	granularity string
	by          string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display the registrations of each month or quarter" }
func (*trendCmd) Usage() string {
	return `vreg trend [-granularity month|quarter] [-by category|manufacturer] [filters]

  Displays the total registrations of each period, optionally split by
  vehicle category or manufacturer.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	f.StringVar(&c.granularity, "granularity", "month", "Bucket width: month or quarter.")
	f.StringVar(&c.by, "by", "", "Split the trend by category or manufacturer.")
}

func (c *trendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := registration.ParseGranularity(c.granularity)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	dim, err := registration.ParseDimension(c.by)
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
	groups := registration.AggregateBy(ds.Records(), g, dim)

	if err := output(renderer.TrendMarkdown(groups, g, dim), trendSheet(groups, g, dim)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// trendSheet has a row per period and a column per group. A period without
// registrations has empty cells.
func trendSheet(groups []registration.Group, g registration.Granularity, dim registration.Dimension) sheet {
	var s sheet
	s.header = []string{"period"}
	if dim == registration.None {
		s.header = append(s.header, "vehicles")
	} else {
		for _, group := range groups {
			s.header = append(s.header, group.Label)
		}
		s.header = append(s.header, "total")
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
			row = append(row, strconv.FormatInt(v, 10))
		}
		if dim != registration.None {
			if seen {
				row = append(row, strconv.FormatInt(total, 10))
			} else {
				row = append(row, "")
			}
		}
		s.append(row...)
	}
	return s
}
