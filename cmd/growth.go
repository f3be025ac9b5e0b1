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

type growthCmd struct {
	filters     filterFlags
	mode        string
	granularity string
	by          string
}

func (*growthCmd) Name() string     { return "growth" }
func (*growthCmd) Synopsis() string { return "display the YoY or QoQ growth of the latest period" }
func (*growthCmd) Usage() string {
	return `vreg growth [-mode yoy|qoq] [-granularity month|quarter] [-by category|manufacturer] [filters]

  Compares the registrations of the latest period with the same period one
  year earlier (yoy) or with the period one quarter earlier (qoq).

  yoy is computed on months and qoq on quarters unless -granularity says
  otherwise. A growth that cannot be computed is reported as N/A with its
  reason. See 'vreg topic growth'.
`
}

func (c *growthCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	f.StringVar(&c.mode, "mode", "yoy", "Growth mode: yoy or qoq.")
	f.StringVar(&c.granularity, "granularity", "", "Bucket width: month or quarter. Defaults to month for yoy and quarter for qoq.")
	f.StringVar(&c.by, "by", "", "Compute the growth of each category or manufacturer.")
}

func (c *growthCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode, err := registration.ParseMode(c.mode)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	g := mode.Granularity()
	if c.granularity != "" {
		if g, err = registration.ParseGranularity(c.granularity); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
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
	records := ds.Records()

	var md string
	var growths []registration.LabeledGrowth
	if dim == registration.None {
		growth := registration.Compute(registration.Aggregate(records, g), mode)
		growths = []registration.LabeledGrowth{{Growth: growth}}
		md = renderer.GrowthMarkdown(growth)
	} else {
		growths = registration.GrowthBy(records, g, mode, dim)
		md = renderer.GrowthByMarkdown(growths, dim, mode)
	}

	if err := output(md, growthSheet(growths, dim)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// growthSheet lists one growth per row, the rate is empty when undefined.
func growthSheet(growths []registration.LabeledGrowth, dim registration.Dimension) sheet {
	var s sheet
	s.header = []string{"period", "vehicles", "comparison_period", "comparison_vehicles", "growth", "status"}
	if dim != registration.None {
		s.header = append([]string{dim.String()}, s.header...)
	}
	for _, lg := range growths {
		g := lg.Growth
		row := []string{
			g.Granularity.Identifier(g.Current.Key),
			strconv.FormatInt(g.Current.Value, 10),
			g.Granularity.Identifier(g.Comparison.Key),
			"",
			"",
			"computed",
		}
		switch g.Reason {
		case registration.EmptySeries:
			row[0], row[1], row[2] = "", "", ""
		case registration.MissingComparison:
		default:
			row[3] = strconv.FormatInt(g.Comparison.Value, 10)
		}
		if g.Defined() {
			row[4] = fmt.Sprintf("%.2f", float64(g.Rate))
		} else {
			row[5] = g.Reason.String()
		}
		if dim != registration.None {
			row = append([]string{lg.Label}, row...)
		}
		s.append(row...)
	}
	return s
}
