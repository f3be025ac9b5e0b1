package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/registration"
	"github.com/etnz/registration/date"
	"github.com/etnz/registration/docs"
	"github.com/etnz/registration/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func instructions(s string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: s}}}
}

func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instructions(`
			As a facilitator you are in charge of the conversation and solving the user's request.
			The user is an investor studying vehicle registrations: volumes, year-over-year and
			quarter-over-quarter growth, by vehicle category and by manufacturer.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They keep context of your previous questions.

			Always get figures from the Analyst, never guess them. When a growth is reported as
			N/A, explain the reason given (no data, insufficient history or a zero comparison period).
			Devise a plan of questions to ask to each expert and come up with the best response.
			`),
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounding market context with Google Search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is a market researcher, aware of the automotive industry, its manufacturers,
		regulations and the latest news. Ask the Researcher to explain a trend or for recent information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instructions(`
			You are an automotive market researcher. You search about manufacturers, vehicle
			categories, policies and market news. You leverage Google Search to ground your
			assertions, and you relate the news to the figures you are asked about.
			`),
		},
	}
}

// NewAnalyst returns an expert computing figures on ds.
func NewAnalyst(ds registration.Dataset) *Expert {
	lib := Tools(ds)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It has the vehicle registration dataset loaded and computes
		totals, monthly or quarterly trends, YoY and QoQ growth and breakdowns by category or manufacturer.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instructions(`
			You are a data analyst in charge of the vehicle registration dataset.
			Use the Tools to compute every figure you are asked about. Start with Facets to learn
			the available categories, manufacturers and dates when a question is ambiguous.
			`),
		},
		Library: NewLibrary(lib),
	}
}

// Tools returns the functions the Analyst can call on ds.
func Tools(ds registration.Dataset) []Function {
	return []Function{
		facetsTool(ds),
		growthTool(ds),
		trendTool(ds),
		breakdownTool(ds),
		reportTool(ds),
	}
}

// filterSchema are the parameters shared by all tools filtering the dataset.
func filterSchema() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"from": {
			Type:        genai.TypeString,
			Description: "First registration date included, no lower bound when empty.\n\n" + docs.MustRead("dates"),
		},
		"to": {
			Type:        genai.TypeString,
			Description: "Last registration date included, no upper bound when empty.",
		},
		"categories": {
			Type:        genai.TypeString,
			Description: "Comma separated vehicle categories to keep, all when empty.",
		},
		"manufacturers": {
			Type:        genai.TypeString,
			Description: "Comma separated manufacturers to keep, all when empty.",
		},
	}
}

// schema returns an object schema with the filter parameters and props.
func schema(props map[string]*genai.Schema, required ...string) *genai.Schema {
	all := filterSchema()
	for k, v := range props {
		all[k] = v
	}
	return &genai.Schema{Type: genai.TypeObject, Properties: all, Required: required}
}

var markdownResponse = &genai.Schema{Type: genai.TypeString, Description: "A markdown document."}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	return strings.TrimSpace(s), nil
}

// filterArgs reads the filter parameters of a call.
func filterArgs(args map[string]any) (registration.Filter, error) {
	var f registration.Filter
	var err error
	if f.From, err = dateArg(args, "from"); err != nil {
		return f, err
	}
	if f.To, err = dateArg(args, "to"); err != nil {
		return f, err
	}
	categories, err := stringArg(args, "categories")
	if err != nil {
		return f, err
	}
	manufacturers, err := stringArg(args, "manufacturers")
	if err != nil {
		return f, err
	}
	f.Categories, f.Manufacturers = registration.SplitList(categories), registration.SplitList(manufacturers)
	return f, nil
}

// dateArg reads an optional date argument, zero when missing.
func dateArg(args map[string]any, name string) (date.Date, error) {
	s, err := stringArg(args, name)
	if err != nil || s == "" {
		return date.Date{}, err
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("argument %q must be a valid date: %w", name, err)
	}
	return d, nil
}

// tool builds a Function filtering ds before calling run.
func tool(ds registration.Dataset, decl *genai.FunctionDeclaration, run func(ds registration.Dataset, args map[string]any) (string, error)) *Func {
	return &Func{
		Decl: decl,
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			f, err := filterArgs(args)
			if err != nil {
				return failure(id, decl.Name, err)
			}
			filtered := ds.Filter(f)
			if filtered.Len() == 0 {
				return failure(id, decl.Name, registration.ErrEmptyDataset)
			}
			out, err := run(filtered, args)
			if err != nil {
				return failure(id, decl.Name, err)
			}
			return success(id, decl.Name, out)
		},
	}
}

func facetsTool(ds registration.Dataset) *Func {
	return tool(ds, &genai.FunctionDeclaration{
		Name:        "Facets",
		Description: "Facets describes the dataset: date range, number of records and vehicles, categories and manufacturers.",
		Parameters:  schema(nil),
		Response:    markdownResponse,
	}, func(ds registration.Dataset, _ map[string]any) (string, error) {
		var b strings.Builder
		r := ds.Range()
		fmt.Fprintf(&b, "Registrations from %s to %s: %s vehicles in %s records.\n\n", r.From, r.To, renderer.Count(ds.Total()), renderer.Count(int64(ds.Len())))
		fmt.Fprintf(&b, "Vehicle categories: %s\n\n", strings.Join(ds.Categories(), ", "))
		fmt.Fprintf(&b, "Manufacturers: %s\n", strings.Join(ds.Manufacturers(), ", "))
		return b.String(), nil
	})
}

func growthTool(ds registration.Dataset) *Func {
	return tool(ds, &genai.FunctionDeclaration{
		Name:        "Growth",
		Description: "Growth computes the YoY or QoQ growth of the latest period, overall or for each label of a dimension.\n\n" + docs.MustRead("growth"),
		Parameters: schema(map[string]*genai.Schema{
			"mode":        {Type: genai.TypeString, Enum: []string{"yoy", "qoq"}, Description: "yoy for year-over-year, qoq for quarter-over-quarter."},
			"granularity": {Type: genai.TypeString, Enum: []string{"month", "quarter"}, Description: "The bucket width, defaults to month for yoy and quarter for qoq."},
			"dimension":   {Type: genai.TypeString, Enum: []string{"category", "manufacturer"}, Description: "Compute the growth of each category or manufacturer. Overall when empty."},
		}, "mode"),
		Response: markdownResponse,
	}, func(ds registration.Dataset, args map[string]any) (string, error) {
		smode, err := stringArg(args, "mode")
		if err != nil {
			return "", err
		}
		mode, err := registration.ParseMode(smode)
		if err != nil {
			return "", err
		}
		g, dim, err := granularityAndDimension(args, mode.Granularity())
		if err != nil {
			return "", err
		}
		if dim == registration.None {
			return renderer.GrowthMarkdown(registration.Compute(registration.Aggregate(ds.Records(), g), mode)), nil
		}
		return renderer.GrowthByMarkdown(registration.GrowthBy(ds.Records(), g, mode, dim), dim, mode), nil
	})
}

func trendTool(ds registration.Dataset) *Func {
	return tool(ds, &genai.FunctionDeclaration{
		Name:        "Trend",
		Description: "Trend returns the registrations of each month or quarter, overall or split by a dimension.",
		Parameters: schema(map[string]*genai.Schema{
			"granularity": {Type: genai.TypeString, Enum: []string{"month", "quarter"}, Description: "The bucket width, defaults to month."},
			"dimension":   {Type: genai.TypeString, Enum: []string{"category", "manufacturer"}, Description: "Split the trend by category or manufacturer."},
		}),
		Response: markdownResponse,
	}, func(ds registration.Dataset, args map[string]any) (string, error) {
		g, dim, err := granularityAndDimension(args, registration.Monthly)
		if err != nil {
			return "", err
		}
		return renderer.TrendMarkdown(registration.AggregateBy(ds.Records(), g, dim), g, dim), nil
	})
}

func breakdownTool(ds registration.Dataset) *Func {
	return tool(ds, &genai.FunctionDeclaration{
		Name:        "Breakdown",
		Description: "Breakdown returns the total registrations of each category or manufacturer and its share of the total.",
		Parameters: schema(map[string]*genai.Schema{
			"dimension": {Type: genai.TypeString, Enum: []string{"category", "manufacturer"}},
		}, "dimension"),
		Response: markdownResponse,
	}, func(ds registration.Dataset, args map[string]any) (string, error) {
		_, dim, err := granularityAndDimension(args, registration.Monthly)
		if err != nil {
			return "", err
		}
		if dim == registration.None {
			return "", fmt.Errorf("argument \"dimension\" is required")
		}
		return renderer.BreakdownMarkdown(registration.Breakdown(ds.Records(), dim), dim), nil
	})
}

func reportTool(ds registration.Dataset) *Func {
	return tool(ds, &genai.FunctionDeclaration{
		Name:        "Report",
		Description: "Report returns the full dashboard: key metrics, trends and breakdowns.",
		Parameters:  schema(nil),
		Response:    markdownResponse,
	}, func(ds registration.Dataset, args map[string]any) (string, error) {
		f, _ := filterArgs(args)
		return renderer.ReportMarkdown(registration.NewReport(ds), renderer.ReportOptions{Filter: f, SkipCharts: true}), nil
	})
}

func granularityAndDimension(args map[string]any, def registration.Granularity) (registration.Granularity, registration.Dimension, error) {
	g := def
	sg, err := stringArg(args, "granularity")
	if err != nil {
		return g, registration.None, err
	}
	if sg != "" {
		if g, err = registration.ParseGranularity(sg); err != nil {
			return g, registration.None, err
		}
	}
	sdim, err := stringArg(args, "dimension")
	if err != nil {
		return g, registration.None, err
	}
	dim, err := registration.ParseDimension(sdim)
	return g, dim, err
}
