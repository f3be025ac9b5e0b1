package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/registration"
)

// Report is the header of a dashboard, with every value already formatted.
type Report struct {
	Title    string `json:"title"`
	From     string `json:"from"`
	To       string `json:"to"`
	Filters  string `json:"filters"`
	Vehicles string `json:"vehicles"`
	Records  string `json:"records"`
	YoYTitle string `json:"yoyTitle"`
	YoY      string `json:"yoy"`
	QoQTitle string `json:"qoqTitle"`
	QoQ      string `json:"qoq"`
}

// NewReport prepares the header of r for rendering.
func NewReport(title string, r registration.Report, f registration.Filter) *Report {
	from, to := "n/a", "n/a"
	if !r.Range.IsZero() {
		from, to = r.Range.From.String(), r.Range.To.String()
	}
	return &Report{
		Title:    title,
		From:     from,
		To:       to,
		Filters:  Filters(f),
		Vehicles: Count(r.Vehicles),
		Records:  Count(int64(r.Records)),
		YoYTitle: GrowthTitle(r.YoY),
		YoY:      r.YoY.String(),
		QoQTitle: GrowthTitle(r.QoQ),
		QoQ:      r.QoQ.String(),
	}
}

// GrowthTitle names a growth with the periods it compares, like "YoY Growth (2024-06 vs 2023-06)".
func GrowthTitle(g registration.Growth) string {
	title := g.Mode.String() + " Growth"
	if g.Current.Key.IsZero() {
		return title
	}
	return fmt.Sprintf("%s (%s vs %s)", title,
		g.Granularity.Identifier(g.Current.Key),
		g.Granularity.Identifier(g.Comparison.Key))
}

// Filters describes a filter in a few words, "none" when it lets everything through.
func Filters(f registration.Filter) string {
	var parts []string
	switch {
	case !f.From.IsZero() && !f.To.IsZero():
		parts = append(parts, fmt.Sprintf("%s to %s", f.From, f.To))
	case !f.From.IsZero():
		parts = append(parts, fmt.Sprintf("from %s", f.From))
	case !f.To.IsZero():
		parts = append(parts, fmt.Sprintf("until %s", f.To))
	}
	if len(f.Categories) > 0 {
		parts = append(parts, "categories "+strings.Join(f.Categories, ", "))
	}
	if len(f.Manufacturers) > 0 {
		parts = append(parts, "manufacturers "+strings.Join(f.Manufacturers, ", "))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "; ")
}
