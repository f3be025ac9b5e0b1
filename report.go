package registration

import "github.com/etnz/registration/date"

// Report is the dashboard view of a filtered Dataset: totals, headline growth
// metrics, the monthly trend and the breakdowns by category and manufacturer.
type Report struct {
	Range    date.Range
	Records  int
	Vehicles int64

	Monthly   Series
	Quarterly Series

	// YoY is computed on the monthly series, QoQ on the quarterly one.
	YoY Growth
	QoQ Growth

	ByCategory     []Share
	ByManufacturer []Share
}

// NewReport computes the dashboard of ds.
func NewReport(ds Dataset) Report {
	records := ds.Records()
	monthly := Aggregate(records, Monthly)
	quarterly := Aggregate(records, Quarterly)
	return Report{
		Range:          ds.Range(),
		Records:        ds.Len(),
		Vehicles:       ds.Total(),
		Monthly:        monthly,
		Quarterly:      quarterly,
		YoY:            Compute(monthly, YoY),
		QoQ:            Compute(quarterly, QoQ),
		ByCategory:     Breakdown(records, Category),
		ByManufacturer: Breakdown(records, Manufacturer),
	}
}

// Growth returns the headline growth for mode.
func (r Report) Growth(mode Mode) Growth {
	if mode == QoQ {
		return r.QoQ
	}
	return r.YoY
}
