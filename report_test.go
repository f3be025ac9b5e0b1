package registration

import (
	"testing"
	"time"

	"github.com/etnz/registration/date"
)

func TestNewReport(t *testing.T) {
	ds, err := NewDataset([]Record{
		rec("2023-01-31", "4W", "Ford", 100),
		rec("2023-04-30", "4W", "Ford", 50),
		rec("2024-01-31", "2W", "Honda", 150),
		rec("2024-01-15", "4W", "Ford", 30),
	})
	if err != nil {
		t.Fatal(err)
	}
	r := NewReport(ds)

	if r.Records != 4 || r.Vehicles != 330 {
		t.Errorf("NewReport() totals = %d records, %d vehicles, want 4, 330", r.Records, r.Vehicles)
	}
	if want := date.NewRange(date.New(2023, time.January, 31), date.New(2024, time.January, 31)); r.Range != want {
		t.Errorf("NewReport().Range = %v, want %v", r.Range, want)
	}
	if got, want := r.Monthly.String(), "monthly[2023-01:100 2023-04:50 2024-01:180]"; got != want {
		t.Errorf("NewReport().Monthly = %s, want %s", got, want)
	}
	if got, want := r.Quarterly.String(), "quarterly[2023-Q1:100 2023-Q2:50 2024-Q1:180]"; got != want {
		t.Errorf("NewReport().Quarterly = %s, want %s", got, want)
	}

	yoy := r.Growth(YoY)
	if !yoy.Defined() || !yoy.Rate.Equal(80) || yoy.Comparison.Value != 100 {
		t.Errorf("NewReport().YoY = %+v, want +80%% over 100", yoy)
	}
	qoq := r.Growth(QoQ)
	if qoq.Defined() || qoq.Reason != MissingComparison || qoq.Comparison.Key != quarter(2023, 4) {
		t.Errorf("NewReport().QoQ = %+v, want insufficient history on 2023-Q4", qoq)
	}

	if len(r.ByCategory) != 2 || r.ByCategory[0].Label != "4W" || r.ByCategory[0].Total != 180 {
		t.Errorf("NewReport().ByCategory = %v, want 4W first with 180", r.ByCategory)
	}
	if len(r.ByManufacturer) != 2 || r.ByManufacturer[1].Label != "Honda" || !r.ByManufacturer[1].Percent.Equal(Percent(150.0/330*100)) {
		t.Errorf("NewReport().ByManufacturer = %v, want Honda second at 45.45%%", r.ByManufacturer)
	}
}

func TestNewReport_Empty(t *testing.T) {
	r := NewReport(Dataset{})
	if r.Records != 0 || r.Monthly.Len() != 0 || len(r.ByCategory) != 0 {
		t.Errorf("NewReport(empty) = %+v, want an empty report", r)
	}
	if r.YoY.Reason != EmptySeries || r.QoQ.Reason != EmptySeries {
		t.Errorf("NewReport(empty) growth = %v, %v want no data", r.YoY, r.QoQ)
	}
	if rate, cmp := r.YoY.Sentinel(); rate != 0 || cmp != 0 {
		t.Errorf("Sentinel() = %v, %v want 0, 0", rate, cmp)
	}
}
