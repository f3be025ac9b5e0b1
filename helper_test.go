package registration

import (
	"time"

	"github.com/etnz/registration/date"
	"github.com/google/go-cmp/cmp"
)

// dates compare by value, whatever their unexported fields.
var dateComparer = cmp.Comparer(func(a, b date.Date) bool { return a == b })

// month is a helper for test to create the key of a monthly bucket.
func month(year int, m time.Month) date.Date { return date.New(year, m, 1) }

// quarter is a helper for test to create the key of a quarterly bucket, q in [1..4].
func quarter(year, q int) date.Date { return date.New(year, time.Month(3*(q-1)+1), 1) }

// rec is a helper for test to create a record from a lenient date string.
func rec(on, category, manufacturer string, count int64) Record {
	return Record{On: date.MustParse(on), Category: category, Manufacturer: manufacturer, Count: count}
}
