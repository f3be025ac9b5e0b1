package registration

import (
	"fmt"
	"iter"

	"github.com/etnz/registration/date"
)

// Point is one bucket of a Series: the first day of the period and its summed count.
type Point struct {
	Key   date.Date
	Value int64
}

// Series is a time series of counts bucketed by a Granularity.
//
// Keys are period starts, unique and sorted ascending. A Series is never
// mutated once built; the zero Series is an empty monthly series.
type Series struct {
	granularity Granularity
	history     date.History[int64]
}

// NewSeries builds a Series from points. Keys must be period starts of g and must be unique.
func NewSeries(g Granularity, points ...Point) (Series, error) {
	s := Series{granularity: g}
	for _, p := range points {
		if key := g.Key(p.Key); key != p.Key {
			return Series{}, fmt.Errorf("key %v is not the start of a %s, want %v", p.Key, g.Name(), key)
		}
		if _, exists := s.history.Get(p.Key); exists {
			return Series{}, fmt.Errorf("duplicate key %v in %s series", p.Key, g)
		}
		s.history.Append(p.Key, p.Value)
	}
	return s, nil
}

// MustSeries is like NewSeries but panics on error.
func MustSeries(g Granularity, points ...Point) Series {
	s, err := NewSeries(g, points...)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// Granularity returns the bucket width of the series.
func (s Series) Granularity() Granularity { return s.granularity }

// Len returns the number of periods in the series.
func (s Series) Len() int { return s.history.Len() }

// All returns an iterator over keys and values in chronological order.
func (s Series) All() iter.Seq2[date.Date, int64] { return s.history.Values() }

// Points returns a copy of the series as points.
func (s Series) Points() []Point {
	points := make([]Point, 0, s.Len())
	for k, v := range s.All() {
		points = append(points, Point{Key: k, Value: v})
	}
	return points
}

// Get returns the value at exactly key.
func (s Series) Get(key date.Date) (int64, bool) { return s.history.Get(key) }

// Latest returns the point with the maximum key, or false for an empty series.
func (s Series) Latest() (Point, bool) {
	if s.Len() == 0 {
		return Point{}, false
	}
	k, v := s.history.Latest()
	return Point{Key: k, Value: v}, true
}

// Total returns the sum of all values.
func (s Series) Total() int64 {
	var total int64
	for _, v := range s.All() {
		total += v
	}
	return total
}

// Identifier returns the short name of the period starting at key.
func (s Series) Identifier(key date.Date) string { return s.granularity.Identifier(key) }

// Regroup re-aggregates the series into coarser buckets.
//
// Regrouping into the same granularity returns an equal series; regrouping
// quarters into months is an error since the split is unknown.
func (s Series) Regroup(g Granularity) (Series, error) {
	if g.Period().Months() < s.granularity.Period().Months() {
		return Series{}, fmt.Errorf("cannot regroup a %s series into %s buckets", s.granularity, g)
	}
	out := Series{granularity: g}
	for k, v := range s.All() {
		out.history.AppendAdd(g.Key(k), v)
	}
	return out, nil
}

// Equal reports whether both series have the same granularity and points.
func (s Series) Equal(o Series) bool {
	return s.granularity == o.granularity && s.history.Equal(&o.history)
}

func (s Series) String() string {
	str := s.granularity.String() + "["
	for i, p := range s.Points() {
		if i > 0 {
			str += " "
		}
		str += fmt.Sprintf("%s:%d", s.Identifier(p.Key), p.Value)
	}
	return str + "]"
}
