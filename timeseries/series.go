// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"math"
	"sort"
	"time"

	"github.com/aclements/go-moremath/stats"
)

// Series represents a date-indexed series of page-view counts.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// Record is a single (date, value) observation.
type Record struct {
	Date  time.Time
	Value float64
}

// Months is the calendar order used for every month-wise grouping.
var Months = [12]time.Month{
	time.January, time.February, time.March, time.April,
	time.May, time.June, time.July, time.August,
	time.September, time.October, time.November, time.December,
}

// MonthAbbrev returns the three-letter abbreviation of m ("Jan", "Feb", ...).
func MonthAbbrev(m time.Month) string {
	return m.String()[:3]
}

// FromRecords builds a series from records, keeping their order.
func FromRecords(records []Record) *Series {
	s := &Series{
		Timestamps: make([]time.Time, len(records)),
		Values:     make([]float64, len(records)),
	}
	for i, r := range records {
		s.Timestamps[i] = r.Date
		s.Values[i] = r.Value
	}
	return s
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// At returns the i-th record.
func (s *Series) At(i int) Record {
	return Record{Date: s.Timestamps[i], Value: s.Values[i]}
}

// Records returns the series as a slice of records.
func (s *Series) Records() []Record {
	out := make([]Record, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stats.Mean(s.Values)
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min, _ := stats.Sample{Xs: s.Values}.Bounds()
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	_, max := stats.Sample{Xs: s.Values}.Bounds()
	return max
}

// Span returns the first and last timestamps of a sorted series.
func (s *Series) Span() (first, last time.Time) {
	if len(s.Timestamps) == 0 {
		return time.Time{}, time.Time{}
	}
	return s.Timestamps[0], s.Timestamps[len(s.Timestamps)-1]
}

// IsSorted reports whether the timestamps are in ascending order.
func (s *Series) IsSorted() bool {
	return sort.SliceIsSorted(s.Timestamps, func(i, j int) bool {
		return s.Timestamps[i].Before(s.Timestamps[j])
	})
}

// Sorted returns a copy of the series ordered by date. Records sharing a date
// keep their relative order.
func (s *Series) Sorted() *Series {
	records := s.Records()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	out := FromRecords(records)
	out.Name = s.Name
	return out
}

// Where returns the subsequence of records whose value satisfies keep.
func (s *Series) Where(keep func(v float64) bool) *Series {
	out := &Series{
		Timestamps: []time.Time{},
		Values:     []float64{},
		Name:       s.Name,
	}
	for i, v := range s.Values {
		if keep(v) {
			out.Timestamps = append(out.Timestamps, s.Timestamps[i])
			out.Values = append(out.Values, v)
		}
	}
	return out
}

// Years returns the distinct calendar years present, ascending.
func (s *Series) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, ts := range s.Timestamps {
		y := ts.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}
