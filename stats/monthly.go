package stats

import (
	"time"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/sartorproj/pageviews/timeseries"
)

// YearMonth identifies a calendar month of a given year.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthlyAggregate holds the mean value of every (year, month) pair for the
// observed years. Pairs without observations hold 0.
type MonthlyAggregate struct {
	Years []int
	Means map[YearMonth]float64
	// Counts is the number of observations behind each mean.
	Counts map[YearMonth]int
}

// MonthlyMeans groups s by calendar year and month and averages each group.
// Every observed year gets an entry for all twelve months.
func MonthlyMeans(s *timeseries.Series) *MonthlyAggregate {
	groups := make(map[YearMonth][]float64)
	for i, ts := range s.Timestamps {
		key := YearMonth{Year: ts.Year(), Month: ts.Month()}
		groups[key] = append(groups[key], s.Values[i])
	}

	agg := &MonthlyAggregate{
		Years:  s.Years(),
		Means:  make(map[YearMonth]float64, 12*len(groups)),
		Counts: make(map[YearMonth]int, len(groups)),
	}
	for _, year := range agg.Years {
		for _, month := range timeseries.Months {
			key := YearMonth{Year: year, Month: month}
			values := groups[key]
			if len(values) == 0 {
				agg.Means[key] = 0
				continue
			}
			agg.Means[key] = mstats.Mean(values)
			agg.Counts[key] = len(values)
		}
	}
	return agg
}

// Mean returns the aggregate for (year, month), 0 when absent.
func (a *MonthlyAggregate) Mean(year int, month time.Month) float64 {
	return a.Means[YearMonth{Year: year, Month: month}]
}

// ByMonth returns, for the given month, the means across Years in order.
func (a *MonthlyAggregate) ByMonth(month time.Month) []float64 {
	out := make([]float64, len(a.Years))
	for i, year := range a.Years {
		out[i] = a.Mean(year, month)
	}
	return out
}

// Chronological returns the means of the observed year-months in time order,
// from the first observed month to the last. Months inside that span without
// data are reported as 0.
func (a *MonthlyAggregate) Chronological() ([]YearMonth, []float64) {
	var first, last YearMonth
	found := false
	for _, year := range a.Years {
		for _, month := range timeseries.Months {
			key := YearMonth{Year: year, Month: month}
			if a.Counts[key] == 0 {
				continue
			}
			if !found {
				first = key
				found = true
			}
			last = key
		}
	}
	if !found {
		return nil, nil
	}

	var keys []YearMonth
	var values []float64
	for key := first; ; key = key.next() {
		keys = append(keys, key)
		values = append(values, a.Means[key])
		if key == last {
			break
		}
	}
	return keys, values
}

func (ym YearMonth) next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// String formats the pair as "2006-01".
func (ym YearMonth) String() string {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
