package stats

import (
	"sort"
	"strconv"
	"time"

	"github.com/sartorproj/pageviews/timeseries"
)

// WhiskerCoef is the IQR multiple beyond which points are drawn as fliers.
const WhiskerCoef = 1.5

// BoxSummary holds the components of a box-and-whisker plot.
type BoxSummary struct {
	N          int
	Q1, Median float64
	Q3         float64
	// LowerWhisker and UpperWhisker are the most extreme observations within
	// WhiskerCoef*IQR of the box.
	LowerWhisker float64
	UpperWhisker float64
	Fliers       []float64
}

// Box computes the box plot summary of xs. It returns the zero value for
// empty input.
func Box(xs []float64) BoxSummary {
	if len(xs) == 0 {
		return BoxSummary{}
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	b := BoxSummary{
		N:      len(sorted),
		Q1:     percentileSorted(sorted, 0.25),
		Median: percentileSorted(sorted, 0.5),
		Q3:     percentileSorted(sorted, 0.75),
	}
	iqr := b.Q3 - b.Q1
	lo := b.Q1 - WhiskerCoef*iqr
	hi := b.Q3 + WhiskerCoef*iqr

	b.LowerWhisker, b.UpperWhisker = b.Q1, b.Q3
	for _, v := range sorted {
		if v >= lo {
			b.LowerWhisker = min(v, b.Q1)
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= hi {
			b.UpperWhisker = max(sorted[i], b.Q3)
			break
		}
	}
	for _, v := range sorted {
		if v < lo || v > hi {
			b.Fliers = append(b.Fliers, v)
		}
	}
	return b
}

// YearMonthValue is the per-record view used for box plot grouping.
type YearMonthValue struct {
	Year  int
	Month time.Month
	Value float64
}

// Triples derives (year, month, value) for every record of s.
func Triples(s *timeseries.Series) []YearMonthValue {
	out := make([]YearMonthValue, s.Len())
	for i, ts := range s.Timestamps {
		out[i] = YearMonthValue{Year: ts.Year(), Month: ts.Month(), Value: s.Values[i]}
	}
	return out
}

// Group is a labelled set of values summarised as one box.
type Group struct {
	Label  string
	Values []float64
	Box    BoxSummary
}

// GroupByYear returns one group per distinct year, ascending.
func GroupByYear(triples []YearMonthValue) []Group {
	byYear := make(map[int][]float64)
	var years []int
	for _, t := range triples {
		if _, ok := byYear[t.Year]; !ok {
			years = append(years, t.Year)
		}
		byYear[t.Year] = append(byYear[t.Year], t.Value)
	}
	sort.Ints(years)

	groups := make([]Group, 0, len(years))
	for _, y := range years {
		groups = append(groups, newGroup(strconv.Itoa(y), byYear[y]))
	}
	return groups
}

// GroupByMonth returns one group per month present, always in January to
// December order.
func GroupByMonth(triples []YearMonthValue) []Group {
	byMonth := make(map[time.Month][]float64)
	for _, t := range triples {
		byMonth[t.Month] = append(byMonth[t.Month], t.Value)
	}

	var groups []Group
	for _, m := range timeseries.Months {
		if values, ok := byMonth[m]; ok {
			groups = append(groups, newGroup(timeseries.MonthAbbrev(m), values))
		}
	}
	return groups
}

func newGroup(label string, values []float64) Group {
	return Group{Label: label, Values: values, Box: Box(values)}
}
