// Package stats provides the statistics behind the page-view charts.
//
// # Outlier band
//
// Percentiles use linear interpolation between closest ranks, the same
// definition as numpy's default:
//
//	band := stats.NewBand(series.Values, 0.025, 0.975)
//	kept := band.Filter(series)
//
// The band is a plain value: filtering with it again never recomputes the
// bounds.
//
// # Monthly means
//
//	agg := stats.MonthlyMeans(kept)
//	for _, m := range timeseries.Months {
//	    fmt.Println(m, agg.ByMonth(m)) // one mean per observed year, 0 if absent
//	}
//
// # Box plots
//
//	triples := stats.Triples(kept)
//	trend := stats.GroupByYear(triples)
//	seasonality := stats.GroupByMonth(triples) // always Jan..Dec order
//
// # Decomposition
//
// Classical additive decomposition of the monthly means with a yearly period:
//
//	d := stats.Decompose(agg)
//	if d != nil {
//	    fmt.Println(d.PeakMonth(), d.TroughMonth(), d.TrendChange())
//	}
//
// YearlyAutocorrelation reports how strongly each month resembles the same
// month a year earlier.
package stats
