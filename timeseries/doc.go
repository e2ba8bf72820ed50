// Package timeseries provides the date-indexed series used by the chart
// renderers, together with its CSV loader.
//
// # Loading from CSV
//
// The loader expects a header row with a date column and a value column:
//
//	date,value
//	2016-05-09,1201
//	2016-05-10,2329
//
// Load it with the default options:
//
//	series, err := timeseries.LoadCSV("fcc-forum-pageviews.csv", nil)
//	if timeseries.ErrParse.Is(err) {
//	    // bad date, bad value or unreadable file
//	}
//
// Rows are returned sorted ascending by date.
//
// # Calendar grouping
//
// Month-wise views iterate [Months], which fixes the January to December
// order independently of the data:
//
//	for _, m := range timeseries.Months {
//	    fmt.Println(timeseries.MonthAbbrev(m))
//	}
//
// # Subsets
//
//	kept := series.Where(func(v float64) bool { return v >= 1000 })
//	years := kept.Years()
package timeseries
