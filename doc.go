// Package pageviews draws trend and seasonality charts for a daily page-view
// series.
//
// A CSV of date,value rows is loaded once, values outside the inclusive
// 2.5th to 97.5th percentile band are dropped, and the filtered series is
// rendered as three PNG files:
//
//   - line_plot.png: daily page views over time
//   - bar_plot.png: monthly mean page views grouped by year
//   - box_plot.png: year-wise and month-wise box plots side by side
//
// # Quick Start
//
//	ds, err := dataset.Load("fcc-forum-pageviews.csv", dataset.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg := render.DefaultConfig()
//	render.DrawLinePlot(ds.Filtered(), cfg)
//	render.DrawBarPlot(ds.Filtered(), cfg)
//	render.DrawBoxPlot(ds.Filtered(), cfg)
//
// The pageviews command wraps the same calls:
//
//	pageviews --csv fcc-forum-pageviews.csv all
//	pageviews summary
//
// # Packages
//
// The module is organized into the following packages:
//
//   - timeseries: Series type and CSV loading
//   - stats: Percentile band, monthly means, box statistics and decomposition
//   - dataset: Loaded and filtered series computed once
//   - render: PNG chart renderers
//   - config: Defaults with .env and environment overrides
//   - logger: Structured logging
//   - cmd/pageviews: Command line entry point
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
//   - Tukey, J. W. (1977). Exploratory Data Analysis
package pageviews
