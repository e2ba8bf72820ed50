package render

import (
	"strconv"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/sartorproj/pageviews/logger"
	"github.com/sartorproj/pageviews/stats"
	"github.com/sartorproj/pageviews/timeseries"
)

// barWidth is the width of a single month bar in year units.
const barWidth = 0.06

// BarFigure is the written bar chart and the aggregate it shows.
type BarFigure struct {
	Figure
	Years     []int
	Aggregate *stats.MonthlyAggregate
}

// DrawBarPlot draws the monthly mean page views grouped by year, one bar per
// calendar month, and writes bar_plot.png.
func DrawBarPlot(s *timeseries.Series, cfg *Config) (*BarFigure, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	agg := stats.MonthlyMeans(s)
	fig := &BarFigure{
		Figure: Figure{
			Path:   cfg.path(BarPlotFile),
			Width:  cfg.BarSize.Width,
			Height: cfg.BarSize.Height,
		},
		Years:     agg.Years,
		Aggregate: agg,
	}

	groupWidth := barWidth * float64(len(timeseries.Months))
	labels := make([]string, len(agg.Years))
	for i, y := range agg.Years {
		labels[i] = strconv.Itoa(y)
	}

	var series []chart.Series
	var entries []legendEntry
	top := 0.0
	for i, m := range timeseries.Months {
		values := agg.ByMonth(m)
		for _, v := range values {
			top = max(top, v)
		}
		// Bars of a group span [year-groupWidth/2, year+groupWidth/2].
		series = append(series, barSeries{
			Name:   m.String(),
			Color:  paletteColor(i),
			Offset: -groupWidth/2 + barWidth*float64(i),
			Width:  barWidth,
			Values: values,
		})
		entries = append(entries, legendEntry{Label: m.String(), Color: paletteColor(i)})
	}
	if top <= 0 {
		top = 1
	}
	_, ymax := niceAxisBounds(0, top)

	// Year labels are drawn rotated by an element; the axis keeps blank
	// ticks at the same positions for the range and grid.
	lo, hi := -0.5, max(float64(len(labels))-0.5, 0.5)
	ch := chart.Chart{
		Width:  fig.Width,
		Height: fig.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 70},
		},
		XAxis: chart.XAxis{
			Ticks: categoryTicks(make([]string, len(labels)), lo, hi),
		},
		YAxis: chart.YAxis{
			Name:           "Average Page Views",
			Range:          &chart.ContinuousRange{Min: 0, Max: ymax},
			ValueFormatter: intValueFormatter,
		},
		Series:   series,
		Elements: []chart.Renderable{
			rotatedTickLabels(labels, lo, hi, "Years"),
			titledLegend("Months", entries),
		},
	}

	data, err := renderPNG(ch)
	if err != nil {
		return nil, err
	}
	if err := writeFile(fig.Path, data); err != nil {
		return nil, err
	}
	logger.Info("bar plot written", "path", fig.Path, "years", len(fig.Years))
	return fig, nil
}
