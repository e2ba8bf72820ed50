package render

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sartorproj/pageviews/logger"
	"github.com/sartorproj/pageviews/stats"
	"github.com/sartorproj/pageviews/timeseries"
)

// Box plot titles.
const (
	YearBoxTitle  = "Year-wise Box Plot (Trend)"
	MonthBoxTitle = "Month-wise Box Plot (Seasonality)"
)

// The box plot y axis is fixed regardless of the data.
const (
	boxAxisMax  = 200000
	boxAxisStep = 20000
	boxWidth    = 0.8
)

// BoxFigure is the written box plot and the groups of both panels.
type BoxFigure struct {
	Figure
	YearGroups  []stats.Group
	MonthGroups []stats.Group
}

// DrawBoxPlot draws the year-wise and month-wise box plots side by side and
// writes box_plot.png.
func DrawBoxPlot(s *timeseries.Series, cfg *Config) (*BoxFigure, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	triples := stats.Triples(s)
	fig := &BoxFigure{
		Figure: Figure{
			Path:   cfg.path(BoxPlotFile),
			Title:  YearBoxTitle + " / " + MonthBoxTitle,
			Width:  cfg.BoxSize.Width,
			Height: cfg.BoxSize.Height,
		},
		YearGroups:  stats.GroupByYear(triples),
		MonthGroups: stats.GroupByMonth(triples),
	}

	panel := Size{Width: fig.Width / 2, Height: fig.Height}
	left, err := renderImage(boxChart(YearBoxTitle, "Year", fig.YearGroups, panel))
	if err != nil {
		return nil, err
	}
	right, err := renderImage(boxChart(MonthBoxTitle, "Month", fig.MonthGroups, panel))
	if err != nil {
		return nil, err
	}

	if err := encodeFile(fig.Path, hstack(left, right)); err != nil {
		return nil, err
	}
	logger.Info("box plot written", "path", fig.Path,
		"years", len(fig.YearGroups), "months", len(fig.MonthGroups))
	return fig, nil
}

func boxChart(title, xName string, groups []stats.Group, size Size) chart.Chart {
	labels := make([]string, len(groups))
	colors := make([]drawing.Color, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
		colors[i] = paletteColor(i)
	}

	return chart.Chart{
		Title:  title,
		Width:  size.Width,
		Height: size.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  xName,
			Ticks: categoryTicks(labels, -0.5, max(float64(len(labels))-0.5, 0.5)),
		},
		YAxis: chart.YAxis{
			Name:  "Page Views",
			Ticks: fixedTicks(0, boxAxisMax, boxAxisStep),
		},
		Series: []chart.Series{boxSeries{
			Groups: groups,
			Colors: colors,
			Width:  boxWidth,
		}},
	}
}

func fixedTicks(from, to, step int) []chart.Tick {
	var ticks []chart.Tick
	for v := from; v <= to; v += step {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: intValueFormatter(float64(v))})
	}
	return ticks
}
