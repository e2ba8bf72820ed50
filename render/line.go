package render

import (
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/sartorproj/pageviews/logger"
	"github.com/sartorproj/pageviews/timeseries"
)

// LinePlotTitle is the title of the line chart.
const LinePlotTitle = "Daily freeCodeCamp Forum Page Views 5/2016-12/2019"

// LineFigure is the written line chart and the points it shows.
type LineFigure struct {
	Figure
	Dates  []time.Time
	Values []float64
}

// DrawLinePlot draws page views against date and writes line_plot.png.
func DrawLinePlot(s *timeseries.Series, cfg *Config) (*LineFigure, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	fig := &LineFigure{
		Figure: Figure{
			Path:   cfg.path(LinePlotFile),
			Title:  LinePlotTitle,
			Width:  cfg.LineSize.Width,
			Height: cfg.LineSize.Height,
		},
		Dates:  append([]time.Time(nil), s.Timestamps...),
		Values: append([]float64(nil), s.Values...),
	}

	ch := chart.Chart{
		Title:  LinePlotTitle,
		Width:  fig.Width,
		Height: fig.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			Name:           "Page Views",
			ValueFormatter: intValueFormatter,
		},
	}

	if s.Len() == 0 {
		ch.XAxis.Ticks = categoryTicks(nil, 0, 1)
		ch.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
		ch.Series = []chart.Series{emptySeries{}}
	} else {
		first, last := s.Span()
		if !last.After(first) {
			first, last = first.AddDate(0, 0, -1), last.AddDate(0, 0, 1)
		}
		ymin, ymax := niceAxisBounds(s.Min(), s.Max())
		ch.XAxis.Range = &chart.ContinuousRange{
			Min: chart.TimeToFloat64(first),
			Max: chart.TimeToFloat64(last),
		}
		ch.YAxis.Range = &chart.ContinuousRange{Min: ymin, Max: ymax}

		style := chart.Style{StrokeColor: firebrick, StrokeWidth: 1.5}
		if s.Len() == 1 {
			style.DotColor = firebrick
			style.DotWidth = 4
		}
		ch.Series = []chart.Series{chart.TimeSeries{
			Name:    "Page Views",
			Style:   style,
			XValues: fig.Dates,
			YValues: fig.Values,
		}}
	}

	data, err := renderPNG(ch)
	if err != nil {
		return nil, err
	}
	if err := writeFile(fig.Path, data); err != nil {
		return nil, err
	}
	logger.Info("line plot written", "path", fig.Path, "points", len(fig.Values))
	return fig, nil
}
