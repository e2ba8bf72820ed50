package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/sartorproj/pageviews/dataset"
	"github.com/sartorproj/pageviews/stats"
	"github.com/sartorproj/pageviews/timeseries"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
	labelStyle  = lipgloss.NewStyle().Width(8)
)

func summaryAction(_ context.Context, cmd *cli.Command) error {
	_, ds, err := loadDataset(cmd)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.Root().Writer, summarize(ds))
	return err
}

// summarize renders the per-year box statistics of the filtered series and
// the seasonal highlights of its monthly means.
func summarize(ds *dataset.Dataset) string {
	var b strings.Builder
	filtered := ds.Filtered()
	band := ds.Band()

	b.WriteString(titleStyle.Render("Page views") + "\n")
	fmt.Fprintf(&b, "records: %d kept, %d dropped outside [%.0f, %.0f]\n\n",
		filtered.Len(), ds.Dropped(), band.Low, band.High)

	if filtered.Len() == 0 {
		b.WriteString("No data available\n")
		return b.String()
	}

	row := func(label string, cells ...string) string {
		var r strings.Builder
		r.WriteString(labelStyle.Render(label))
		for _, c := range cells {
			r.WriteString(cellStyle.Render(c))
		}
		return r.String()
	}

	b.WriteString(headerStyle.Render(row("Year", "N", "Mean", "Q1", "Median", "Q3")) + "\n")
	for _, g := range stats.GroupByYear(stats.Triples(filtered)) {
		b.WriteString(row(g.Label,
			fmt.Sprint(g.Box.N),
			fmt.Sprintf("%.0f", mean(g.Values)),
			fmt.Sprintf("%.0f", g.Box.Q1),
			fmt.Sprintf("%.0f", g.Box.Median),
			fmt.Sprintf("%.0f", g.Box.Q3),
		) + "\n")
	}

	agg := stats.MonthlyMeans(filtered)
	d := stats.Decompose(agg)
	b.WriteString("\n")
	if d == nil {
		b.WriteString("Seasonality: fewer than 24 months of data\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Seasonal peak:   %s (%+.0f)\n",
		timeseries.MonthAbbrev(d.PeakMonth()), d.SeasonalIndex[d.PeakMonth()-1])
	fmt.Fprintf(&b, "Seasonal trough: %s (%+.0f)\n",
		timeseries.MonthAbbrev(d.TroughMonth()), d.SeasonalIndex[d.TroughMonth()-1])
	fmt.Fprintf(&b, "Trend change:    %+.0f\n", d.TrendChange())
	if r := stats.YearlyAutocorrelation(agg); !math.IsNaN(r) {
		fmt.Fprintf(&b, "Lag-12 autocorr: %.2f\n", r)
	}
	return b.String()
}

func mean(xs []float64) float64 {
	s := timeseries.Series{Values: xs}
	return s.Mean()
}
