package main

import (
	"context"
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/urfave/cli/v3"

	"github.com/sartorproj/pageviews/stats"
)

const (
	previewHeight = 12
	previewWidth  = 90
)

func previewAction(_ context.Context, cmd *cli.Command) error {
	_, ds, err := loadDataset(cmd)
	if err != nil {
		return err
	}
	return writePreview(cmd.Root().Writer, stats.MonthlyMeans(ds.Filtered()))
}

// writePreview plots the chronological monthly means as an ASCII chart.
func writePreview(w io.Writer, agg *stats.MonthlyAggregate) error {
	months, values := agg.Chronological()
	if len(values) == 0 {
		_, err := fmt.Fprintln(w, "No data available")
		return err
	}

	caption := fmt.Sprintf("Monthly mean page views %s to %s", months[0], months[len(months)-1])
	graph := asciigraph.Plot(values,
		asciigraph.Height(previewHeight),
		asciigraph.Width(previewWidth),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	)
	_, err := fmt.Fprintln(w, graph)
	return err
}
