// Command pageviews renders trend and seasonality charts for a daily
// page-view CSV.
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/sartorproj/pageviews/logger"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		logger.Error("pageviews failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:   "pageviews",
		Usage:  "Draw line, bar and box charts of daily page views",
		Writer: os.Stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "csv",
				Usage: "path to the date,value CSV (overrides PAGEVIEWS_CSV)",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "directory the PNG files are written to",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Commands: []*cli.Command{
			chartCommand("line", "Draw line_plot.png", drawLine),
			chartCommand("bar", "Draw bar_plot.png", drawBar),
			chartCommand("box", "Draw box_plot.png", drawBox),
			chartCommand("all", "Draw all three charts", drawAll),
			{
				Name:   "preview",
				Usage:  "Plot the monthly means in the terminal",
				Action: previewAction,
			},
			{
				Name:   "summary",
				Usage:  "Print per-year statistics and seasonal highlights",
				Action: summaryAction,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCharts(ctx, cmd, drawAll)
		},
	}
}

func chartCommand(name, usage string, draw drawFunc) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCharts(ctx, cmd, draw)
		},
	}
}
