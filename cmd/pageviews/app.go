package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/sartorproj/pageviews/config"
	"github.com/sartorproj/pageviews/dataset"
	"github.com/sartorproj/pageviews/logger"
	"github.com/sartorproj/pageviews/render"
	"github.com/sartorproj/pageviews/timeseries"
)

type drawFunc func(s *timeseries.Series, cfg *render.Config) error

func drawLine(s *timeseries.Series, cfg *render.Config) error {
	_, err := render.DrawLinePlot(s, cfg)
	return err
}

func drawBar(s *timeseries.Series, cfg *render.Config) error {
	_, err := render.DrawBarPlot(s, cfg)
	return err
}

func drawBox(s *timeseries.Series, cfg *render.Config) error {
	_, err := render.DrawBoxPlot(s, cfg)
	return err
}

func drawAll(s *timeseries.Series, cfg *render.Config) error {
	for _, draw := range []drawFunc{drawLine, drawBar, drawBox} {
		if err := draw(s, cfg); err != nil {
			return err
		}
	}
	return nil
}

// settings merges the environment configuration with command line flags.
func settings(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if v := cmd.String("csv"); v != "" {
		cfg.CSVPath = v
	}
	if v := cmd.String("out"); v != "" {
		cfg.OutputDir = v
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return cfg, nil
}

func loadDataset(cmd *cli.Command) (*config.Config, *dataset.Dataset, error) {
	cfg, err := settings(cmd)
	if err != nil {
		return nil, nil, err
	}

	opts := dataset.DefaultOptions()
	opts.LowerQuantile = cfg.LowerQuantile
	opts.UpperQuantile = cfg.UpperQuantile

	ds, err := dataset.Load(cfg.CSVPath, opts)
	if err != nil {
		return nil, nil, err
	}
	band := ds.Band()
	logger.Info("dataset loaded",
		"path", cfg.CSVPath,
		"records", ds.Raw().Len(),
		"dropped", ds.Dropped(),
		"low", band.Low,
		"high", band.High,
	)
	return cfg, ds, nil
}

func runCharts(ctx context.Context, cmd *cli.Command, draw drawFunc) error {
	cfg, ds, err := loadDataset(cmd)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	out := render.DefaultConfig()
	out.OutputDir = cfg.OutputDir
	return draw(ds.Filtered(), out)
}
