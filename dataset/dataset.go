// Package dataset holds the loaded and outlier-filtered page-view series shared
// by the chart renderers.
package dataset

import (
	"gopkg.in/src-d/go-errors.v1"

	"github.com/sartorproj/pageviews/stats"
	"github.com/sartorproj/pageviews/timeseries"
)

// Default quantiles of the outlier band.
const (
	DefaultLowerQuantile = 0.025
	DefaultUpperQuantile = 0.975
)

// ErrInvalidBand is returned when the quantiles do not satisfy
// 0 <= lower < upper <= 1.
var ErrInvalidBand = errors.NewKind("invalid quantile band [%v, %v]")

// Options controls loading and filtering.
type Options struct {
	CSV           *timeseries.CSVOptions
	LowerQuantile float64
	UpperQuantile float64
}

// DefaultOptions returns the options used for the page-view CSV.
func DefaultOptions() *Options {
	return &Options{
		CSV:           timeseries.DefaultCSVOptions(),
		LowerQuantile: DefaultLowerQuantile,
		UpperQuantile: DefaultUpperQuantile,
	}
}

// Dataset is the raw series, the percentile band computed once over it, and
// the records that fall inside the band. It is not modified after New.
type Dataset struct {
	raw      *timeseries.Series
	filtered *timeseries.Series
	band     stats.Band
}

// Load reads the CSV at path and builds the filtered dataset.
func Load(path string, opts *Options) (*Dataset, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	raw, err := timeseries.LoadCSV(path, opts.CSV)
	if err != nil {
		return nil, err
	}
	return New(raw, opts.LowerQuantile, opts.UpperQuantile)
}

// New filters raw to the [lower, upper] percentile band. raw is copied and
// sorted by date.
func New(raw *timeseries.Series, lower, upper float64) (*Dataset, error) {
	if lower < 0 || upper > 1 || lower >= upper {
		return nil, ErrInvalidBand.New(lower, upper)
	}
	sorted := raw.Sorted()
	band := stats.NewBand(sorted.Values, lower, upper)
	return &Dataset{
		raw:      sorted,
		filtered: band.Filter(sorted),
		band:     band,
	}, nil
}

// Raw returns a copy of the unfiltered series.
func (d *Dataset) Raw() *timeseries.Series {
	return d.raw.Copy()
}

// Filtered returns a copy of the series restricted to the band.
func (d *Dataset) Filtered() *timeseries.Series {
	return d.filtered.Copy()
}

// Band returns the outlier band computed over the raw series.
func (d *Dataset) Band() stats.Band {
	return d.band
}

// Dropped returns how many raw records fell outside the band.
func (d *Dataset) Dropped() int {
	return d.raw.Len() - d.filtered.Len()
}
