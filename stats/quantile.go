package stats

import (
	"math"
	"sort"

	"github.com/sartorproj/pageviews/timeseries"
)

// Percentile returns the p-th quantile (0 <= p <= 1) of xs using linear
// interpolation between closest ranks (Hyndman-Fan type 7). xs is not
// modified. Returns NaN for empty input.
func Percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p)
}

func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo+1 >= n {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Band is an inclusive value range used to drop outliers.
type Band struct {
	Low  float64
	High float64
}

// NewBand computes the [lower, upper] percentile band over values.
// An empty input gives a band that contains nothing.
func NewBand(values []float64, lower, upper float64) Band {
	if len(values) == 0 {
		return Band{Low: math.NaN(), High: math.NaN()}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return Band{
		Low:  percentileSorted(sorted, lower),
		High: percentileSorted(sorted, upper),
	}
}

// Contains reports whether Low <= v <= High.
func (b Band) Contains(v float64) bool {
	return b.Low <= v && v <= b.High
}

// Filter returns the records of s whose value lies inside the band, in their
// original order. The band is not recomputed, so filtering twice with the
// same band yields the same series.
func (b Band) Filter(s *timeseries.Series) *timeseries.Series {
	return s.Where(b.Contains)
}
