package stats

import (
	"math"
	"time"
)

// Decomposition is an additive split of the monthly means into
// trend + seasonal + residual.
type Decomposition struct {
	Months   []YearMonth
	Observed []float64
	Trend    []float64 // NaN where the centered window does not fit
	Seasonal []float64
	Residual []float64
	// SeasonalIndex is the seasonal effect per calendar month, indexed by
	// time.Month-1. It sums to zero.
	SeasonalIndex [12]float64
}

// Decompose performs a classical additive decomposition of the monthly means
// with a yearly period. Returns nil when fewer than two full years of months
// are available.
func Decompose(agg *MonthlyAggregate) *Decomposition {
	const period = 12

	months, observed := agg.Chronological()
	n := len(observed)
	if n < 2*period {
		return nil
	}

	trend := centeredMovingAverage(observed, period)

	// Average the detrended values per calendar month.
	var sums, counts [12]float64
	for i, ym := range months {
		if math.IsNaN(trend[i]) {
			continue
		}
		sums[ym.Month-1] += observed[i] - trend[i]
		counts[ym.Month-1]++
	}
	var index [12]float64
	mean := 0.0
	for m := range index {
		if counts[m] > 0 {
			index[m] = sums[m] / counts[m]
		}
		mean += index[m]
	}
	mean /= period
	for m := range index {
		index[m] -= mean
	}

	seasonal := make([]float64, n)
	residual := make([]float64, n)
	for i, ym := range months {
		seasonal[i] = index[ym.Month-1]
		if math.IsNaN(trend[i]) {
			residual[i] = math.NaN()
		} else {
			residual[i] = observed[i] - trend[i] - seasonal[i]
		}
	}

	return &Decomposition{
		Months:        months,
		Observed:      observed,
		Trend:         trend,
		Seasonal:      seasonal,
		Residual:      residual,
		SeasonalIndex: index,
	}
}

// centeredMovingAverage is the 2xperiod moving average for even periods and
// the plain centered average for odd ones.
func centeredMovingAverage(values []float64, period int) []float64 {
	n := len(values)
	trend := make([]float64, n)
	for i := range trend {
		trend[i] = math.NaN()
	}

	half := period / 2
	for i := half; i < n-half; i++ {
		sum := 0.0
		if period%2 == 0 {
			sum += values[i-half] * 0.5
			sum += values[i+half] * 0.5
			for j := i - half + 1; j < i+half; j++ {
				sum += values[j]
			}
		} else {
			for j := i - half; j <= i+half; j++ {
				sum += values[j]
			}
		}
		trend[i] = sum / float64(period)
	}
	return trend
}

// PeakMonth returns the calendar month with the largest seasonal effect.
func (d *Decomposition) PeakMonth() time.Month {
	best := 0
	for m := 1; m < 12; m++ {
		if d.SeasonalIndex[m] > d.SeasonalIndex[best] {
			best = m
		}
	}
	return time.Month(best + 1)
}

// TroughMonth returns the calendar month with the smallest seasonal effect.
func (d *Decomposition) TroughMonth() time.Month {
	worst := 0
	for m := 1; m < 12; m++ {
		if d.SeasonalIndex[m] < d.SeasonalIndex[worst] {
			worst = m
		}
	}
	return time.Month(worst + 1)
}

// TrendChange returns the difference between the last and first defined
// trend values.
func (d *Decomposition) TrendChange() float64 {
	first, last := math.NaN(), math.NaN()
	for _, v := range d.Trend {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(first) {
			first = v
		}
		last = v
	}
	return last - first
}
