package stats

import "math"

// ACF returns the sample autocorrelation of values for lags 0 to maxLag.
// It returns nil when the values are constant or fewer than two.
func ACF(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf
}

// YearlyAutocorrelation is the lag-12 autocorrelation of the chronological
// monthly means, NaN when it is undefined.
func YearlyAutocorrelation(agg *MonthlyAggregate) float64 {
	_, values := agg.Chronological()
	acf := ACF(values, 12)
	if len(acf) <= 12 {
		return math.NaN()
	}
	return acf[12]
}
