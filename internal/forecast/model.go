package forecast

import "math"

// seasonalPeriod is the weekly cycle the daily posting counts follow.
const seasonalPeriod = 7

// lowerBoundZ is the z-score for the lower edge of an 80% confidence
// interval. Summing lower bounds instead of point estimates is a
// deliberate conservative-estimate policy.
const lowerBoundZ = 1.282

// Model is an additive trend-plus-seasonality fit over a daily count
// series: y(t) = intercept + slope*t + seasonal[t mod 7] + residual.
type Model struct {
	intercept float64
	slope     float64
	seasonal  [seasonalPeriod]float64
	sigma     float64
}

// Fit estimates the model from a daily count series. The trend is an
// ordinary least-squares line over the day index; the seasonal pattern
// is the centered mean of the detrended values per weekday slot, fitted
// only when at least two full periods exist. The residual standard
// deviation feeds the confidence bound.
func Fit(counts []float64) *Model {
	n := len(counts)
	m := &Model{}

	// OLS line over t = 0..n-1.
	var sumT, sumY, sumTY, sumTT float64
	for t, y := range counts {
		ft := float64(t)
		sumT += ft
		sumY += y
		sumTY += ft * y
		sumTT += ft * ft
	}
	fn := float64(n)
	denom := fn*sumTT - sumT*sumT
	if denom != 0 {
		m.slope = (fn*sumTY - sumT*sumY) / denom
		m.intercept = (sumY - m.slope*sumT) / fn
	} else {
		m.intercept = sumY / fn
	}

	detrended := make([]float64, n)
	for t, y := range counts {
		detrended[t] = y - (m.intercept + m.slope*float64(t))
	}

	if n >= 2*seasonalPeriod {
		var pattern [seasonalPeriod]float64
		var slots [seasonalPeriod]int
		for t, v := range detrended {
			pattern[t%seasonalPeriod] += v
			slots[t%seasonalPeriod]++
		}
		var mean float64
		for i := range pattern {
			if slots[i] > 0 {
				pattern[i] /= float64(slots[i])
			}
			mean += pattern[i]
		}
		mean /= seasonalPeriod
		for i := range pattern {
			m.seasonal[i] = pattern[i] - mean
		}
	}

	var ss float64
	for t, v := range detrended {
		r := v - m.seasonal[t%seasonalPeriod]
		ss += r * r
	}
	m.sigma = math.Sqrt(ss / fn)

	return m
}

// Predict returns the point estimate for day index t.
func (m *Model) Predict(t int) float64 {
	return m.intercept + m.slope*float64(t) + m.seasonal[t%seasonalPeriod]
}

// LowerBound returns the lower confidence bound for day index t.
func (m *Model) LowerBound(t int) float64 {
	return m.Predict(t) - lowerBoundZ*m.sigma
}
