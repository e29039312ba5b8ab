package calculator

import (
	"math"

	"NickelSentinel/internal/model"
)

// Volatility thresholds, in the same currency unit as price.
const (
	volatilityHighThreshold   = 1000.0
	volatilityMediumThreshold = 500.0
)

// Volatility returns the population standard deviation of the series'
// prices (no Bessel correction). An empty series has zero volatility.
func Volatility(series model.Series) float64 {
	if len(series) == 0 {
		return 0
	}
	prices := series.Prices()

	mean := 0.0
	for _, p := range prices {
		mean += p
	}
	mean /= float64(len(prices))

	sumSq := 0.0
	for _, p := range prices {
		diff := p - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(prices)))
}

// ClassifyVolatility maps a standard deviation to a coarse band.
func ClassifyVolatility(value float64) model.VolatilityBand {
	switch {
	case value > volatilityHighThreshold:
		return model.VolatilityHigh
	case value > volatilityMediumThreshold:
		return model.VolatilityMedium
	default:
		return model.VolatilityLow
	}
}
