package calculator

import "NickelSentinel/internal/model"

// trendThresholdPercent is the minimum first-to-last move, in percent,
// before a series counts as trending. The boundary is exclusive: exactly
// +2% is still flat.
const trendThresholdPercent = 2.0

// ClassifyTrend compares the first and last price of the series. Series
// with fewer than two points (or a zero first price, which would make the
// percentage undefined) classify as flat by definition, not as an error.
func ClassifyTrend(series model.Series) model.Trend {
	if len(series) < 2 {
		return model.TrendFlat
	}
	first := series[0].Price
	last := series[len(series)-1].Price
	if first == 0 {
		return model.TrendFlat
	}

	diffPercent := (last - first) / first * 100
	switch {
	case diffPercent > trendThresholdPercent:
		return model.TrendUp
	case diffPercent < -trendThresholdPercent:
		return model.TrendDown
	default:
		return model.TrendFlat
	}
}
