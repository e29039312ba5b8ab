// Package strategy turns the prediction series and model-quality metrics
// into a dashboard insight. It is a fixed rule table, not a model: no
// learning, no state, no memory of past recommendations.
package strategy

import (
	"math"

	"NickelSentinel/internal/calculator"
	"NickelSentinel/internal/model"
)

// defaultConfidence is used when no quality metrics are available.
const defaultConfidence = 85

// Evaluate derives the insight for one refresh cycle. It is pure: the same
// inputs always produce the same insight.
func Evaluate(predictions model.Series, metrics *model.Metrics) *model.Insight {
	trend := calculator.ClassifyTrend(predictions)
	volatility := calculator.Volatility(predictions)
	band := calculator.ClassifyVolatility(volatility)

	confidence := defaultConfidence
	if metrics != nil && metrics.R2Score > 0 {
		confidence = int(math.Round(metrics.R2Score * 100))
	}

	recommendation := mapRecommendation(trend, band)

	return &model.Insight{
		Trend:          trend,
		Volatility:     volatility,
		VolatilityBand: band,
		Recommendation: recommendation,
		Confidence:     confidence,
		Points:         buildPoints(trend, band, recommendation, confidence),
	}
}

// mapRecommendation applies the action rule table: buy into an up-trend
// unless volatility is high, sell a down-trend, hold everything else.
func mapRecommendation(trend model.Trend, band model.VolatilityBand) model.Recommendation {
	switch {
	case trend == model.TrendUp && band != model.VolatilityHigh:
		return model.RecommendBuy
	case trend == model.TrendDown:
		return model.RecommendSell
	default:
		return model.RecommendHold
	}
}
