package strategy

import (
	"fmt"

	"NickelSentinel/internal/model"
)

var trendLabels = map[model.Trend]string{
	model.TrendUp:   "rise",
	model.TrendDown: "fall",
	model.TrendFlat: "stay flat",
}

var bandLabels = map[model.VolatilityBand]string{
	model.VolatilityLow:    "low",
	model.VolatilityMedium: "medium",
	model.VolatilityHigh:   "high",
}

var actionLabels = map[model.Recommendation]string{
	model.RecommendBuy:  "accumulate on the current trend",
	model.RecommendSell: "reduce exposure",
	model.RecommendHold: "wait for market confirmation",
}

// buildPoints renders the four explanatory lines shown on the insight card.
func buildPoints(trend model.Trend, band model.VolatilityBand, rec model.Recommendation, confidence int) []string {
	return []string{
		fmt.Sprintf("Prices are projected to %s over the next 12 months.", trendLabels[trend]),
		fmt.Sprintf("Market volatility is currently %s.", bandLabels[band]),
		fmt.Sprintf("The model reports %d%% confidence based on historical data.", confidence),
		fmt.Sprintf("Suggested course of action: %s.", actionLabels[rec]),
	}
}
