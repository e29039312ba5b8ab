package notifier

import (
	"fmt"
	"strings"
	"time"

	"NickelSentinel/internal/model"
)

// FormatInsightReport formats one refresh cycle's insight into a Telegram
// message.
func FormatInsightReport(snap *model.Snapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>NickelSentinel Insight</b> | %s\n\n", time.Now().Format("2006-01-02")))

	if last, ok := snap.Historical.Last(); ok {
		b.WriteString(fmt.Sprintf("Last historical price: $%.0f (%s)\n", last.Price, last.Date))
	}
	if last, ok := snap.Predictions.Last(); ok {
		b.WriteString(fmt.Sprintf("Predicted price by %s: $%.0f\n", last.Date, last.Price))
	}
	b.WriteString(fmt.Sprintf("Data source: %s\n\n", snap.Source))

	ins := snap.Insight
	if ins != nil {
		b.WriteString(fmt.Sprintf("Trend: %s | Volatility: %s (σ=%.0f)\n", ins.Trend, ins.VolatilityBand, ins.Volatility))
		b.WriteString(fmt.Sprintf("💡 <b>Recommendation: %s</b> (confidence %d%%)\n\n", ins.Recommendation, ins.Confidence))
		for _, p := range ins.Points {
			b.WriteString(fmt.Sprintf("• %s\n", p))
		}
	}

	return b.String()
}

// FormatMetrics formats the model-quality metrics for display.
func FormatMetrics(m *model.Metrics) string {
	if m == nil {
		return "No model metrics available yet."
	}
	var b strings.Builder
	b.WriteString("📐 <b>Model quality</b>\n\n")
	b.WriteString(fmt.Sprintf("MAPE: %.2f%%\n", m.MAPE))
	b.WriteString(fmt.Sprintf("RMSE: %.2f\n", m.RMSE))
	b.WriteString(fmt.Sprintf("R²: %.4f\n", m.R2Score))
	b.WriteString(fmt.Sprintf("Data points: %d\n", m.DataPoints))
	return b.String()
}

// FormatRecommendationChange formats an action flip alert.
func FormatRecommendationChange(prev, next model.Recommendation, snap *model.Snapshot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔔 <b>Recommendation changed: %s → %s</b>\n\n", prev, next))
	if ins := snap.Insight; ins != nil {
		b.WriteString(fmt.Sprintf("Trend: %s | Volatility: %s | Confidence: %d%%\n", ins.Trend, ins.VolatilityBand, ins.Confidence))
	}
	return b.String()
}
