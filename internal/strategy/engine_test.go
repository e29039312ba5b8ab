package strategy

import (
	"reflect"
	"testing"

	"NickelSentinel/internal/model"
)

// risingCalm trends up well past +2% with sub-500 volatility.
var risingCalm = model.Series{
	{Date: "2026-03-01", Price: 23000},
	{Date: "2026-04-01", Price: 23400},
	{Date: "2026-05-01", Price: 23800},
	{Date: "2026-06-01", Price: 24200},
}

var metrics = &model.Metrics{MAPE: 4.23, RMSE: 1247.56, R2Score: 0.9312, DataPoints: 48}

func TestEvaluate_BuyOnCalmUptrend(t *testing.T) {
	ins := Evaluate(risingCalm, metrics)

	if ins.Trend != model.TrendUp {
		t.Errorf("trend: got %s, want UP", ins.Trend)
	}
	if ins.VolatilityBand == model.VolatilityHigh {
		t.Fatalf("test series should not be high volatility, got σ=%.1f", ins.Volatility)
	}
	if ins.Recommendation != model.RecommendBuy {
		t.Errorf("recommendation: got %s, want BUY", ins.Recommendation)
	}
	if ins.Confidence != 93 {
		t.Errorf("confidence: got %d, want 93 (round(0.9312*100))", ins.Confidence)
	}
	if len(ins.Points) != 4 {
		t.Errorf("expected 4 explanatory points, got %d", len(ins.Points))
	}
}

func TestEvaluate_SellOnDowntrend(t *testing.T) {
	falling := model.Series{
		{Date: "2026-03-01", Price: 24000},
		{Date: "2026-04-01", Price: 23000},
		{Date: "2026-05-01", Price: 22000},
	}
	ins := Evaluate(falling, metrics)
	if ins.Recommendation != model.RecommendSell {
		t.Errorf("recommendation: got %s, want SELL", ins.Recommendation)
	}
}

func TestEvaluate_HoldOnVolatileUptrend(t *testing.T) {
	// Up more than 2% overall, but swinging wildly enough for σ > 1000.
	volatile := model.Series{
		{Date: "2026-03-01", Price: 20000},
		{Date: "2026-04-01", Price: 24000},
		{Date: "2026-05-01", Price: 20500},
		{Date: "2026-06-01", Price: 24500},
	}
	ins := Evaluate(volatile, metrics)
	if ins.Trend != model.TrendUp {
		t.Fatalf("trend: got %s, want UP", ins.Trend)
	}
	if ins.VolatilityBand != model.VolatilityHigh {
		t.Fatalf("expected HIGH volatility band, got %s (σ=%.1f)", ins.VolatilityBand, ins.Volatility)
	}
	if ins.Recommendation != model.RecommendHold {
		t.Errorf("recommendation: got %s, want HOLD", ins.Recommendation)
	}
}

func TestEvaluate_HoldOnFlat(t *testing.T) {
	flat := model.Series{
		{Date: "2026-03-01", Price: 23400},
		{Date: "2026-04-01", Price: 23500},
	}
	ins := Evaluate(flat, metrics)
	if ins.Trend != model.TrendFlat {
		t.Fatalf("trend: got %s, want FLAT", ins.Trend)
	}
	if ins.Recommendation != model.RecommendHold {
		t.Errorf("recommendation: got %s, want HOLD", ins.Recommendation)
	}
}

func TestEvaluate_DefaultConfidenceWithoutMetrics(t *testing.T) {
	ins := Evaluate(risingCalm, nil)
	if ins.Confidence != defaultConfidence {
		t.Errorf("confidence: got %d, want %d", ins.Confidence, defaultConfidence)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	a := Evaluate(risingCalm, metrics)
	b := Evaluate(risingCalm, metrics)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs must produce identical insights")
	}
}
