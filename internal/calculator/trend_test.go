package calculator

import (
	"testing"

	"NickelSentinel/internal/model"
)

func TestClassifyTrend_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		first float64
		last  float64
		want  model.Trend
	}{
		{"just over +2%", 100, 102.01, model.TrendUp},
		{"exactly +2% is flat", 100, 102.0, model.TrendFlat},
		{"just under -2%", 100, 97.99, model.TrendDown},
		{"exactly -2% is flat", 100, 98.0, model.TrendFlat},
		{"no movement", 100, 100, model.TrendFlat},
		{"strong rise", 23400, 26000, model.TrendUp},
	}
	for _, tt := range tests {
		series := model.Series{
			{Date: "2026-03-01", Price: tt.first},
			{Date: "2027-02-01", Price: tt.last},
		}
		if got := ClassifyTrend(series); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestClassifyTrend_TooFewPoints(t *testing.T) {
	if got := ClassifyTrend(nil); got != model.TrendFlat {
		t.Errorf("empty series: got %s, want FLAT", got)
	}
	single := model.Series{{Date: "2026-03-01", Price: 100}}
	if got := ClassifyTrend(single); got != model.TrendFlat {
		t.Errorf("single point: got %s, want FLAT", got)
	}
}

func TestClassifyTrend_ZeroFirstPrice(t *testing.T) {
	series := model.Series{
		{Date: "2026-03-01", Price: 0},
		{Date: "2026-04-01", Price: 100},
	}
	if got := ClassifyTrend(series); got != model.TrendFlat {
		t.Errorf("zero first price: got %s, want FLAT", got)
	}
}
