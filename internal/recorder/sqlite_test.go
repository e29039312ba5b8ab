package recorder

import (
	"path/filepath"
	"testing"
)

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	r, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	rec := &RefreshRecord{
		Cycle:          1,
		SnapshotID:     "snap-1",
		Source:         "synthetic",
		LastHistorical: 22500,
		LastPredicted:  24800,
		Trend:          "UP",
		Volatility:     430.5,
		VolatilityBand: "LOW",
		Recommendation: "BUY",
		Confidence:     93,
		MAPE:           4.23,
		RMSE:           1247.56,
		R2Score:        0.9312,
		DataPoints:     48,
	}
	if err := r.RecordRefresh(rec); err != nil {
		t.Fatalf("record refresh: %v", err)
	}
	if err := r.RecordRefresh(rec); err != nil {
		t.Fatalf("second record refresh: %v", err)
	}

	if err := r.RecordRecommendationChange(&RecommendationChange{
		SnapshotID: "snap-2",
		From:       "BUY",
		To:         "HOLD",
		Trend:      "FLAT",
		Confidence: 85,
	}); err != nil {
		t.Fatalf("record recommendation change: %v", err)
	}
}

func TestSQLiteRecorder_ReopenExistingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	r, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Migrations are idempotent; reopening must succeed.
	r2, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("reopen recorder: %v", err)
	}
	r2.Close()
}
