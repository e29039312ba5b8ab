package recorder

// RefreshRecord summarizes one applied refresh cycle. The full snapshot is
// ephemeral by design; only this summary is kept for history.
type RefreshRecord struct {
	Cycle          uint64
	SnapshotID     string
	Source         string
	LastHistorical float64
	LastPredicted  float64
	Trend          string
	Volatility     float64
	VolatilityBand string
	Recommendation string
	Confidence     int
	MAPE           float64
	RMSE           float64
	R2Score        float64
	DataPoints     int
}

// RecommendationChange records a flip of the suggested action between two
// consecutive applied cycles.
type RecommendationChange struct {
	SnapshotID string
	From       string
	To         string
	Trend      string
	Confidence int
}

// Recorder persists refresh history for later analysis.
type Recorder interface {
	RecordRefresh(rec *RefreshRecord) error
	RecordRecommendationChange(chg *RecommendationChange) error
	Close() error
}
