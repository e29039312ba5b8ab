package model

// Trend classifies net first-to-last price movement.
type Trend string

const (
	TrendUp   Trend = "UP"
	TrendDown Trend = "DOWN"
	TrendFlat Trend = "FLAT"
)

// Direction indicates a single period's price movement.
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
	DirectionFlat Direction = "FLAT"
)

// VolatilityBand is a coarse classification of price standard deviation.
type VolatilityBand string

const (
	VolatilityLow    VolatilityBand = "LOW"
	VolatilityMedium VolatilityBand = "MEDIUM"
	VolatilityHigh   VolatilityBand = "HIGH"
)

// Recommendation is the action suggested by the insight rule table.
type Recommendation string

const (
	RecommendBuy  Recommendation = "BUY"
	RecommendSell Recommendation = "SELL"
	RecommendHold Recommendation = "HOLD"
)

// ChangeRecord pairs a prediction point with its delta from the prior point
// (or the external anchor price for the first point).
type ChangeRecord struct {
	Date          string    `json:"month"`
	PreviousPrice float64   `json:"previousPrice"`
	Price         float64   `json:"currentPrice"`
	ChangeUSD     float64   `json:"changeUSD"`
	ChangePercent float64   `json:"changePercent"`
	Direction     Direction `json:"direction"`
}

// Metrics holds externally supplied model-quality indicators. They are
// opaque to the pipeline and only drive confidence scoring and UI badges.
type Metrics struct {
	MAPE       float64 `json:"mape"`
	RMSE       float64 `json:"rmse"`
	R2Score    float64 `json:"r2_score"`
	DataPoints int     `json:"data_points"`
}

// Insight is the derived analysis of the prediction series. It is
// recomputed on every refresh cycle and never persisted.
type Insight struct {
	Trend          Trend          `json:"trend"`
	Volatility     float64        `json:"volatility"`
	VolatilityBand VolatilityBand `json:"volatilityLevel"`
	Recommendation Recommendation `json:"recommendation"`
	Confidence     int            `json:"confidence"`
	Points         []string       `json:"points"`
}
