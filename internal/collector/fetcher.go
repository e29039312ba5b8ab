package collector

import (
	"context"

	"NickelSentinel/internal/model"
)

// Fetcher defines the interface over the five logical dashboard resources.
type Fetcher interface {
	FetchMetrics(ctx context.Context) (*model.Metrics, error)
	FetchHistorical(ctx context.Context) (model.Series, error)
	FetchPredictions(ctx context.Context) (model.Series, error)
	FetchPriceChanges(ctx context.Context) ([]model.ChangeRecord, error)
	FetchCommodities(ctx context.Context) ([]model.CommodityRecord, error)
	Name() string
}
