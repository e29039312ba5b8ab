package collector

import (
	"context"
	"log"
	"time"

	"NickelSentinel/internal/model"
	"NickelSentinel/internal/synthetic"
)

// fallbackDelay is the artificial pause before serving synthetic data, so a
// fallback response has latency comparable to a real one and the UI layer
// sees consistent perceived timing.
const fallbackDelay = 600 * time.Millisecond

// FallbackFetcher decorates a primary fetcher with a synthetic substitute.
// Any primary failure (timeout, transport error, non-2xx status) is absorbed:
// the caller always receives a structurally valid value, never an error.
//
// The dataset is generated once at construction, so repeated fallbacks
// within one process serve a consistent view of the world.
type FallbackFetcher struct {
	Primary Fetcher
	Delay   time.Duration

	dataset *synthetic.Dataset
}

// NewFallbackFetcher wraps primary with synthetic data from the given
// generator. Primary may be nil, in which case every fetch serves synthetic
// data directly (and without the artificial delay).
func NewFallbackFetcher(primary Fetcher, gen *synthetic.Generator) *FallbackFetcher {
	return &FallbackFetcher{
		Primary: primary,
		Delay:   fallbackDelay,
		dataset: gen.Generate(),
	}
}

func (f *FallbackFetcher) Name() string {
	if f.Primary == nil {
		return "synthetic"
	}
	return f.Primary.Name() + "+fallback"
}

func (f *FallbackFetcher) FetchMetrics(ctx context.Context) (*model.Metrics, error) {
	if f.Primary != nil {
		if metrics, err := f.Primary.FetchMetrics(ctx); err == nil {
			return metrics, nil
		} else {
			f.fallTo(ctx, "metrics", err)
		}
	}
	return f.dataset.Metrics, nil
}

func (f *FallbackFetcher) FetchHistorical(ctx context.Context) (model.Series, error) {
	if f.Primary != nil {
		if series, err := f.Primary.FetchHistorical(ctx); err == nil {
			return series, nil
		} else {
			f.fallTo(ctx, "historical", err)
		}
	}
	return f.dataset.Historical, nil
}

func (f *FallbackFetcher) FetchPredictions(ctx context.Context) (model.Series, error) {
	if f.Primary != nil {
		if series, err := f.Primary.FetchPredictions(ctx); err == nil {
			return series, nil
		} else {
			f.fallTo(ctx, "predictions", err)
		}
	}
	return f.dataset.Predictions, nil
}

func (f *FallbackFetcher) FetchPriceChanges(ctx context.Context) ([]model.ChangeRecord, error) {
	if f.Primary != nil {
		if changes, err := f.Primary.FetchPriceChanges(ctx); err == nil {
			return changes, nil
		} else {
			f.fallTo(ctx, "price-changes", err)
		}
	}
	return f.dataset.PriceChanges, nil
}

func (f *FallbackFetcher) FetchCommodities(ctx context.Context) ([]model.CommodityRecord, error) {
	if f.Primary != nil {
		if records, err := f.Primary.FetchCommodities(ctx); err == nil {
			return records, nil
		} else {
			f.fallTo(ctx, "commodities", err)
		}
	}
	return f.dataset.Commodities, nil
}

// fallTo logs the primary failure and waits out the artificial delay,
// respecting context cancellation.
func (f *FallbackFetcher) fallTo(ctx context.Context, resource string, err error) {
	log.Printf("[WARN] fetch %s from %s failed, using synthetic fallback: %v", resource, f.Primary.Name(), err)
	if f.Delay <= 0 {
		return
	}
	select {
	case <-time.After(f.Delay):
	case <-ctx.Done():
	}
}
