package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"NickelSentinel/internal/calculator"
	"NickelSentinel/internal/model"
	"NickelSentinel/internal/strategy"
)

// Collector runs one refresh cycle: it fetches all five resources
// concurrently, reconciles the two price series, and derives the insight.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches and assembles a full snapshot. The five fetches have no
// ordering dependency and run concurrently; the merge and insight steps
// wait for all of them (join barrier). With a fallback-wrapped fetcher the
// error return is theoretical, but a bare remote fetcher can fail.
func (c *Collector) Collect(ctx context.Context) (*model.Snapshot, error) {
	snap := &model.Snapshot{
		ID:        uuid.New().String(),
		Source:    c.Fetcher.Name(),
		FetchedAt: time.Now(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		metrics, err := c.Fetcher.FetchMetrics(gctx)
		if err != nil {
			return fmt.Errorf("fetch metrics: %w", err)
		}
		snap.Metrics = metrics
		return nil
	})
	g.Go(func() error {
		series, err := c.Fetcher.FetchHistorical(gctx)
		if err != nil {
			return fmt.Errorf("fetch historical: %w", err)
		}
		snap.Historical = series
		return nil
	})
	g.Go(func() error {
		series, err := c.Fetcher.FetchPredictions(gctx)
		if err != nil {
			return fmt.Errorf("fetch predictions: %w", err)
		}
		snap.Predictions = series
		return nil
	})
	g.Go(func() error {
		changes, err := c.Fetcher.FetchPriceChanges(gctx)
		if err != nil {
			return fmt.Errorf("fetch price changes: %w", err)
		}
		snap.PriceChanges = changes
		return nil
	})
	g.Go(func() error {
		records, err := c.Fetcher.FetchCommodities(gctx)
		if err != nil {
			return fmt.Errorf("fetch commodities: %w", err)
		}
		snap.Commodities = records
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.Merged = calculator.Merge(snap.Historical, snap.Predictions)
	snap.Insight = strategy.Evaluate(snap.Predictions, snap.Metrics)

	log.Printf("[INFO] collected snapshot %s: %d historical, %d predicted, %d merged records",
		snap.ID, len(snap.Historical), len(snap.Predictions), len(snap.Merged))
	return snap, nil
}
