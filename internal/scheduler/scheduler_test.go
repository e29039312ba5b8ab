package scheduler

import (
	"context"
	"strings"
	"sync"
	"testing"

	"NickelSentinel/internal/collector"
	"NickelSentinel/internal/recorder"
	"NickelSentinel/internal/store"
	"NickelSentinel/internal/synthetic"
)

type captureRecorder struct {
	mu        sync.Mutex
	refreshes []*recorder.RefreshRecord
	changes   []*recorder.RecommendationChange
}

func (c *captureRecorder) RecordRefresh(rec *recorder.RefreshRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshes = append(c.refreshes, rec)
	return nil
}

func (c *captureRecorder) RecordRecommendationChange(chg *recorder.RecommendationChange) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.changes = append(c.changes, chg)
	return nil
}

func (c *captureRecorder) Close() error { return nil }

func newTestScheduler(t *testing.T) (*Scheduler, *store.Store, *captureRecorder) {
	t.Helper()
	fetcher := collector.NewFallbackFetcher(nil, synthetic.NewGenerator(42))
	st := store.New()
	rec := &captureRecorder{}
	s := NewScheduler(context.Background(), collector.NewCollector(fetcher), st, rec, nil)
	return s, st, rec
}

func TestRefresh_PopulatesStoreAndHistory(t *testing.T) {
	s, st, rec := newTestScheduler(t)

	s.RunRefreshNow()

	snap := st.Latest()
	if snap == nil {
		t.Fatal("store empty after refresh")
	}
	if snap.Cycle != 1 {
		t.Errorf("first cycle: got %d, want 1", snap.Cycle)
	}

	if len(rec.refreshes) != 1 {
		t.Fatalf("expected 1 refresh record, got %d", len(rec.refreshes))
	}
	r := rec.refreshes[0]
	if r.Trend == "" || r.Recommendation == "" {
		t.Errorf("refresh record missing derived fields: %+v", r)
	}
	if r.SnapshotID != snap.ID {
		t.Errorf("refresh record snapshot id %s does not match %s", r.SnapshotID, snap.ID)
	}
}

func TestRefresh_NoChangeAlertOnStableRecommendation(t *testing.T) {
	s, _, rec := newTestScheduler(t)

	// The synthetic dataset is fixed per fetcher instance, so consecutive
	// refreshes derive the same recommendation.
	s.RunRefreshNow()
	s.RunRefreshNow()

	if len(rec.changes) != 0 {
		t.Errorf("expected no recommendation-change records, got %d", len(rec.changes))
	}
	if len(rec.refreshes) != 2 {
		t.Errorf("expected 2 refresh records, got %d", len(rec.refreshes))
	}
}

func TestHandleCommand(t *testing.T) {
	s, _, _ := newTestScheduler(t)

	if reply := s.HandleCommand("/insight"); !strings.Contains(reply, "No data yet") {
		t.Errorf("expected no-data reply before refresh, got %q", reply)
	}

	s.RunRefreshNow()

	if reply := s.HandleCommand("/insight"); !strings.Contains(reply, "Recommendation") {
		t.Errorf("expected insight report, got %q", reply)
	}
	if reply := s.HandleCommand("/metrics"); !strings.Contains(reply, "MAPE") {
		t.Errorf("expected metrics report, got %q", reply)
	}
	if reply := s.HandleCommand("/bogus"); !strings.Contains(reply, "Available commands") {
		t.Errorf("expected help text, got %q", reply)
	}
}
