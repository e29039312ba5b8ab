package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"NickelSentinel/internal/collector"
	"NickelSentinel/internal/model"
	"NickelSentinel/internal/notifier"
	"NickelSentinel/internal/recorder"
	"NickelSentinel/internal/store"

	"github.com/robfig/cron/v3"
)

// Scheduler drives periodic and manual refresh cycles.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Store     *store.Store
	Recorder  recorder.Recorder
	Notifier  *notifier.TelegramNotifier // nil when notifications are disabled
	Ctx       context.Context

	mu                 sync.Mutex
	lastRecommendation model.Recommendation
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, st *store.Store, rec recorder.Recorder, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(),
		Collector: col,
		Store:     st,
		Recorder:  rec,
		Notifier:  tn,
		Ctx:       ctx,
	}
}

// RegisterAutoRefresh schedules the periodic refresh task.
func (s *Scheduler) RegisterAutoRefresh(intervalMinutes int) error {
	spec := fmt.Sprintf("@every %dm", intervalMinutes)
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register auto refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes a refresh cycle immediately (startup, API trigger,
// Telegram command).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running refresh cycle")

	// The sequence number is taken before fetching, so a slow cycle that
	// finishes after a newer one gets rejected by the store.
	cycle := s.Store.NextCycle()
	snap, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] refresh cycle %d: %v", cycle, err)
		return
	}
	snap.Cycle = cycle

	if !s.Store.Update(snap) {
		return
	}

	if err := s.Recorder.RecordRefresh(buildRefreshRecord(snap)); err != nil {
		log.Printf("[ERROR] record refresh: %v", err)
	}

	s.checkRecommendationChange(snap)
}

// checkRecommendationChange alerts and records when the suggested action
// flips between two applied cycles.
func (s *Scheduler) checkRecommendationChange(snap *model.Snapshot) {
	if snap.Insight == nil {
		return
	}

	s.mu.Lock()
	prev := s.lastRecommendation
	current := snap.Insight.Recommendation
	s.lastRecommendation = current
	s.mu.Unlock()

	if prev == "" || prev == current {
		return
	}

	log.Printf("[INFO] recommendation changed: %s -> %s", prev, current)
	if err := s.Recorder.RecordRecommendationChange(&recorder.RecommendationChange{
		SnapshotID: snap.ID,
		From:       string(prev),
		To:         string(current),
		Trend:      string(snap.Insight.Trend),
		Confidence: snap.Insight.Confidence,
	}); err != nil {
		log.Printf("[ERROR] record recommendation change: %v", err)
	}

	s.trySend(notifier.FormatRecommendationChange(prev, current, snap))
}

// HandleCommand processes a Telegram command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/insight":
		snap := s.Store.Latest()
		if snap == nil {
			return "No data yet, try /refresh first."
		}
		return notifier.FormatInsightReport(snap)
	case "/metrics":
		snap := s.Store.Latest()
		if snap == nil {
			return "No data yet, try /refresh first."
		}
		return notifier.FormatMetrics(snap.Metrics)
	case "/refresh":
		go s.RunRefreshNow()
		return "Refresh started."
	default:
		return "Available commands:\n• /insight\n• /metrics\n• /refresh"
	}
}

func buildRefreshRecord(snap *model.Snapshot) *recorder.RefreshRecord {
	rec := &recorder.RefreshRecord{
		Cycle:      snap.Cycle,
		SnapshotID: snap.ID,
		Source:     snap.Source,
	}
	if last, ok := snap.Historical.Last(); ok {
		rec.LastHistorical = last.Price
	}
	if last, ok := snap.Predictions.Last(); ok {
		rec.LastPredicted = last.Price
	}
	if ins := snap.Insight; ins != nil {
		rec.Trend = string(ins.Trend)
		rec.Volatility = ins.Volatility
		rec.VolatilityBand = string(ins.VolatilityBand)
		rec.Recommendation = string(ins.Recommendation)
		rec.Confidence = ins.Confidence
	}
	if m := snap.Metrics; m != nil {
		rec.MAPE = m.MAPE
		rec.RMSE = m.RMSE
		rec.R2Score = m.R2Score
		rec.DataPoints = m.DataPoints
	}
	return rec
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
