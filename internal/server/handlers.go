package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"NickelSentinel/internal/calculator"
	"NickelSentinel/internal/exporter"
	"NickelSentinel/internal/model"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{"status": "ok"}
	if snap := s.store.Latest(); snap != nil {
		status["lastRefresh"] = snap.FetchedAt
		status["cycle"] = snap.Cycle
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.Metrics)
}

func (s *Server) handleHistorical(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.Historical)
}

func (s *Server) handlePredictions(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.Predictions)
}

func (s *Server) handlePriceChanges(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.PriceChanges)
}

func (s *Server) handleCommodities(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.Commodities)
}

// handleMerged serves the reconciled dataset, optionally filtered by an
// inclusive [start, end] date range.
func (s *Server) handleMerged(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	merged := snap.Merged

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start != "" || end != "" {
		if start == "" {
			start = "0000-00-00"
		}
		if end == "" {
			end = "9999-99-99"
		}
		merged = calculator.FilterByRange(merged, start, end)
	}
	writeJSON(w, http.StatusOK, merged)
}

func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, calculator.Normalize(snap.Commodities, model.CommodityKeys))
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.Insight)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg.Settings())
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	filename := exporter.Filename(time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := exporter.WritePredictionsCSV(w, snap.PriceChanges); err != nil {
		log.Printf("[ERROR] write csv export: %v", err)
	}
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	go s.refresher.RunRefreshNow()
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "refresh started"})
}

// snapshot fetches the latest snapshot or answers 503 so the client shows
// its loading/retry affordance.
func (s *Server) snapshot(w http.ResponseWriter) (*model.Snapshot, bool) {
	snap := s.store.Latest()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no data yet, refresh in progress"})
		return nil, false
	}
	return snap, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
