// Package store holds the latest snapshot shared between the scheduler and
// the HTTP server. Snapshots are ephemeral: nothing here survives a restart.
package store

import (
	"log"
	"sync"

	"NickelSentinel/internal/model"
)

// Store is the single source of truth for display state, with concurrency
// safety between overlapping refresh cycles.
//
// Concurrent cycles are not cancelled; instead each cycle takes a sequence
// number from NextCycle before fetching, and Update rejects a snapshot
// whose cycle is older than the newest one already applied. A slow cycle
// can therefore never overwrite the result of a faster, more recent one.
type Store struct {
	mu        sync.RWMutex
	snap      *model.Snapshot
	nextCycle uint64
	applied   uint64
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// NextCycle reserves the sequence number for a new refresh cycle.
func (s *Store) NextCycle() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCycle++
	return s.nextCycle
}

// Update installs the snapshot unless a newer cycle already landed.
// Returns false when the snapshot was discarded as stale.
func (s *Store) Update(snap *model.Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Cycle <= s.applied {
		log.Printf("[WARN] discarding stale snapshot from cycle %d (cycle %d already applied)", snap.Cycle, s.applied)
		return false
	}
	s.snap = snap
	s.applied = snap.Cycle
	return true
}

// Latest returns the most recent snapshot, or nil before the first
// successful refresh. The snapshot is shared and must not be mutated.
func (s *Store) Latest() *model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
