// Package progress tracks per-topic completion status and derives
// roadmap statistics from it.
//
// Tracker is the only surface callers use. It owns the in-memory Record,
// writes every change through a Store, and recomputes statistics from the
// catalog on each GetStats call.
//
// The locked status is display-only: nothing here prevents moving a node
// out of locked, or into it, from any other status.
package progress

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Tracker is the query façade over a Store and a Catalog.
type Tracker struct {
	mu      sync.RWMutex
	record  Record
	store   *Store
	catalog Catalog
	known   func(id string) bool
	logger  *zap.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithKnownIDs installs a membership check used to log writes for ids
// the catalog does not contain. Such writes are still accepted.
func WithKnownIDs(known func(id string) bool) Option {
	return func(t *Tracker) { t.known = known }
}

// WithLogger sets the tracker's logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// NewTracker loads the persisted record through store and returns a ready Tracker.
func NewTracker(ctx context.Context, store *Store, c Catalog, opts ...Option) *Tracker {
	t := &Tracker{store: store, catalog: c, logger: zap.NewNop()}
	for _, o := range opts {
		o(t)
	}
	t.logger = t.logger.Named("progress")
	t.record = store.Initialize(ctx)
	return t
}

// GetStatus returns the status of id, or not-started if it has none.
func (t *Tracker) GetStatus(id string) NodeStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.record.Lookup(id)
}

// SetStatus records status for id and persists the whole record before
// returning. It only fails for a status outside the four known values.
func (t *Tracker) SetStatus(ctx context.Context, id string, status NodeStatus) error {
	if !status.Valid() {
		return fmt.Errorf("set %q: %w: %q", id, ErrInvalidStatus, status)
	}
	if t.known != nil && !t.known(id) {
		t.logger.Warn("status set for id outside the catalog", zap.String("id", id))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.record = t.store.SetStatus(t.record, id, status)
	t.store.Persist(ctx, t.record)
	return nil
}

// GetStats recomputes statistics from the current record.
func (t *Tracker) GetStats() ProgressStats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Compute(t.record, t.catalog)
}

// ResetAll clears every status and removes the stored key.
func (t *Tracker) ResetAll(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.record = t.store.ResetAll(ctx)
}

// Record returns a copy of the current record.
func (t *Tracker) Record() Record {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.record.Clone()
}

// Degraded reports whether progress is no longer being persisted.
func (t *Tracker) Degraded() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.store.Degraded()
}
