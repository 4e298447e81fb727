package progress

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/abhisek/sysdesign/internal/kv"
)

// StorageKey is the one key the progress engine reads and writes.
// Nothing else may touch it.
const StorageKey = "sysdesign.progress"

// Store keeps a Record synchronized with a kv.Storage under StorageKey.
//
// Storage failures never reach the caller. The first failure flips the store
// into memory-only mode for the rest of its lifetime and logs one warning;
// after that every storage call is skipped.
type Store struct {
	storage  kv.Storage
	logger   *zap.Logger
	degraded bool
}

// NewStore creates a Store over storage. A nil logger discards output.
func NewStore(storage kv.Storage, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{storage: storage, logger: logger.Named("progress.store")}
}

// Degraded reports whether the store has fallen back to memory-only mode.
func (s *Store) Degraded() bool {
	return s.degraded
}

// Initialize loads the persisted record. An absent key or an undecodable
// value yields an empty record. A failed read puts the store in
// memory-only mode so progress it could not read is never overwritten.
func (s *Store) Initialize(ctx context.Context) Record {
	raw, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return Record{}
		}
		s.degrade("read", err)
		return Record{}
	}

	res := Decode(raw)
	if !res.OK() {
		s.logger.Warn("discarding unreadable progress data",
			zap.String("key", StorageKey),
			zap.Int("bytes", len(raw)),
			zap.Error(res.Err))
		return Record{}
	}
	if res.Legacy {
		s.logger.Debug("loaded unversioned progress data", zap.Int("entries", len(res.Record)))
	}
	return res.Record
}

// Persist writes the full record to storage, overwriting the previous value.
func (s *Store) Persist(ctx context.Context, r Record) {
	if s.degraded {
		return
	}
	raw, err := Encode(r)
	if err != nil {
		// Only reachable if an invalid status slipped into the record.
		s.logger.Error("encode progress record", zap.Error(err))
		return
	}
	if err := s.storage.Set(ctx, StorageKey, raw); err != nil {
		s.degrade("write", err)
	}
}

// SetStatus returns a copy of r with id mapped to status. The id is not
// checked against any catalog.
func (s *Store) SetStatus(r Record, id string, status NodeStatus) Record {
	return r.With(id, status)
}

// ResetAll removes the stored key entirely and returns an empty record.
func (s *Store) ResetAll(ctx context.Context) Record {
	if !s.degraded {
		if err := s.storage.Remove(ctx, StorageKey); err != nil {
			s.degrade("remove", err)
		}
	}
	return Record{}
}

func (s *Store) degrade(op string, err error) {
	if s.degraded {
		return
	}
	s.degraded = true
	s.logger.Warn("progress storage unavailable; continuing in memory only",
		zap.String("op", op),
		zap.String("key", StorageKey),
		zap.Error(err))
}
