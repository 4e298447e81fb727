package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sysdesign/internal/kv"
)

func TestStore_InitializeEmptyStorage(t *testing.T) {
	s := NewStore(kv.NewMemory(), nil)
	r := s.Initialize(context.Background())
	assert.NotNil(t, r)
	assert.Empty(t, r)
	assert.False(t, s.Degraded())
}

func TestStore_PersistThenInitialize(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	want := Record{"a": StatusCompleted, "b": StatusLocked, "zz-unknown": StatusInProgress}

	NewStore(mem, nil).Persist(ctx, want)

	got := NewStore(mem, nil).Initialize(ctx)
	assert.Equal(t, want, got)
}

func TestStore_InitializeCorruptData(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, StorageKey, "not valid json{{"))

	logger, logs := observedLogger()
	s := NewStore(mem, logger)

	var r Record
	require.NotPanics(t, func() { r = s.Initialize(ctx) })
	assert.Empty(t, r)
	assert.False(t, s.Degraded(), "corrupt data is not a storage failure")
	assert.Equal(t, 1, logs.FilterMessage("discarding unreadable progress data").Len())
}

func TestStore_InitializeLegacyData(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, StorageKey, `{"caching":"completed"}`))

	r := NewStore(mem, nil).Initialize(ctx)
	assert.Equal(t, Record{"caching": StatusCompleted}, r)
}

func TestStore_InitializeReadFailureDegrades(t *testing.T) {
	ctx := context.Background()
	fs := newFlakyStorage()
	fs.getErr = errors.New("storage disabled")

	s := NewStore(fs, nil)
	r := s.Initialize(ctx)
	assert.Empty(t, r)
	assert.True(t, s.Degraded())

	s.Persist(ctx, Record{"a": StatusCompleted})
	assert.Equal(t, 0, fs.sets, "degraded store must not write")
}

func TestStore_PersistFailureWarnsOnce(t *testing.T) {
	ctx := context.Background()
	fs := newFlakyStorage()
	fs.setErr = errors.New("quota exceeded")
	logger, logs := observedLogger()
	s := NewStore(fs, logger)

	require.NotPanics(t, func() {
		s.Persist(ctx, Record{"a": StatusCompleted})
		s.Persist(ctx, Record{"a": StatusInProgress})
		s.Persist(ctx, Record{"a": StatusLocked})
	})

	assert.True(t, s.Degraded())
	assert.Equal(t, 1, fs.sets, "writes after the first failure are skipped")
	assert.Equal(t, 1, logs.FilterMessage("progress storage unavailable; continuing in memory only").Len())
}

func TestStore_PersistOverwrites(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := NewStore(mem, nil)

	s.Persist(ctx, Record{"a": StatusCompleted, "b": StatusCompleted})
	s.Persist(ctx, Record{"b": StatusLocked})

	assert.Equal(t, Record{"b": StatusLocked}, NewStore(mem, nil).Initialize(ctx))
}

func TestStore_SetStatusIsPure(t *testing.T) {
	s := NewStore(kv.NewMemory(), nil)
	in := Record{"a": StatusLocked}
	out := s.SetStatus(in, "not-in-any-catalog", StatusCompleted)

	assert.Equal(t, Record{"a": StatusLocked}, in)
	assert.Equal(t, Record{"a": StatusLocked, "not-in-any-catalog": StatusCompleted}, out)
}

func TestStore_ResetAllRemovesKey(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := NewStore(mem, nil)
	s.Persist(ctx, Record{"a": StatusCompleted})

	r := s.ResetAll(ctx)
	assert.Empty(t, r)

	_, err := mem.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, kv.ErrNotFound, "reset must remove the key, not write an empty record")
}

func TestStore_ResetAllIdempotent(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := NewStore(mem, nil)
	s.Persist(ctx, Record{"a": StatusCompleted})

	first := s.ResetAll(ctx)
	second := s.ResetAll(ctx)

	assert.Equal(t, first, second)
	assert.False(t, s.Degraded())
	_, err := mem.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_ResetAllRemoveFailureDegrades(t *testing.T) {
	fs := newFlakyStorage()
	fs.removeErr = errors.New("storage disabled")
	s := NewStore(fs, nil)

	r := s.ResetAll(context.Background())
	assert.Empty(t, r)
	assert.True(t, s.Degraded())
}
