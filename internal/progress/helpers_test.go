package progress

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/sysdesign/internal/catalog"
	"github.com/abhisek/sysdesign/internal/kv"
)

// flakyStorage wraps a Memory store and fails selected operations.
type flakyStorage struct {
	*kv.Memory
	getErr    error
	setErr    error
	removeErr error
	sets      int
	removes   int
}

func newFlakyStorage() *flakyStorage {
	return &flakyStorage{Memory: kv.NewMemory()}
}

func (f *flakyStorage) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.Memory.Get(ctx, key)
}

func (f *flakyStorage) Set(ctx context.Context, key, value string) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	return f.Memory.Set(ctx, key, value)
}

func (f *flakyStorage) Remove(ctx context.Context, key string) error {
	f.removes++
	if f.removeErr != nil {
		return f.removeErr
	}
	return f.Memory.Remove(ctx, key)
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

// scenarioCatalog has 2 fundamentals nodes and 3 problems nodes.
func scenarioCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.TopicNode{
		{ID: "node-1", Category: catalog.CategoryFundamentals},
		{ID: "node-2", Category: catalog.CategoryFundamentals},
		{ID: "node-3", Category: catalog.CategoryProblems},
		{ID: "node-4", Category: catalog.CategoryProblems},
		{ID: "node-5", Category: catalog.CategoryProblems},
	}, nil)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}
