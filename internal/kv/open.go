package kv

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options selects and configures a storage backend.
type Options struct {
	Backend string
	// Path is the SQLite database file.
	Path string
	// Dir is the directory used by the file backend.
	Dir   string
	Redis RedisOptions
}

// Open constructs the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (Storage, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite backend: empty database path")
		}
		if err := EnsureDir(opts.Path); err != nil {
			return nil, fmt.Errorf("sqlite backend: %w", err)
		}
		return OpenSQLite(opts.Path)
	case BackendFile:
		if opts.Dir == "" {
			return nil, fmt.Errorf("file backend: empty directory")
		}
		return NewFile(opts.Dir)
	case BackendRedis:
		return OpenRedis(ctx, opts.Redis)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
