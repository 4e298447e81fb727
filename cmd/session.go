package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sysdesign/internal/catalog"
	"github.com/abhisek/sysdesign/internal/config"
	"github.com/abhisek/sysdesign/internal/kv"
	"github.com/abhisek/sysdesign/internal/logging"
	"github.com/abhisek/sysdesign/internal/progress"
)

// session bundles everything a command needs for one invocation.
type session struct {
	logger  *zap.Logger
	catalog *catalog.Catalog
	storage kv.Storage
	tracker *progress.Tracker
}

// openSession loads config, the catalog and storage, and builds the tracker.
func openSession(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()
	if cfg.Catalog != "" {
		cat, err = catalog.LoadFile(cfg.Catalog)
		if err != nil {
			return nil, err
		}
	}

	opts, err := cfg.StorageOptions()
	if err != nil {
		return nil, err
	}
	storage, err := kv.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	logger.Debug("storage opened",
		zap.String("backend", opts.Backend),
		zap.String("path", opts.Path),
		zap.Int("topics", cat.Len()))

	store := progress.NewStore(storage, logger)
	tracker := progress.NewTracker(ctx, store, cat,
		progress.WithKnownIDs(cat.Has),
		progress.WithLogger(logger))

	return &session{
		logger:  logger,
		catalog: cat,
		storage: storage,
		tracker: tracker,
	}, nil
}

// Close releases storage and flushes the logger.
func (s *session) Close() {
	if err := s.storage.Close(); err != nil {
		s.logger.Warn("close storage", zap.Error(err))
	}
	_ = s.logger.Sync()
}

// withSession adapts a session-consuming function into a cobra RunE.
func withSession(fn func(cmd *cobra.Command, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		return fn(cmd, s, args)
	}
}
