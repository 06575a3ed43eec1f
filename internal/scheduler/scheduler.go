package scheduler

import (
	"context"
	"log/slog"
	"time"

	"pagesync/internal/domain"
)

// Syncer defines the interface for per-datasource sync operations.
type Syncer interface {
	DataSourceID() string
	SyncDataSource(ctx context.Context, opts domain.SyncOptions) (*domain.SyncSummary, error)
}

// StateStore reads incremental sync progress.
type StateStore interface {
	Get(ctx context.Context, dataSourceID string) (*domain.SyncState, error)
}

// Scheduler drives periodic incremental sweeps across every configured
// datasource, seeding each run's since from the persisted sync state.
type Scheduler struct {
	syncers  []Syncer
	states   StateStore
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncers []Syncer, states StateStore, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncers:  syncers,
		states:   states,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "datasources", len(s.syncers))

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, syncer := range s.syncers {
		syncCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		s.runOne(syncCtx, syncer)
		cancel()
	}
}

func (s *Scheduler) runOne(ctx context.Context, syncer Syncer) {
	opts := domain.SyncOptions{}

	state, err := s.states.Get(ctx, syncer.DataSourceID())
	if err != nil {
		s.logger.Warn("failed to read sync state, using default lookback",
			"datasource", syncer.DataSourceID(),
			"error", err,
		)
	} else if !state.LastSyncedAt.IsZero() {
		since := state.LastSyncedAt
		opts.Since = &since
	}

	if _, err := syncer.SyncDataSource(ctx, opts); err != nil {
		s.logger.Error("sync failed",
			"datasource", syncer.DataSourceID(),
			"error", err,
		)
	}
}
