package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pagesync/internal/domain"
	"pagesync/internal/metrics"
	"pagesync/internal/provider"
)

// SyncService reconciles one datasource with the store. Pages within a
// run are processed strictly sequentially: slug resolution for page N
// must observe slugs assigned to page N-1 in the same run. Independent
// instances may sync different datasources concurrently; they share no
// mutable state.
type SyncService struct {
	provider  Provider
	builder   PostBuilder
	posts     PostStore
	syncState SyncStateStore
	publisher Publisher
	metrics   *metrics.SyncMetrics
	logger    *slog.Logger

	dataSourceID string
	lookback     time.Duration
}

func NewSyncService(
	prov Provider,
	builder PostBuilder,
	posts PostStore,
	syncState SyncStateStore,
	publisher Publisher,
	syncMetrics *metrics.SyncMetrics,
	logger *slog.Logger,
	dataSourceID string,
	lookback time.Duration,
) *SyncService {
	return &SyncService{
		provider:     prov,
		builder:      builder,
		posts:        posts,
		syncState:    syncState,
		publisher:    publisher,
		metrics:      syncMetrics,
		logger:       logger.With("datasource", dataSourceID),
		dataSourceID: dataSourceID,
		lookback:     lookback,
	}
}

func (s *SyncService) DataSourceID() string {
	return s.dataSourceID
}

// SyncDataSource runs one full or incremental sweep. A pagination
// failure aborts the whole run with zero pages processed; a failure on
// one page is counted and never stops the rest, except an auth failure,
// which would fail every remaining call as well.
func (s *SyncService) SyncDataSource(ctx context.Context, opts domain.SyncOptions) (*domain.SyncSummary, error) {
	start := time.Now()
	summary := &domain.SyncSummary{
		DataSourceID: s.dataSourceID,
		Status:       domain.SyncStatusOK,
	}

	s.logger.Info("starting sync",
		"sync_all", opts.SyncAll,
		"wipe", opts.Wipe,
	)

	if opts.Wipe {
		wiped, err := s.posts.DeleteForSource(ctx, s.dataSourceID)
		if err != nil {
			return s.fail(summary, start, fmt.Errorf("wipe datasource: %w", err))
		}
		summary.Wiped = wiped
		s.logger.Info("wiped datasource", "deleted", wiped)
	}

	pages, err := s.fetchAllPages(ctx, s.buildFilter(opts))
	if err != nil {
		return s.fail(summary, start, fmt.Errorf("query datasource: %w", err))
	}

	s.logger.Info("fetched pages from provider", "count", len(pages))

	for i := range pages {
		processed, err := s.ProcessPage(ctx, &pages[i])
		switch {
		case err != nil:
			summary.Failed++
			s.metrics.PageHandled(s.dataSourceID, metrics.ResultFailed)
			if errors.Is(err, provider.ErrAuth) {
				return s.fail(summary, start, fmt.Errorf("process page %s: %w", pages[i].ID, err))
			}
			s.logger.Warn("failed to process page",
				"page_id", pages[i].ID,
				"error", err,
			)
		case processed:
			summary.Processed++
			s.metrics.PageHandled(s.dataSourceID, metrics.ResultProcessed)
		default:
			summary.Skipped++
			s.metrics.PageHandled(s.dataSourceID, metrics.ResultSkipped)
		}
	}

	summary.Duration = time.Since(start)
	s.metrics.RunCompleted(s.dataSourceID, string(summary.Status), summary.Duration)

	if err := s.updateSyncState(ctx, start, summary); err != nil {
		return summary, fmt.Errorf("update sync state: %w", err)
	}

	s.logger.Info("sync completed",
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"duration", summary.Duration,
	)

	return summary, nil
}

// ProcessPage is the single shared path for both the batch sweep and the
// webhook trigger. It reports whether the page resulted in a write.
func (s *SyncService) ProcessPage(ctx context.Context, page *domain.SourcePage) (bool, error) {
	post, err := s.builder.BuildPost(ctx, page)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, nil
	}

	created, err := s.posts.Upsert(ctx, post)
	if err != nil {
		return false, fmt.Errorf("upsert post: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, post, created); err != nil {
			// Eventing is advisory; the record is already persisted.
			s.logger.Warn("failed to publish post event",
				"page_id", page.ID,
				"error", err,
			)
		}
	}

	s.logger.Debug("processed page",
		"page_id", page.ID,
		"created", created,
	)

	return true, nil
}

// buildFilter derives the modified-after filter: none for a full sweep,
// the explicit since when given, otherwise a short lookback window.
func (s *SyncService) buildFilter(opts domain.SyncOptions) *time.Time {
	if opts.SyncAll {
		return nil
	}
	if opts.Since != nil {
		return opts.Since
	}
	since := time.Now().Add(-s.lookback)
	return &since
}

// fetchAllPages materializes the full page set before processing. The
// filter bounds the working set to changed pages in the common
// incremental case, so holding it in memory is acceptable.
func (s *SyncService) fetchAllPages(ctx context.Context, modifiedAfter *time.Time) ([]domain.SourcePage, error) {
	var pages []domain.SourcePage
	cursor := ""

	for {
		batch, err := s.provider.QueryDataSource(ctx, s.dataSourceID, modifiedAfter, cursor)
		if err != nil {
			return nil, err
		}
		pages = append(pages, batch.Pages...)

		if !batch.HasMore || batch.NextCursor == "" {
			return pages, nil
		}
		cursor = batch.NextCursor
	}
}

func (s *SyncService) updateSyncState(ctx context.Context, startedAt time.Time, summary *domain.SyncSummary) error {
	state, err := s.syncState.Get(ctx, s.dataSourceID)
	if err != nil {
		return err
	}

	state.DataSourceID = s.dataSourceID
	state.LastSyncedAt = startedAt
	state.TotalSynced += int64(summary.Processed)

	return s.syncState.Update(ctx, state)
}

func (s *SyncService) fail(summary *domain.SyncSummary, start time.Time, err error) (*domain.SyncSummary, error) {
	summary.Status = domain.SyncStatusError
	summary.Duration = time.Since(start)
	s.metrics.RunCompleted(s.dataSourceID, string(summary.Status), summary.Duration)
	s.logger.Error("sync failed", "error", err)
	return summary, err
}
