package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"pagesync/internal/domain"
)

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

func (s *SyncStateStore) Get(ctx context.Context, dataSourceID string) (*domain.SyncState, error) {
	var state domain.SyncState
	query := `
		SELECT id, datasource_id, last_synced_at, total_synced
		FROM sync_state
		WHERE datasource_id = $1`

	err := s.db.GetContext(ctx, &state, query, dataSourceID)
	if errors.Is(err, sql.ErrNoRows) {
		// Return empty state for never-synced datasources
		return &domain.SyncState{
			DataSourceID: dataSourceID,
			LastSyncedAt: time.Time{},
			TotalSynced:  0,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *SyncStateStore) Update(ctx context.Context, state *domain.SyncState) error {
	query := `
		INSERT INTO sync_state (datasource_id, last_synced_at, total_synced)
		VALUES ($1, $2, $3)
		ON CONFLICT (datasource_id) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			total_synced = EXCLUDED.total_synced`

	_, err := s.db.ExecContext(ctx, query,
		state.DataSourceID,
		state.LastSyncedAt,
		state.TotalSynced,
	)
	return err
}
