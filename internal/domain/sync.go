package domain

import "time"

type SyncStatus string

const (
	SyncStatusOK    SyncStatus = "ok"
	SyncStatusError SyncStatus = "error"
)

// SyncSummary holds the outcome of one sync run.
type SyncSummary struct {
	DataSourceID string        `json:"datasource_id"`
	Processed    int           `json:"processed"`
	Skipped      int           `json:"skipped"`
	Failed       int           `json:"failed"`
	Wiped        int64         `json:"wiped,omitempty"`
	Status       SyncStatus    `json:"status"`
	Duration     time.Duration `json:"duration"`
}

// SyncOptions selects the scope of one run.
type SyncOptions struct {
	// Since restricts the sweep to pages modified after this time.
	// Ignored when SyncAll is set; defaults to a short lookback window
	// when nil.
	Since   *time.Time
	SyncAll bool
	// Wipe deletes every record for the datasource before syncing.
	Wipe bool
}

// SyncState tracks incremental progress per datasource.
type SyncState struct {
	ID           int64     `db:"id"`
	DataSourceID string    `db:"datasource_id"`
	LastSyncedAt time.Time `db:"last_synced_at"`
	TotalSynced  int64     `db:"total_synced"`
}
