package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"pagesync/internal/domain"
)

// Provider is the adapter over the external page-and-database provider.
type Provider interface {
	GetPage(ctx context.Context, pageID string) (*domain.SourcePage, error)
	QueryDataSource(ctx context.Context, dataSourceID string, modifiedAfter *time.Time, cursor string) (*domain.PageBatch, error)
	UpdateProperty(ctx context.Context, pageID, property, value string) error
	PageToMarkdown(ctx context.Context, pageID string) (string, error)
	PropertyValues(page *domain.SourcePage, name string) []string
	Title(page *domain.SourcePage) string
	UniqueID(page *domain.SourcePage) *string
}

// PostStore is the persistence boundary for synced posts. Every call is
// an independent round trip; there is no cross-call transaction.
type PostStore interface {
	GetByProviderPageID(ctx context.Context, pageID, dataSourceID string) (*domain.PostRecord, error)
	GetBySlug(ctx context.Context, slug, dataSourceID string) (*domain.PostRecord, error)
	GetAllForSource(ctx context.Context, dataSourceID string) ([]domain.PostRecord, error)
	Upsert(ctx context.Context, post *domain.PostRecord) (bool, error)
	DeleteForSource(ctx context.Context, dataSourceID string) (int64, error)
}

// PostBuilder turns one provider page into a persistence-ready record.
// A nil record with nil error means the page is skipped, not failed.
type PostBuilder interface {
	BuildPost(ctx context.Context, page *domain.SourcePage) (*domain.PostRecord, error)
}

type SyncStateStore interface {
	Get(ctx context.Context, dataSourceID string) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type Publisher interface {
	Publish(ctx context.Context, post *domain.PostRecord, isNew bool) error
	Close() error
}
