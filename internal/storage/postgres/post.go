package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"pagesync/internal/domain"
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `datasource_id, page_id, title, slug, content, publish_at, updated_at, tags, authors, meta`

type postRow struct {
	DataSourceID string         `db:"datasource_id"`
	PageID       string         `db:"page_id"`
	Title        string         `db:"title"`
	Slug         *string        `db:"slug"`
	Content      string         `db:"content"`
	PublishAt    *time.Time     `db:"publish_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	Tags         pq.StringArray `db:"tags"`
	Authors      pq.StringArray `db:"authors"`
	Meta         domain.Meta    `db:"meta"`
}

func (r postRow) toDomain() *domain.PostRecord {
	return &domain.PostRecord{
		DataSourceID: r.DataSourceID,
		PageID:       r.PageID,
		Title:        r.Title,
		Slug:         r.Slug,
		Content:      r.Content,
		PublishAt:    r.PublishAt,
		UpdatedAt:    r.UpdatedAt,
		Tags:         r.Tags,
		Authors:      r.Authors,
		Meta:         r.Meta,
	}
}

// GetByProviderPageID returns the record for one provider page, or nil
// when the page has never been synced.
func (s *PostStore) GetByProviderPageID(ctx context.Context, pageID, dataSourceID string) (*domain.PostRecord, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE datasource_id = $1 AND page_id = $2`

	var row postRow
	err := s.db.GetContext(ctx, &row, query, dataSourceID, pageID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

// GetBySlug returns the record holding slug within a datasource, or nil.
func (s *PostStore) GetBySlug(ctx context.Context, slug, dataSourceID string) (*domain.PostRecord, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE datasource_id = $1 AND slug = $2`

	var row postRow
	err := s.db.GetContext(ctx, &row, query, dataSourceID, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (s *PostStore) GetAllForSource(ctx context.Context, dataSourceID string) ([]domain.PostRecord, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE datasource_id = $1 ORDER BY page_id`

	var rows []postRow
	if err := s.db.SelectContext(ctx, &rows, query, dataSourceID); err != nil {
		return nil, err
	}

	posts := make([]domain.PostRecord, 0, len(rows))
	for _, r := range rows {
		posts = append(posts, *r.toDomain())
	}
	return posts, nil
}

// Upsert inserts or updates the record keyed by (datasource_id, page_id).
// The reported flag is true when a new row was created. The partial
// unique index on (datasource_id, slug) backstops slug uniqueness across
// concurrent processes; a violation surfaces as a store error.
func (s *PostStore) Upsert(ctx context.Context, post *domain.PostRecord) (bool, error) {
	query := `
		INSERT INTO posts (
			datasource_id, page_id, title, slug, content,
			publish_at, updated_at, tags, authors, meta
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (datasource_id, page_id) DO UPDATE SET
			title = EXCLUDED.title,
			slug = EXCLUDED.slug,
			content = EXCLUDED.content,
			publish_at = EXCLUDED.publish_at,
			updated_at = EXCLUDED.updated_at,
			tags = EXCLUDED.tags,
			authors = EXCLUDED.authors,
			meta = EXCLUDED.meta
		RETURNING (xmax = 0) AS created`

	var created bool
	err := s.db.QueryRowContext(ctx, query,
		post.DataSourceID,
		post.PageID,
		post.Title,
		post.Slug,
		post.Content,
		post.PublishAt,
		post.UpdatedAt,
		pq.StringArray(post.Tags),
		pq.StringArray(post.Authors),
		post.Meta,
	).Scan(&created)
	if err != nil {
		return false, err
	}

	return created, nil
}

// DeleteForSource wipes every record for one datasource and reports how
// many rows went away.
func (s *PostStore) DeleteForSource(ctx context.Context, dataSourceID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE datasource_id = $1`, dataSourceID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
