//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"pagesync/internal/domain"
	"pagesync/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_posts.up.sql"),
			filepath.Join(migrationsPath, "002_create_sync_state.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM posts")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sync_state")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func testPost(pageID string) *domain.PostRecord {
	now := time.Now().Truncate(time.Microsecond)
	return &domain.PostRecord{
		DataSourceID: "test-source",
		PageID:       pageID,
		Title:        "Test Post",
		Slug:         utils.Ptr("test-post-" + pageID),
		Content:      "# Test\n\nBody.",
		PublishAt:    &now,
		UpdatedAt:    now,
		Tags:         []string{"go", "sync"},
		Authors:      []string{"Ada"},
		Meta:         domain.Meta{"Description": "a post"},
	}
}

func (s *PostgresIntegrationSuite) TestPostStore_Upsert_Insert() {
	store := NewPostStore(s.db)

	created, err := store.Upsert(s.ctx, testPost("p1"))
	s.NoError(err)
	s.True(created)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM posts WHERE datasource_id = $1 AND page_id = $2", "test-source", "p1")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestPostStore_Upsert_UpdateIsIdempotent() {
	store := NewPostStore(s.db)
	post := testPost("p1")

	created, err := store.Upsert(s.ctx, post)
	s.NoError(err)
	s.True(created)

	post.Title = "Updated Title"
	post.Content = "new body"
	created, err = store.Upsert(s.ctx, post)
	s.NoError(err)
	s.False(created)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM posts WHERE datasource_id = $1", "test-source")
	s.NoError(err)
	s.Equal(1, count)

	retrieved, err := store.GetByProviderPageID(s.ctx, "p1", "test-source")
	s.NoError(err)
	s.Require().NotNil(retrieved)
	s.Equal("Updated Title", retrieved.Title)
	s.Equal("new body", retrieved.Content)
}

func (s *PostgresIntegrationSuite) TestPostStore_Upsert_NilSlugDrafts() {
	store := NewPostStore(s.db)

	draft1 := testPost("p1")
	draft1.Slug = nil
	draft1.PublishAt = nil
	draft2 := testPost("p2")
	draft2.Slug = nil
	draft2.PublishAt = nil

	// Two drafts with NULL slugs must coexist: NULLs never collide in
	// the partial unique index.
	_, err := store.Upsert(s.ctx, draft1)
	s.NoError(err)
	_, err = store.Upsert(s.ctx, draft2)
	s.NoError(err)

	posts, err := store.GetAllForSource(s.ctx, "test-source")
	s.NoError(err)
	s.Len(posts, 2)
	s.Nil(posts[0].Slug)
	s.Nil(posts[1].Slug)
}

func (s *PostgresIntegrationSuite) TestPostStore_Upsert_DuplicateSlugRejected() {
	store := NewPostStore(s.db)

	post1 := testPost("p1")
	post1.Slug = utils.Ptr("same-slug")
	post2 := testPost("p2")
	post2.Slug = utils.Ptr("same-slug")

	_, err := store.Upsert(s.ctx, post1)
	s.NoError(err)

	_, err = store.Upsert(s.ctx, post2)
	s.Error(err)
}

func (s *PostgresIntegrationSuite) TestPostStore_SameSlugDifferentSources() {
	store := NewPostStore(s.db)

	post1 := testPost("p1")
	post1.Slug = utils.Ptr("shared")
	post2 := testPost("p1")
	post2.DataSourceID = "other-source"
	post2.Slug = utils.Ptr("shared")

	_, err := store.Upsert(s.ctx, post1)
	s.NoError(err)
	_, err = store.Upsert(s.ctx, post2)
	s.NoError(err)
}

func (s *PostgresIntegrationSuite) TestPostStore_GetByProviderPageID_Missing() {
	store := NewPostStore(s.db)

	post, err := store.GetByProviderPageID(s.ctx, "nope", "test-source")
	s.NoError(err)
	s.Nil(post)
}

func (s *PostgresIntegrationSuite) TestPostStore_GetBySlug() {
	store := NewPostStore(s.db)
	post := testPost("p1")
	post.Slug = utils.Ptr("findable")

	_, err := store.Upsert(s.ctx, post)
	s.NoError(err)

	retrieved, err := store.GetBySlug(s.ctx, "findable", "test-source")
	s.NoError(err)
	s.Require().NotNil(retrieved)
	s.Equal("p1", retrieved.PageID)
	s.Equal([]string{"go", "sync"}, []string(retrieved.Tags))
	s.Equal("a post", retrieved.Meta["Description"])

	missing, err := store.GetBySlug(s.ctx, "findable", "other-source")
	s.NoError(err)
	s.Nil(missing)
}

func (s *PostgresIntegrationSuite) TestPostStore_RoundTripNilFields() {
	store := NewPostStore(s.db)
	post := testPost("p1")
	post.Slug = nil
	post.PublishAt = nil
	post.Tags = nil
	post.Authors = nil
	post.Meta = nil

	_, err := store.Upsert(s.ctx, post)
	s.NoError(err)

	retrieved, err := store.GetByProviderPageID(s.ctx, "p1", "test-source")
	s.NoError(err)
	s.Require().NotNil(retrieved)
	s.Nil(retrieved.Slug)
	s.Nil(retrieved.PublishAt)
	s.Empty(retrieved.Tags)
	s.Empty(retrieved.Authors)
	s.Nil(retrieved.Meta)
}

func (s *PostgresIntegrationSuite) TestPostStore_DeleteForSource() {
	store := NewPostStore(s.db)

	_, err := store.Upsert(s.ctx, testPost("p1"))
	s.NoError(err)
	_, err = store.Upsert(s.ctx, testPost("p2"))
	s.NoError(err)

	other := testPost("p1")
	other.DataSourceID = "other-source"
	_, err = store.Upsert(s.ctx, other)
	s.NoError(err)

	deleted, err := store.DeleteForSource(s.ctx, "test-source")
	s.NoError(err)
	s.Equal(int64(2), deleted)

	remaining, err := store.GetAllForSource(s.ctx, "other-source")
	s.NoError(err)
	s.Len(remaining, 1)
}

func (s *PostgresIntegrationSuite) TestSyncStateStore_GetNew() {
	store := NewSyncStateStore(s.db)

	state, err := store.Get(s.ctx, "new-source")
	s.NoError(err)
	s.NotNil(state)
	s.Equal("new-source", state.DataSourceID)
	s.True(state.LastSyncedAt.IsZero())
	s.Equal(int64(0), state.TotalSynced)
}

func (s *PostgresIntegrationSuite) TestSyncStateStore_UpdateAndGet() {
	store := NewSyncStateStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	state := &domain.SyncState{
		DataSourceID: "test-source",
		LastSyncedAt: now,
		TotalSynced:  100,
	}
	err := store.Update(s.ctx, state)
	s.NoError(err)

	retrieved, err := store.Get(s.ctx, "test-source")
	s.NoError(err)
	s.Equal("test-source", retrieved.DataSourceID)
	s.Equal(int64(100), retrieved.TotalSynced)
	s.WithinDuration(now, retrieved.LastSyncedAt, time.Second)
}

func (s *PostgresIntegrationSuite) TestSyncStateStore_UpdateExisting() {
	store := NewSyncStateStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	state := &domain.SyncState{
		DataSourceID: "test-source",
		LastSyncedAt: now,
		TotalSynced:  10,
	}
	err := store.Update(s.ctx, state)
	s.NoError(err)

	state.TotalSynced = 20
	state.LastSyncedAt = now.Add(time.Hour)
	err = store.Update(s.ctx, state)
	s.NoError(err)

	retrieved, err := store.Get(s.ctx, "test-source")
	s.NoError(err)
	s.Equal(int64(20), retrieved.TotalSynced)
	s.WithinDuration(now.Add(time.Hour), retrieved.LastSyncedAt, time.Second)
}
