package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/gosimple/slug"

	"pagesync/internal/config"
	"pagesync/internal/domain"
	"pagesync/internal/policy"
)

// maxSlugProbes bounds numbered conflict resolution: base, base-2 ...
// base-100. Beyond that a random suffix keeps the sync available.
const maxSlugProbes = 100

// Builder evaluates a datasource's publishing policies against one
// provider page and produces the record to persist.
type Builder struct {
	provider Provider
	posts    PostStore
	policies policy.Policies
	ds       config.DataSource
	logger   *slog.Logger
}

func NewBuilder(
	provider Provider,
	posts PostStore,
	policies policy.Policies,
	ds config.DataSource,
	logger *slog.Logger,
) *Builder {
	return &Builder{
		provider: provider,
		posts:    posts,
		policies: policies,
		ds:       ds,
		logger:   logger.With("datasource", ds.ID),
	}
}

// BuildPost assembles the persistence-ready record for page.
//
// Non-public pages still sync (title and content stay current) but carry
// nil slug and nil publish_at: assigning slugs to drafts would pollute
// the uniqueness namespace and leak unpublished URLs. Slug resolution
// therefore runs only for public pages.
func (b *Builder) BuildPost(ctx context.Context, page *domain.SourcePage) (*domain.PostRecord, error) {
	isPublic := b.policies.Publish.IsPublic(page)
	title := b.provider.Title(page)

	var publishAt *time.Time
	var postSlug *string

	if isPublic {
		if d := b.policies.PublishDate.PublishDate(page); d != nil {
			publishAt = d
		} else {
			t := page.LastEditedTime
			publishAt = &t
		}

		resolved, changed, err := b.resolveSlug(ctx, page, title)
		if err != nil {
			return nil, err
		}
		postSlug = &resolved

		if changed && b.ds.SlugSyncProperty != "" {
			if err := b.syncSlugBack(ctx, page, resolved); err != nil {
				return nil, err
			}
		}
	}

	content, err := b.provider.PageToMarkdown(ctx, page.ID)
	if err != nil {
		return nil, fmt.Errorf("convert page %s to markdown: %w", page.ID, err)
	}

	record := &domain.PostRecord{
		DataSourceID: b.ds.ID,
		PageID:       page.ID,
		Title:        title,
		Slug:         postSlug,
		Content:      content,
		PublishAt:    publishAt,
		UpdatedAt:    page.LastEditedTime,
		Tags:         b.propertyList(page, b.ds.TagsProperty),
		Authors:      b.propertyList(page, b.ds.AuthorsProperty),
		Meta:         b.extractMeta(page),
	}

	return record, nil
}

// resolveSlug decides the final slug for a public page and reports
// whether it differs from what the store already holds.
//
// An existing slug is sticky: it survives re-syncs untouched unless the
// slug policy supplies a different explicit value, which is treated as a
// rename and re-run through uniqueness resolution.
func (b *Builder) resolveSlug(ctx context.Context, page *domain.SourcePage, title string) (string, bool, error) {
	customSlug := b.policies.Slug.Slug(page)

	existing, err := b.posts.GetByProviderPageID(ctx, page.ID, b.ds.ID)
	if err != nil {
		return "", false, fmt.Errorf("look up existing post: %w", err)
	}

	if existing != nil && existing.Slug != nil {
		if customSlug != nil && *customSlug != *existing.Slug {
			resolved, err := b.ensureUniqueSlug(ctx, *customSlug, page.ID)
			return resolved, true, err
		}
		return *existing.Slug, false, nil
	}

	// New record, or an existing one that never got a slug (e.g. a
	// draft going public).
	base := slug.Make(title)
	if customSlug != nil {
		base = *customSlug
	}
	resolved, err := b.ensureUniqueSlug(ctx, base, page.ID)
	return resolved, true, err
}

// ensureUniqueSlug probes the store for a free slug: base first, then
// base-2 through base-100. When every candidate is taken it falls back
// to a random suffix rather than failing the page.
func (b *Builder) ensureUniqueSlug(ctx context.Context, base, excludePageID string) (string, error) {
	for i := 1; i <= maxSlugProbes; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}

		conflict, err := b.posts.GetBySlug(ctx, candidate, b.ds.ID)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if conflict == nil || conflict.PageID == excludePageID {
			return candidate, nil
		}
	}

	fallback := fmt.Sprintf("%s-%s", base, randomSuffix())
	b.logger.Warn("slug candidates exhausted, using random suffix",
		"base", base,
		"slug", fallback,
	)
	return fallback, nil
}

// syncSlugBack writes the resolved slug to the provider's own slug
// property when it differs from what the provider already stores. The
// write is one-way and advisory; the adapter swallows everything except
// auth failures.
func (b *Builder) syncSlugBack(ctx context.Context, page *domain.SourcePage, resolved string) error {
	stored := b.provider.PropertyValues(page, b.ds.SlugSyncProperty)
	if len(stored) > 0 && stored[0] == resolved {
		return nil
	}
	return b.provider.UpdateProperty(ctx, page.ID, b.ds.SlugSyncProperty, resolved)
}

// propertyList extracts a configured list property, nil when the
// property is unconfigured or empty so the record stores NULL rather
// than an empty list.
func (b *Builder) propertyList(page *domain.SourcePage, property string) []string {
	if property == "" {
		return nil
	}
	values := b.provider.PropertyValues(page, property)
	if len(values) == 0 {
		return nil
	}
	return values
}

// extractMeta runs the metadata extractor defensively: a misbehaving
// extractor must never abort the sync of an otherwise-valid page.
func (b *Builder) extractMeta(page *domain.SourcePage) (meta domain.Meta) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("metadata extractor panicked",
				"page_id", page.ID,
				"panic", r,
			)
			meta = nil
		}
	}()

	meta, err := b.policies.Meta.Extract(page)
	if err != nil {
		b.logger.Warn("metadata extraction failed",
			"page_id", page.ID,
			"error", err,
		)
		return nil
	}
	return meta
}

func randomSuffix() string {
	buf := make([]byte, 3)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
