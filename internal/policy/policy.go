// Package policy holds the per-datasource publishing rules evaluated
// while building a post from a provider page. Each rule is a small named
// interface with a documented default used when a datasource leaves it
// unconfigured.
package policy

import (
	"time"

	"pagesync/internal/domain"
)

// PublishPolicy gates public visibility. Default: AlwaysPublic.
type PublishPolicy interface {
	IsPublic(page *domain.SourcePage) bool
}

// PublishDatePolicy supplies the publish timestamp for public pages.
// A nil result falls back to the page's last-edited time. Default: nil.
type PublishDatePolicy interface {
	PublishDate(page *domain.SourcePage) *time.Time
}

// SlugPolicy supplies an explicit slug for a page. A nil result falls
// back to the slugified title. Default: nil.
type SlugPolicy interface {
	Slug(page *domain.SourcePage) *string
}

// MetadataExtractor produces the optional structured meta blob. Errors
// never abort a sync; the builder downgrades them to nil meta.
type MetadataExtractor interface {
	Extract(page *domain.SourcePage) (domain.Meta, error)
}

// Policies bundles every rule for one datasource.
type Policies struct {
	Publish     PublishPolicy
	PublishDate PublishDatePolicy
	Slug        SlugPolicy
	Meta        MetadataExtractor
}

// AlwaysPublic publishes every page. This is the default gate.
type AlwaysPublic struct{}

func (AlwaysPublic) IsPublic(*domain.SourcePage) bool { return true }

// NoPublishDate always defers to the page's last-edited time.
type NoPublishDate struct{}

func (NoPublishDate) PublishDate(*domain.SourcePage) *time.Time { return nil }

// NoSlug always defers to the slugified title.
type NoSlug struct{}

func (NoSlug) Slug(*domain.SourcePage) *string { return nil }

// NoMetadata produces no meta blob.
type NoMetadata struct{}

func (NoMetadata) Extract(*domain.SourcePage) (domain.Meta, error) { return nil, nil }
