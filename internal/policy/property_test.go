package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"pagesync/internal/config"
	"pagesync/internal/domain"
	"pagesync/testdata/utils"
)

type PolicyTestSuite struct {
	suite.Suite
}

func TestPolicyTestSuite(t *testing.T) {
	suite.Run(t, new(PolicyTestSuite))
}

func page(props map[string]domain.Property) *domain.SourcePage {
	return &domain.SourcePage{ID: "p1", Properties: props}
}

func (s *PolicyTestSuite) TestPublishPolicy_Checkbox() {
	policy := PropertyPublishPolicy{Property: "Published"}

	s.True(policy.IsPublic(page(map[string]domain.Property{
		"Published": {Type: domain.PropertyCheckbox, Checkbox: utils.Ptr(true)},
	})))
	s.False(policy.IsPublic(page(map[string]domain.Property{
		"Published": {Type: domain.PropertyCheckbox, Checkbox: utils.Ptr(false)},
	})))
	s.False(policy.IsPublic(page(map[string]domain.Property{
		"Published": {Type: domain.PropertyCheckbox},
	})))
}

func (s *PolicyTestSuite) TestPublishPolicy_MissingPropertyIsPrivate() {
	policy := PropertyPublishPolicy{Property: "Published"}
	s.False(policy.IsPublic(page(nil)))
}

func (s *PolicyTestSuite) TestPublishPolicy_SelectWithValues() {
	policy := PropertyPublishPolicy{Property: "Status", Values: []string{"Live", "Archived"}}

	live := page(map[string]domain.Property{
		"Status": {Type: domain.PropertySelect, Select: &domain.SelectOption{Name: "live"}},
	})
	draft := page(map[string]domain.Property{
		"Status": {Type: domain.PropertySelect, Select: &domain.SelectOption{Name: "Draft"}},
	})

	// Matching is case-insensitive.
	s.True(policy.IsPublic(live))
	s.False(policy.IsPublic(draft))
}

func (s *PolicyTestSuite) TestPublishPolicy_SelectWithoutValues() {
	policy := PropertyPublishPolicy{Property: "Status"}

	anyValue := page(map[string]domain.Property{
		"Status": {Type: domain.PropertySelect, Select: &domain.SelectOption{Name: "whatever"}},
	})
	empty := page(map[string]domain.Property{
		"Status": {Type: domain.PropertySelect},
	})

	s.True(policy.IsPublic(anyValue))
	s.False(policy.IsPublic(empty))
}

func (s *PolicyTestSuite) TestDatePolicy() {
	policy := PropertyDatePolicy{Property: "Date"}
	when := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	got := policy.PublishDate(page(map[string]domain.Property{
		"Date": {Type: domain.PropertyDate, Date: &domain.DateValue{Start: when}},
	}))
	s.Require().NotNil(got)
	s.Equal(when, *got)

	s.Nil(policy.PublishDate(page(nil)))
	s.Nil(policy.PublishDate(page(map[string]domain.Property{
		"Date": {Type: domain.PropertyDate},
	})))
}

func (s *PolicyTestSuite) TestSlugPolicy_NormalizesRawText() {
	policy := PropertySlugPolicy{Property: "Slug"}

	got := policy.Slug(page(map[string]domain.Property{
		"Slug": {Type: domain.PropertyRichText, RichText: []domain.RichText{
			{PlainText: "My Great "},
			{PlainText: "Post!"},
		}},
	}))
	s.Require().NotNil(got)
	s.Equal("my-great-post", *got)
}

func (s *PolicyTestSuite) TestSlugPolicy_EmptyOrWrongTypeIsNil() {
	policy := PropertySlugPolicy{Property: "Slug"}

	s.Nil(policy.Slug(page(nil)))
	s.Nil(policy.Slug(page(map[string]domain.Property{
		"Slug": {Type: domain.PropertyRichText, RichText: []domain.RichText{{PlainText: "  "}}},
	})))
	s.Nil(policy.Slug(page(map[string]domain.Property{
		"Slug": {Type: domain.PropertySelect, Select: &domain.SelectOption{Name: "nope"}},
	})))
}

func (s *PolicyTestSuite) TestMetaExtractor_CollectsConfiguredProperties() {
	extractor := PropertyMetaExtractor{Properties: []string{"Description", "Category", "Tags", "Featured", "Date"}}
	when := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	meta, err := extractor.Extract(page(map[string]domain.Property{
		"Description": {Type: domain.PropertyRichText, RichText: []domain.RichText{{PlainText: "A post."}}},
		"Category":    {Type: domain.PropertySelect, Select: &domain.SelectOption{Name: "engineering"}},
		"Tags": {Type: domain.PropertyMultiSelect, MultiSelect: []domain.SelectOption{
			{Name: "go"}, {Name: "sync"},
		}},
		"Featured": {Type: domain.PropertyCheckbox, Checkbox: utils.Ptr(true)},
		"Date":     {Type: domain.PropertyDate, Date: &domain.DateValue{Start: when}},
		"Ignored":  {Type: domain.PropertyRichText, RichText: []domain.RichText{{PlainText: "not configured"}}},
	}))

	s.NoError(err)
	s.Equal(domain.Meta{
		"Description": "A post.",
		"Category":    "engineering",
		"Tags":        []string{"go", "sync"},
		"Featured":    true,
		"Date":        "2026-08-30T12:00:00Z",
	}, meta)
}

func (s *PolicyTestSuite) TestMetaExtractor_UnsupportedTypeFails() {
	extractor := PropertyMetaExtractor{Properties: []string{"People"}}

	_, err := extractor.Extract(page(map[string]domain.Property{
		"People": {Type: domain.PropertyPeople, People: []domain.Person{{ID: "u1"}}},
	}))

	s.Error(err)
}

func (s *PolicyTestSuite) TestMetaExtractor_EmptyResultIsNil() {
	extractor := PropertyMetaExtractor{Properties: []string{"Description"}}

	meta, err := extractor.Extract(page(nil))

	s.NoError(err)
	s.Nil(meta)
}

func (s *PolicyTestSuite) TestFromDataSource_Defaults() {
	p := FromDataSource(config.DataSource{ID: "ds-1"})

	s.IsType(AlwaysPublic{}, p.Publish)
	s.IsType(NoPublishDate{}, p.PublishDate)
	s.IsType(NoSlug{}, p.Slug)
	s.IsType(NoMetadata{}, p.Meta)
}

func (s *PolicyTestSuite) TestFromDataSource_Configured() {
	p := FromDataSource(config.DataSource{
		ID:                  "ds-1",
		PublishProperty:     "Published",
		PublishValues:       []string{"Live"},
		PublishDateProperty: "Date",
		SlugProperty:        "Slug",
		MetaProperties:      []string{"Description"},
	})

	s.Equal(PropertyPublishPolicy{Property: "Published", Values: []string{"Live"}}, p.Publish)
	s.Equal(PropertyDatePolicy{Property: "Date"}, p.PublishDate)
	s.Equal(PropertySlugPolicy{Property: "Slug"}, p.Slug)
	s.Equal(PropertyMetaExtractor{Properties: []string{"Description"}}, p.Meta)
}
