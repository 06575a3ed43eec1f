package policy

import "pagesync/internal/config"

// FromDataSource compiles a datasource's property mappings into its
// policy set, filling defaults for anything left unconfigured.
func FromDataSource(ds config.DataSource) Policies {
	p := Policies{
		Publish:     AlwaysPublic{},
		PublishDate: NoPublishDate{},
		Slug:        NoSlug{},
		Meta:        NoMetadata{},
	}

	if ds.PublishProperty != "" {
		p.Publish = PropertyPublishPolicy{
			Property: ds.PublishProperty,
			Values:   ds.PublishValues,
		}
	}
	if ds.PublishDateProperty != "" {
		p.PublishDate = PropertyDatePolicy{Property: ds.PublishDateProperty}
	}
	if ds.SlugProperty != "" {
		p.Slug = PropertySlugPolicy{Property: ds.SlugProperty}
	}
	if len(ds.MetaProperties) > 0 {
		p.Meta = PropertyMetaExtractor{Properties: ds.MetaProperties}
	}

	return p
}
