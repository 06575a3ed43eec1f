package policy

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"pagesync/internal/domain"
)

// PropertyPublishPolicy gates visibility on one page property. A
// checkbox property publishes when checked. A select property publishes
// when its value is one of Values (any non-empty value when Values is
// empty). A page missing the property stays private.
type PropertyPublishPolicy struct {
	Property string
	Values   []string
}

func (p PropertyPublishPolicy) IsPublic(page *domain.SourcePage) bool {
	prop, ok := page.Properties[p.Property]
	if !ok {
		return false
	}

	switch prop.Type {
	case domain.PropertyCheckbox:
		return prop.Checkbox != nil && *prop.Checkbox
	case domain.PropertySelect:
		if prop.Select == nil || prop.Select.Name == "" {
			return false
		}
		if len(p.Values) == 0 {
			return true
		}
		for _, v := range p.Values {
			if strings.EqualFold(v, prop.Select.Name) {
				return true
			}
		}
	}
	return false
}

// PropertyDatePolicy reads the publish timestamp from a date property.
type PropertyDatePolicy struct {
	Property string
}

func (p PropertyDatePolicy) PublishDate(page *domain.SourcePage) *time.Time {
	prop, ok := page.Properties[p.Property]
	if !ok || prop.Type != domain.PropertyDate || prop.Date == nil {
		return nil
	}
	start := prop.Date.Start
	return &start
}

// PropertySlugPolicy reads an explicit slug from a rich-text property
// and normalizes it to URL-safe form.
type PropertySlugPolicy struct {
	Property string
}

func (p PropertySlugPolicy) Slug(page *domain.SourcePage) *string {
	prop, ok := page.Properties[p.Property]
	if !ok || prop.Type != domain.PropertyRichText {
		return nil
	}

	var sb strings.Builder
	for _, rt := range prop.RichText {
		sb.WriteString(rt.PlainText)
	}
	raw := strings.TrimSpace(sb.String())
	if raw == "" {
		return nil
	}

	normalized := slug.Make(raw)
	return &normalized
}

// PropertyMetaExtractor collects the named properties into a flat meta
// map. Single-valued properties store a string, multi-valued a string
// list. Unsupported property types fail the extraction; the builder
// downgrades that to nil meta.
type PropertyMetaExtractor struct {
	Properties []string
}

func (p PropertyMetaExtractor) Extract(page *domain.SourcePage) (domain.Meta, error) {
	meta := domain.Meta{}

	for _, name := range p.Properties {
		prop, ok := page.Properties[name]
		if !ok {
			continue
		}

		switch prop.Type {
		case domain.PropertyRichText:
			var sb strings.Builder
			for _, rt := range prop.RichText {
				sb.WriteString(rt.PlainText)
			}
			if text := strings.TrimSpace(sb.String()); text != "" {
				meta[name] = text
			}
		case domain.PropertySelect:
			if prop.Select != nil && prop.Select.Name != "" {
				meta[name] = prop.Select.Name
			}
		case domain.PropertyMultiSelect:
			values := make([]string, 0, len(prop.MultiSelect))
			for _, opt := range prop.MultiSelect {
				values = append(values, opt.Name)
			}
			if len(values) > 0 {
				meta[name] = values
			}
		case domain.PropertyCheckbox:
			if prop.Checkbox != nil {
				meta[name] = *prop.Checkbox
			}
		case domain.PropertyDate:
			if prop.Date != nil {
				meta[name] = prop.Date.Start.Format(time.RFC3339)
			}
		default:
			return nil, fmt.Errorf("meta property %q has unsupported type %q", name, prop.Type)
		}
	}

	if len(meta) == 0 {
		return nil, nil
	}
	return meta, nil
}
