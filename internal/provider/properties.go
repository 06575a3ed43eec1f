package provider

import (
	"fmt"
	"strconv"
	"strings"

	"pagesync/internal/domain"
)

// UntitledFallback is returned by Title when a page has no usable title
// property.
const UntitledFallback = "Untitled"

// PropertyValues extracts the named property as a flat list of strings.
// Extraction is polymorphic over the property variants; unrecognized
// variants yield an empty list and a warning, never an error.
func (c *Client) PropertyValues(page *domain.SourcePage, name string) []string {
	prop, ok := page.Properties[name]
	if !ok {
		return nil
	}

	switch prop.Type {
	case domain.PropertyMultiSelect:
		values := make([]string, 0, len(prop.MultiSelect))
		for _, opt := range prop.MultiSelect {
			values = append(values, opt.Name)
		}
		return values
	case domain.PropertySelect:
		if prop.Select == nil || prop.Select.Name == "" {
			return nil
		}
		return []string{prop.Select.Name}
	case domain.PropertyPeople:
		values := make([]string, 0, len(prop.People))
		for _, person := range prop.People {
			if person.Name != "" {
				values = append(values, person.Name)
			} else {
				values = append(values, person.ID)
			}
		}
		return values
	case domain.PropertyRichText:
		text := plainText(prop.RichText)
		if text == "" {
			return nil
		}
		return []string{text}
	default:
		c.logger.Warn("unsupported property type for value extraction",
			"page_id", page.ID,
			"property", name,
			"type", prop.Type,
		)
		return nil
	}
}

// Title finds the property whose type is title, regardless of its name,
// and concatenates its text runs.
func (c *Client) Title(page *domain.SourcePage) string {
	for _, prop := range page.Properties {
		if prop.Type != domain.PropertyTitle {
			continue
		}
		if text := plainText(prop.Title); text != "" {
			return text
		}
	}
	return UntitledFallback
}

// UniqueID finds a unique-id typed property and formats it as
// "{prefix}-{number}", or the bare number when no prefix is set. Nil
// when the page has no such property.
func (c *Client) UniqueID(page *domain.SourcePage) *string {
	for _, prop := range page.Properties {
		if prop.Type != domain.PropertyUniqueID || prop.UniqueID == nil {
			continue
		}
		var formatted string
		if prop.UniqueID.Prefix != "" {
			formatted = fmt.Sprintf("%s-%d", prop.UniqueID.Prefix, prop.UniqueID.Number)
		} else {
			formatted = strconv.FormatInt(prop.UniqueID.Number, 10)
		}
		return &formatted
	}
	return nil
}

func plainText(rts []domain.RichText) string {
	var sb strings.Builder
	for _, rt := range rts {
		sb.WriteString(rt.PlainText)
	}
	return strings.TrimSpace(sb.String())
}
