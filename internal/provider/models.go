package provider

import (
	"time"

	"pagesync/internal/domain"
)

// Wire types for the provider API. Kept separate from domain types so
// the rest of the engine never sees provider JSON quirks.

type queryRequest struct {
	Filter      *queryFilter `json:"filter,omitempty"`
	StartCursor string       `json:"start_cursor,omitempty"`
	PageSize    int          `json:"page_size"`
}

type queryFilter struct {
	Timestamp      string          `json:"timestamp"`
	LastEditedTime timestampFilter `json:"last_edited_time"`
}

type timestampFilter struct {
	After time.Time `json:"after"`
}

type queryResponse struct {
	Results    []pageObject `json:"results"`
	HasMore    bool         `json:"has_more"`
	NextCursor *string      `json:"next_cursor"`
}

type pageObject struct {
	ID             string                  `json:"id"`
	CreatedTime    time.Time               `json:"created_time"`
	LastEditedTime time.Time               `json:"last_edited_time"`
	Parent         parentObject            `json:"parent"`
	Properties     map[string]wireProperty `json:"properties"`
}

type parentObject struct {
	Type         string `json:"type"`
	DataSourceID string `json:"database_id"`
}

type wireProperty struct {
	Type        string         `json:"type"`
	Title       []wireRichText `json:"title,omitempty"`
	RichText    []wireRichText `json:"rich_text,omitempty"`
	Select      *wireOption    `json:"select,omitempty"`
	MultiSelect []wireOption   `json:"multi_select,omitempty"`
	People      []wirePerson   `json:"people,omitempty"`
	UniqueID    *wireUniqueID  `json:"unique_id,omitempty"`
	Checkbox    *bool          `json:"checkbox,omitempty"`
	Date        *wireDate      `json:"date,omitempty"`
}

type wireRichText struct {
	PlainText string `json:"plain_text"`
}

type wireOption struct {
	Name string `json:"name"`
}

type wirePerson struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type wireUniqueID struct {
	Prefix *string `json:"prefix"`
	Number int64   `json:"number"`
}

type wireDate struct {
	Start string `json:"start"`
}

type updateRequest struct {
	Properties map[string]wireProperty `json:"properties"`
}

type blockListResponse struct {
	Results    []blockObject `json:"results"`
	HasMore    bool          `json:"has_more"`
	NextCursor *string       `json:"next_cursor"`
}

type blockObject struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	HasChildren  bool           `json:"has_children"`
	Paragraph    *richTextBlock `json:"paragraph,omitempty"`
	Heading1     *richTextBlock `json:"heading_1,omitempty"`
	Heading2     *richTextBlock `json:"heading_2,omitempty"`
	Heading3     *richTextBlock `json:"heading_3,omitempty"`
	BulletedItem *richTextBlock `json:"bulleted_list_item,omitempty"`
	NumberedItem *richTextBlock `json:"numbered_list_item,omitempty"`
	Quote        *richTextBlock `json:"quote,omitempty"`
	Code         *codeBlock     `json:"code,omitempty"`
}

type richTextBlock struct {
	RichText []wireRichText `json:"rich_text"`
}

type codeBlock struct {
	RichText []wireRichText `json:"rich_text"`
	Language string         `json:"language"`
}

func (p pageObject) toDomain() domain.SourcePage {
	page := domain.SourcePage{
		ID:             p.ID,
		DataSourceID:   p.Parent.DataSourceID,
		CreatedTime:    p.CreatedTime,
		LastEditedTime: p.LastEditedTime,
		Properties:     make(map[string]domain.Property, len(p.Properties)),
	}
	for name, wp := range p.Properties {
		page.Properties[name] = wp.toDomain()
	}
	return page
}

func (w wireProperty) toDomain() domain.Property {
	prop := domain.Property{Type: domain.PropertyType(w.Type)}

	switch prop.Type {
	case domain.PropertyTitle:
		prop.Title = toDomainRichText(w.Title)
	case domain.PropertyRichText:
		prop.RichText = toDomainRichText(w.RichText)
	case domain.PropertySelect:
		if w.Select != nil {
			prop.Select = &domain.SelectOption{Name: w.Select.Name}
		}
	case domain.PropertyMultiSelect:
		for _, o := range w.MultiSelect {
			prop.MultiSelect = append(prop.MultiSelect, domain.SelectOption{Name: o.Name})
		}
	case domain.PropertyPeople:
		for _, p := range w.People {
			prop.People = append(prop.People, domain.Person{ID: p.ID, Name: p.Name})
		}
	case domain.PropertyUniqueID:
		if w.UniqueID != nil {
			uid := domain.UniqueID{Number: w.UniqueID.Number}
			if w.UniqueID.Prefix != nil {
				uid.Prefix = *w.UniqueID.Prefix
			}
			prop.UniqueID = &uid
		}
	case domain.PropertyCheckbox:
		prop.Checkbox = w.Checkbox
	case domain.PropertyDate:
		if w.Date != nil {
			if start, ok := parseDate(w.Date.Start); ok {
				prop.Date = &domain.DateValue{Start: start}
			}
		}
	}

	return prop
}

func toDomainRichText(rts []wireRichText) []domain.RichText {
	out := make([]domain.RichText, 0, len(rts))
	for _, rt := range rts {
		out = append(out, domain.RichText{PlainText: rt.PlainText})
	}
	return out
}

// parseDate accepts both full timestamps and date-only values, which the
// provider emits depending on whether the property carries a time part.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
