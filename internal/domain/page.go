package domain

import "time"

// PropertyType tags the variant carried by a Property.
type PropertyType string

const (
	PropertyTitle       PropertyType = "title"
	PropertyRichText    PropertyType = "rich_text"
	PropertySelect      PropertyType = "select"
	PropertyMultiSelect PropertyType = "multi_select"
	PropertyPeople      PropertyType = "people"
	PropertyUniqueID    PropertyType = "unique_id"
	PropertyCheckbox    PropertyType = "checkbox"
	PropertyDate        PropertyType = "date"
)

// Property is one typed value from a page's property bag. Exactly one
// variant field is populated, selected by Type. Unknown types keep the
// raw Type and leave every variant nil.
type Property struct {
	Type        PropertyType
	Title       []RichText
	RichText    []RichText
	Select      *SelectOption
	MultiSelect []SelectOption
	People      []Person
	UniqueID    *UniqueID
	Checkbox    *bool
	Date        *DateValue
}

type RichText struct {
	PlainText string
}

type SelectOption struct {
	Name string
}

type Person struct {
	ID   string
	Name string
}

type UniqueID struct {
	Prefix string
	Number int64
}

type DateValue struct {
	Start time.Time
}

// SourcePage is one content item as read from the provider. It is
// ephemeral: never persisted directly, rebuilt on every sync.
type SourcePage struct {
	ID             string
	DataSourceID   string
	CreatedTime    time.Time
	LastEditedTime time.Time
	Properties     map[string]Property
}

// PageBatch is one provider round trip's worth of query results.
type PageBatch struct {
	Pages      []SourcePage
	NextCursor string
	HasMore    bool
}
