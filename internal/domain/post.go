package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PostRecord is the canonical persisted form of a provider page.
//
// Identity is (DataSourceID, PageID). Slug is unique within a datasource
// whenever non-nil. PublishAt is nil exactly when the page is not
// publicly visible, in which case Slug is nil too. UpdatedAt always
// carries the provider's last-edited time, never sync wall-clock.
type PostRecord struct {
	DataSourceID string     `db:"datasource_id" json:"datasource_id"`
	PageID       string     `db:"page_id" json:"page_id"`
	Title        string     `db:"title" json:"title"`
	Slug         *string    `db:"slug" json:"slug"`
	Content      string     `db:"content" json:"content"`
	PublishAt    *time.Time `db:"publish_at" json:"publish_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
	Tags         []string   `db:"-" json:"tags,omitempty"`
	Authors      []string   `db:"-" json:"authors,omitempty"`
	Meta         Meta       `db:"meta" json:"meta,omitempty"`
}

// Meta is the optional structured metadata blob, stored as jsonb.
// A nil map persists as SQL NULL.
type Meta map[string]any

func (m Meta) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *Meta) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("scan meta: unsupported type %T", src)
	}
	return json.Unmarshal(b, m)
}
