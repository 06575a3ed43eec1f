package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"pagesync/internal/domain"
)

const maxPageSize = 100

// Config holds provider client configuration.
type Config struct {
	BaseURL        string
	Token          string
	Version        string
	Timeout        time.Duration
	PageSize       int
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the external page-and-database provider. Transport
// failures and retryable statuses are retried with exponential backoff;
// auth and not-found responses are terminal. Retry lives here so the
// builder and orchestrator stay retry-agnostic.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	version        string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a provider client.
func New(cfg Config, logger *slog.Logger) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		token:          cfg.Token,
		version:        cfg.Version,
		pageSize:       pageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "provider"),
	}
}

// QueryDataSource runs one paginated query round trip. The caller loops
// with the returned cursor until HasMore is false. When modifiedAfter is
// set, only pages edited after that instant are returned.
func (c *Client) QueryDataSource(ctx context.Context, dataSourceID string, modifiedAfter *time.Time, cursor string) (*domain.PageBatch, error) {
	req := queryRequest{
		StartCursor: cursor,
		PageSize:    c.pageSize,
	}
	if modifiedAfter != nil {
		req.Filter = &queryFilter{
			Timestamp:      "last_edited_time",
			LastEditedTime: timestampFilter{After: *modifiedAfter},
		}
	}

	var resp queryResponse
	path := fmt.Sprintf("/databases/%s/query", dataSourceID)
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("query datasource %s: %w", dataSourceID, err)
	}

	batch := &domain.PageBatch{HasMore: resp.HasMore}
	if resp.NextCursor != nil {
		batch.NextCursor = *resp.NextCursor
	}
	for _, p := range resp.Results {
		batch.Pages = append(batch.Pages, p.toDomain())
	}

	c.logger.Debug("queried datasource",
		"datasource_id", dataSourceID,
		"pages", len(batch.Pages),
		"has_more", batch.HasMore,
	)

	return batch, nil
}

// GetPage fetches a single page by id. Returns ErrNotFound when the id
// does not resolve to a database-backed page.
func (c *Client) GetPage(ctx context.Context, pageID string) (*domain.SourcePage, error) {
	var obj pageObject
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, &obj); err != nil {
		return nil, fmt.Errorf("get page %s: %w", pageID, err)
	}

	if obj.Parent.Type != "database_id" {
		return nil, fmt.Errorf("page %s is not database-backed: %w", pageID, ErrNotFound)
	}

	page := obj.toDomain()
	return &page, nil
}

// UpdateProperty writes value into the named rich-text property. The
// write is advisory: provider failures are logged and swallowed. Only
// auth failures propagate, since a broken credential will fail every
// subsequent call.
func (c *Client) UpdateProperty(ctx context.Context, pageID, property, value string) error {
	req := updateRequest{
		Properties: map[string]wireProperty{
			property: {
				Type:     "rich_text",
				RichText: []wireRichText{{PlainText: value}},
			},
		},
	}

	err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, req, nil)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrAuth) {
		return fmt.Errorf("update property %q on page %s: %w", property, pageID, err)
	}

	c.logger.Warn("property write-back failed",
		"page_id", pageID,
		"property", property,
		"error", err,
	)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err := c.doOnce(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		if !retryable(err) || attempt == c.maxAttempts {
			return err
		}
		lastErr = err

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"method", method,
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte, out any) error {
	var body *bytes.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if c.version != "" {
		req.Header.Set("Provider-Version", c.version)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrAuth
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		apiErr := &apiError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// retryable reports whether the request may be attempted again. Auth and
// not-found are terminal; rate limits and server errors are not.
func retryable(err error) bool {
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrNotFound) {
		return false
	}
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests || apiErr.Status >= 500
	}
	return true
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
