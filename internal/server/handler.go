package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"pagesync/internal/domain"
	"pagesync/internal/provider"
)

const signatureHeader = "X-Webhook-Signature"

// webhookEvent is the provider-originated notification payload.
type webhookEvent struct {
	Type         string `json:"type"`
	PageID       string `json:"page_id"`
	DataSourceID string `json:"datasource_id"`
}

// handledEventTypes are the notifications that map to a page sync.
// Everything else is acknowledged and ignored.
var handledEventTypes = map[string]bool{
	"page.created":            true,
	"page.content_updated":    true,
	"page.properties_updated": true,
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "read body"})
		return
	}

	if !s.verifySignature(body, r.Header.Get(signatureHeader)) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "invalid signature"})
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}

	if !handledEventTypes[event.Type] || event.PageID == "" {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ignored"})
		return
	}

	syncer, ok := s.syncers[event.DataSourceID]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "unknown datasource"})
		return
	}

	page, err := s.pages.GetPage(r.Context(), event.PageID)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "page not found"})
			return
		}
		s.logger.Error("failed to fetch webhook page", "page_id", event.PageID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "fetch page"})
		return
	}

	processed, err := syncer.ProcessPage(r.Context(), page)
	if err != nil {
		s.logger.Error("failed to process webhook page", "page_id", event.PageID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "process page"})
		return
	}

	status := "skipped"
	if processed {
		status = "processed"
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": status, "page_id": event.PageID})
}

func (s *Server) verifySignature(body []byte, signature string) bool {
	if s.webhookSecret == "" {
		return true
	}
	signature = strings.TrimPrefix(signature, "sha256=")

	mac := hmac.New(sha256.New, []byte(s.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

type syncResponse struct {
	Status    domain.SyncStatus    `json:"status"`
	Summaries []domain.SyncSummary `json:"summaries"`
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	if !s.authorizeSync(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
		return
	}

	opts, err := parseSyncOptions(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}

	targets := make([]Syncer, 0, len(s.syncers))
	if id := r.URL.Query().Get("datasource"); id != "" {
		syncer, ok := s.syncers[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "unknown datasource"})
			return
		}
		targets = append(targets, syncer)
	} else {
		for _, syncer := range s.syncers {
			targets = append(targets, syncer)
		}
	}

	resp := syncResponse{Status: domain.SyncStatusOK}
	for _, syncer := range targets {
		summary, err := syncer.SyncDataSource(r.Context(), opts)
		if err != nil {
			s.logger.Error("sync failed",
				"datasource", syncer.DataSourceID(),
				"error", err,
			)
		}
		if summary != nil {
			if summary.Status == domain.SyncStatusError {
				resp.Status = domain.SyncStatusError
			}
			resp.Summaries = append(resp.Summaries, *summary)
		}
	}

	status := http.StatusOK
	if resp.Status == domain.SyncStatusError {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, resp)
}

func (s *Server) authorizeSync(r *http.Request) bool {
	if s.syncSecret == "" {
		return true
	}
	secret := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if secret == "" {
		secret = r.URL.Query().Get("secret")
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(s.syncSecret)) == 1
}

func parseSyncOptions(r *http.Request) (domain.SyncOptions, error) {
	q := r.URL.Query()
	opts := domain.SyncOptions{
		SyncAll: q.Get("all") == "true",
		Wipe:    q.Get("wipe") == "true",
	}

	if raw := q.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return opts, errors.New("invalid since, expected RFC3339")
		}
		opts.Since = &since
	}

	return opts, nil
}
