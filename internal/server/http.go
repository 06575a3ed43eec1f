// Package server exposes the two sync triggers: the provider webhook
// (single-page path) and the authenticated poll endpoint (batch path),
// plus health and metrics.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"pagesync/internal/domain"
)

// Syncer is one datasource's orchestrator.
type Syncer interface {
	DataSourceID() string
	SyncDataSource(ctx context.Context, opts domain.SyncOptions) (*domain.SyncSummary, error)
	ProcessPage(ctx context.Context, page *domain.SourcePage) (bool, error)
}

// PageFetcher resolves a webhook's page id into a full page.
type PageFetcher interface {
	GetPage(ctx context.Context, pageID string) (*domain.SourcePage, error)
}

type Config struct {
	WebhookSecret string
	SyncSecret    string
}

type Server struct {
	pages          PageFetcher
	syncers        map[string]Syncer
	webhookSecret  string
	syncSecret     string
	metricsHandler http.Handler
	logger         *slog.Logger
	mux            *http.ServeMux
}

func New(cfg Config, pages PageFetcher, syncers []Syncer, metricsHandler http.Handler, logger *slog.Logger) *Server {
	byID := make(map[string]Syncer, len(syncers))
	for _, s := range syncers {
		byID[s.DataSourceID()] = s
	}

	s := &Server{
		pages:          pages,
		syncers:        byID,
		webhookSecret:  cfg.WebhookSecret,
		syncSecret:     cfg.SyncSecret,
		metricsHandler: metricsHandler,
		logger:         logger.With("component", "server"),
		mux:            http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:    addr,
		Handler: s.mux,
	}
	go func() {
		<-ctx.Done()
		_ = httpSrv.Shutdown(context.Background())
	}()
	s.logger.Info("listening", "addr", addr)
	return httpSrv.ListenAndServe()
}
