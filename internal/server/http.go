package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/fact-frenzy/internal/api"
	"github.com/gokatarajesh/fact-frenzy/internal/config"
	"github.com/gokatarajesh/fact-frenzy/internal/kv"
	"github.com/gokatarajesh/fact-frenzy/internal/logging"
)

const readinessTimeout = 2 * time.Second

// NewHTTPServer wires health, readiness, metrics and the game API.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, store kv.Store, handlers *api.Handlers) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewHandler(logger, store, handlers),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// NewHandler builds the root handler; split out so tests can drive it with httptest.
func NewHandler(logger zerolog.Logger, store kv.Store, handlers *api.Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			l := logging.FromContext(r.Context())
			l.Error().Err(err).Msg("store ping failed")
			http.Error(w, "upstream error", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	handlers.Register(mux)

	return logging.Middleware(logger)(api.Recover(logger)(mux))
}
