// Package http exposes the webhook and operational HTTP endpoints.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avetono/jsonbot/internal/logging"
	"github.com/avetono/jsonbot/pkg/adapters/telegram"
)

// Options configures the handler.
type Options struct {
	// Registry, when set, serves Prometheus metrics on /metrics.
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// NewHandler builds the HTTP surface: the Telegram webhook receiver plus
// health and metrics endpoints.
func NewHandler(handler telegram.Handler, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/telegram/webhook", webhook(handler, logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if opts.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	return r
}

// webhook receives one update per request. It answers 200 even when
// handling fails: Telegram redelivers non-200 responses forever, and a
// poisoned update must not wedge the queue.
func webhook(handler telegram.Handler, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw telegram.Update
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			logger.Warn("webhook: undecodable update", "error", err)
			w.WriteHeader(http.StatusOK)
			return
		}

		upd, keep := telegram.ConvertUpdate(raw)
		if keep {
			if err := handler.HandleUpdate(r.Context(), upd); err != nil {
				logger.Error("webhook: failed to handle update",
					"update_id", raw.UpdateID,
					"chat_id", upd.ChatID,
					"error", err,
				)
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}
