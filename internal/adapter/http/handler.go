package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-manager/internal/config/configs"
	"campaign-manager/internal/core/port"
)

// Pinger reports whether the backing store is reachable. *pgxpool.Pool
// satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign and advertisement use cases and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	campaigns port.CampaignUseCase
	ads       port.AdvertisementUseCase
	db        Pinger
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. db may be nil,
// in which case /healthz always reports ok.
func NewHandler(
	campaigns port.CampaignUseCase,
	ads port.AdvertisementUseCase,
	db Pinger,
	logger *slog.Logger,
	cfg configs.HTTP,
) *Handler {
	h := &Handler{campaigns: campaigns, ads: ads, db: db, logger: logger}
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))
	r.Use(collectMetrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Route("/{campaignID:[0-9]+}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Put("/", h.handleUpdateCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Get("/advertisements", h.handleListAdvertisements)
				r.Post("/advertisements", h.handleCreateAdvertisement)
			})
		})
		r.Route("/advertisements/{adID:[0-9]+}", func(r chi.Router) {
			r.Get("/", h.handleGetAdvertisement)
			r.Put("/", h.handleUpdateAdvertisement)
			r.Delete("/", h.handleDeleteAdvertisement)
		})
	})
	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// handleHealth pings the store. It answers 503 when the ping fails.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.WarnContext(r.Context(), "health check failed",
				slog.Any("error", err), slog.String("request_id", requestIDFrom(r.Context())))
			h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
