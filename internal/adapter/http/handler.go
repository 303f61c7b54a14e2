package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sp-provision/internal/core/domain"
	"sp-provision/internal/core/port"
)

// Handler is the inbound HTTP adapter. Each POST to the provision route
// triggers one run of the configured plan, the way a function invocation
// would.
type Handler struct {
	svc    port.ProvisionUseCase
	plan   domain.Plan
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.ProvisionUseCase, plan domain.Plan, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, plan: plan, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/provision", h.handleProvision)
		r.Get("/healthz", h.handleHealth)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
