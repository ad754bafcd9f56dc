package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ModuleCounter reports how many modules are loaded
type ModuleCounter interface {
	Len() int
}

// HealthHandler reports liveness
type HealthHandler struct {
	BaseHandler
	modules ModuleCounter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(modules ModuleCounter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		modules:     modules,
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Health)
}

// Health handles GET /healthz
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /healthz [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"modules": h.modules.Len(),
	})
}
