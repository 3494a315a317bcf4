package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/huangweilong/personal-website-backend/internal/models"
	"go.uber.org/zap"
)

// StoreStatus is the interface that wraps store introspection for the
// health and debug endpoints.
type StoreStatus interface {
	// Connected reports whether the store connection is established.
	Connected() bool
	// Name returns the database name.
	Name() string
	// Collections returns the collection names served by this API.
	Collections() []string
	// Stats gathers the debug snapshot of the database layout.
	Stats(ctx context.Context) (*models.DebugInfo, error)
}

// HealthHandler handles liveness and database introspection requests
type HealthHandler struct {
	BaseHandler
	store StoreStatus
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store StoreStatus, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		store:       store,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers the health and debug routes
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/health", h.Health)
	r.Get("/api/debug", h.Debug)
}

// Health handles GET /api/health
// @Summary Health check
// @Description Liveness plus store-connectivity status; always 200
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /api/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:  "ok",
		Message: "API server is running",
		Database: models.DatabaseHealth{
			Connected:   h.store.Connected(),
			Name:        h.store.Name(),
			Collections: h.store.Collections(),
		},
	})
}

// Debug handles GET /api/debug
// @Summary Database debug info
// @Description Collection inventory with document counts and sample field names
// @Tags health
// @Produce json
// @Success 200 {object} models.DebugInfo
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/debug [get]
func (h *HealthHandler) Debug(w http.ResponseWriter, r *http.Request) {
	info, err := h.store.Stats(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "", "Debug error")
		return
	}

	h.respondJSON(w, http.StatusOK, info)
}
