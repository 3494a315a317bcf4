package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/huangweilong/personal-website-backend/internal/models"
	"go.uber.org/zap"
)

// MediaService is the interface that wraps methods for catalog business logic.
type MediaService interface {
	// List retrieves all entries of the given kind sorted by date, newest
	// first. An empty catalog yields an empty slice, not an error.
	List(ctx context.Context, kind models.MediaKind) ([]models.MediaEntry, error)
	// GetByID retrieves a single entry of the given kind. Returns
	// models.ErrNotFound when no document matches the identifier.
	GetByID(ctx context.Context, kind models.MediaKind, id string) (*models.MediaEntry, error)
}

// MediaHandler handles HTTP requests for the podcast and video catalogs
type MediaHandler struct {
	BaseHandler
	service MediaService
}

// NewMediaHandler creates a new media catalog handler
func NewMediaHandler(svc MediaService, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all media catalog routes
func (h *MediaHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/podcasts", h.ListPodcasts)
	r.Get("/api/podcasts/{id}", h.GetPodcast)
	r.Get("/api/videos", h.ListVideos)
	r.Get("/api/videos/{id}", h.GetVideo)
}

// ListPodcasts handles GET /api/podcasts
// @Summary List podcasts
// @Description Get all podcasts sorted by date, newest first
// @Tags media
// @Produce json
// @Success 200 {array} models.MediaEntry
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/podcasts [get]
func (h *MediaHandler) ListPodcasts(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.MediaKindPodcast)
}

// GetPodcast handles GET /api/podcasts/{id}
// @Summary Get podcast by ID
// @Tags media
// @Produce json
// @Param id path string true "Podcast ID"
// @Success 200 {object} models.MediaEntry
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/podcasts/{id} [get]
func (h *MediaHandler) GetPodcast(w http.ResponseWriter, r *http.Request) {
	h.getByID(w, r, models.MediaKindPodcast)
}

// ListVideos handles GET /api/videos
// @Summary List videos
// @Description Get all videos sorted by date, newest first
// @Tags media
// @Produce json
// @Success 200 {array} models.MediaEntry
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/videos [get]
func (h *MediaHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.MediaKindVideo)
}

// GetVideo handles GET /api/videos/{id}
// @Summary Get video by ID
// @Tags media
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} models.MediaEntry
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/videos/{id} [get]
func (h *MediaHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	h.getByID(w, r, models.MediaKindVideo)
}

func (h *MediaHandler) list(w http.ResponseWriter, r *http.Request, kind models.MediaKind) {
	entries, err := h.service.List(r.Context(), kind)
	if err != nil {
		h.respondServiceError(w, err, "", "Failed to fetch "+kind.Collection())
		return
	}

	h.respondJSON(w, http.StatusOK, entries)
}

func (h *MediaHandler) getByID(w http.ResponseWriter, r *http.Request, kind models.MediaKind) {
	id := chi.URLParam(r, "id")

	entry, err := h.service.GetByID(r.Context(), kind, id)
	if err != nil {
		h.respondServiceError(w, err, notFoundError(kind), "Failed to fetch "+string(kind))
		return
	}

	h.respondJSON(w, http.StatusOK, entry)
}

func notFoundError(kind models.MediaKind) string {
	if kind == models.MediaKindPodcast {
		return "Podcast not found"
	}
	return "Video not found"
}
