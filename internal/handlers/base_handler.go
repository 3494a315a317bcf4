package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/huangweilong/personal-website-backend/internal/models"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// errorResponse is the error body shape for every non-2xx response
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, errCategory, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: errCategory, Message: message})
}

// respondServiceError maps a service-layer error to its HTTP response.
// notFoundError names the missing resource for 404 bodies
// ("Podcast not found", "Message not found").
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, notFoundError, failMessage string) {
	var validationErr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrStoreUnavailable):
		h.respondError(w, http.StatusServiceUnavailable, "Database not connected",
			"MongoDB connection is not available. Please check your connection string.")
	case errors.Is(err, models.ErrNotFound):
		h.respondError(w, http.StatusNotFound, notFoundError, "")
	case errors.As(err, &validationErr):
		h.respondError(w, http.StatusBadRequest, "Validation error", validationErr.Message)
	default:
		h.respondError(w, http.StatusInternalServerError, failMessage, err.Error())
	}
}
