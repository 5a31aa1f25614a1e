// Package pethttp exposes the pet manager API over HTTP.
package pethttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/demoapis/petweather/internal/lifecycle"
	"github.com/demoapis/petweather/internal/middleware"
	"github.com/demoapis/petweather/internal/observability"
	"github.com/demoapis/petweather/internal/pets"
)

// Handler holds dependencies for the pet manager HTTP handlers.
type Handler struct {
	service *pets.Service
	version string
	logger  *zap.Logger
}

// NewHandler returns a new Handler.
func NewHandler(service *pets.Service, version string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, version: version, logger: logger}
}

// GetHealth handles GET /health.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	statusCode := http.StatusOK
	if lifecycle.IsShuttingDown() {
		status = "shutting-down"
		statusCode = http.StatusServiceUnavailable
	}
	writeJSON(w, statusCode, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.version,
	})
}

// GetUsers handles GET /users with an optional species filter.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	species := r.URL.Query().Get("species")

	var (
		users   []pets.User
		message string
	)
	if species != "" {
		users = h.service.ListBySpecies(species)
		message = fmt.Sprintf("Successfully retrieved users with %s pets", species)
	} else {
		users = h.service.List()
		message = "Successfully retrieved all users"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    users,
		"message": message,
	})
}

// GetUser handles GET /users/{user_id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "user_id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		observability.UserLookupsTotal.WithLabelValues("invalid_id").Inc()
		writeError(w, http.StatusBadRequest, pets.ErrInvalidUserID.Error())
		return
	}

	user, err := h.service.Get(id)
	switch {
	case errors.Is(err, pets.ErrInvalidUserID):
		observability.UserLookupsTotal.WithLabelValues("invalid_id").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, pets.ErrUserNotFound):
		observability.UserLookupsTotal.WithLabelValues("not_found").Inc()
		writeError(w, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", id))
		return
	case err != nil:
		if l := middleware.LoggerFrom(r.Context()); l != nil {
			l.Error("user lookup failed", zap.Int("user_id", id), zap.Error(err))
		}
		writeError(w, http.StatusInternalServerError, "An error occurred while retrieving the user")
		return
	}

	observability.UserLookupsTotal.WithLabelValues("found").Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    user,
		"message": fmt.Sprintf("Successfully retrieved user %d", id),
	})
}

// GetStatistics handles GET /users/stats/pet-count.
func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Statistics()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    stats,
		"message": "Successfully calculated user pet statistics",
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the error envelope. error and detail carry the same
// message, matching the documented wire format.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   detail,
		"detail":  detail,
	})
}
