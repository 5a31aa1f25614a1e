// Package weatherhttp exposes the weather API over HTTP.
package weatherhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/demoapis/petweather/internal/lifecycle"
	"github.com/demoapis/petweather/internal/middleware"
	"github.com/demoapis/petweather/internal/observability"
	"github.com/demoapis/petweather/internal/weather"
)

const defaultForecastDays = 5

// Handler holds dependencies for the weather HTTP handlers.
type Handler struct {
	service *weather.Service
	version string
	logger  *zap.Logger
}

// NewHandler returns a new Handler.
func NewHandler(service *weather.Service, version string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, version: version, logger: logger}
}

// GetRoot handles GET /. Returns service info and discovery links.
func (h *Handler) GetRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "Weather API",
		"version": h.version,
		"docs":    "/metrics",
		"health":  "/health",
	})
}

// GetHealth handles GET /health.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	statusCode := http.StatusOK
	if lifecycle.IsShuttingDown() {
		status = "shutting-down"
		statusCode = http.StatusServiceUnavailable
	}
	writeJSON(w, statusCode, map[string]string{
		"status":    status,
		"service":   "weather-api",
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetCurrentWeather handles GET /weather/current/{city}.
func (h *Handler) GetCurrentWeather(w http.ResponseWriter, r *http.Request) {
	city := mux.Vars(r)["city"]

	current, err := h.service.CurrentWeather(r.Context(), city)
	if err != nil {
		h.writeWeatherError(w, r, city, err)
		return
	}
	if current == nil {
		writeCityNotFound(w, r, city)
		return
	}

	observability.RecordWeatherQuery(weather.Slug(city))
	writeJSON(w, http.StatusOK, current)
}

// GetForecast handles GET /weather/forecast/{city}?days=1..10.
func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	city := mux.Vars(r)["city"]

	days := defaultForecastDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusUnprocessableEntity, "Invalid forecast parameters", "VALIDATION_ERROR",
				map[string]interface{}{"message": "days must be an integer"})
			return
		}
		days = n
	}

	forecast, err := h.service.ForecastFor(r.Context(), city, days)
	if err != nil {
		h.writeWeatherError(w, r, city, err)
		return
	}
	if forecast == nil {
		writeCityNotFound(w, r, city)
		return
	}

	observability.RecordWeatherQuery(weather.Slug(city))
	writeJSON(w, http.StatusOK, forecast)
}

// GetCities handles GET /weather/cities with an optional search filter.
func (h *Handler) GetCities(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	var cities []weather.SupportedCity
	if search != "" {
		cities = h.service.SearchCities(search)
	} else {
		cities = h.service.SupportedCities()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cities":      cities,
		"total_count": len(cities),
	})
}

// ValidateCity handles GET /weather/cities/{city}/validate.
func (h *Handler) ValidateCity(w http.ResponseWriter, r *http.Request) {
	city := mux.Vars(r)["city"]
	supported := h.service.ValidateCity(city)

	verdict := "supported"
	if !supported {
		verdict = "not supported"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"city":         city,
		"is_supported": supported,
		"message":      fmt.Sprintf("City '%s' is %s", city, verdict),
	})
}

// writeWeatherError maps service errors onto the wire format.
func (h *Handler) writeWeatherError(w http.ResponseWriter, r *http.Request, city string, err error) {
	switch {
	case errors.Is(err, weather.ErrEmptyCity):
		writeError(w, r, http.StatusUnprocessableEntity, "Invalid city name", "INVALID_CITY_NAME",
			map[string]interface{}{"message": "City name cannot be empty"})
	case errors.Is(err, weather.ErrInvalidDays):
		writeError(w, r, http.StatusUnprocessableEntity, "Invalid forecast parameters", "VALIDATION_ERROR",
			map[string]interface{}{"message": err.Error()})
	default:
		if l := middleware.LoggerFrom(r.Context()); l != nil {
			l.Error("weather lookup failed", zap.String("city", city), zap.Error(err))
		}
		writeError(w, r, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR",
			map[string]interface{}{"message": "An unexpected error occurred"})
	}
}

func writeCityNotFound(w http.ResponseWriter, r *http.Request, city string) {
	writeError(w, r, http.StatusNotFound, fmt.Sprintf("City '%s' not found", city), "CITY_NOT_FOUND",
		map[string]interface{}{
			"city":    city,
			"message": "The specified city is not supported. Use /weather/cities to see available cities.",
		})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, errMsg, code string, details map[string]interface{}) {
	writeJSON(w, status, map[string]interface{}{
		"error":          errMsg,
		"error_code":     code,
		"details":        details,
		"correlation_id": middleware.CorrelationIDFrom(r.Context()),
	})
}
