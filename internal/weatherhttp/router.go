package weatherhttp

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/demoapis/petweather/internal/config"
	"github.com/demoapis/petweather/internal/middleware"
	"github.com/demoapis/petweather/internal/observability"
)

// NewRouter assembles the weather API router with the full middleware chain.
func NewRouter(h *Handler, cfg *config.Weather, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recover(logger))
	r.Use(middleware.CorrelationID(logger))
	r.Use(TrackInFlight)
	r.Use(middleware.Metrics(getRoute))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.HandleFunc("/", h.GetRoot).Methods(http.MethodGet)
	r.HandleFunc("/health", h.GetHealth).Methods(http.MethodGet)
	r.Handle("/metrics", observability.MetricsHandler()).Methods(http.MethodGet)
	r.HandleFunc("/weather/current/{city}", h.GetCurrentWeather).Methods(http.MethodGet)
	r.HandleFunc("/weather/forecast/{city}", h.GetForecast).Methods(http.MethodGet)
	r.HandleFunc("/weather/cities", h.GetCities).Methods(http.MethodGet)
	r.HandleFunc("/weather/cities/{city}/validate", h.ValidateCity).Methods(http.MethodGet)

	return r
}

// getRoute maps request paths to bounded label values for metrics.
func getRoute(r *http.Request) string {
	path := r.URL.Path
	switch {
	case path == "/", path == "/health", path == "/metrics", path == "/weather/cities":
		return path
	case strings.HasPrefix(path, "/weather/current/"):
		return "/weather/current/{city}"
	case strings.HasPrefix(path, "/weather/forecast/"):
		return "/weather/forecast/{city}"
	case strings.HasPrefix(path, "/weather/cities/") && strings.HasSuffix(path, "/validate"):
		return "/weather/cities/{city}/validate"
	default:
		return path
	}
}
