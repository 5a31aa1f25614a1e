package pethttp

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/demoapis/petweather/internal/auth"
	"github.com/demoapis/petweather/internal/config"
	"github.com/demoapis/petweather/internal/middleware"
	"github.com/demoapis/petweather/internal/observability"
)

// NewRouter assembles the pet manager router with the full middleware chain.
// All routes live under cfg.APIPrefix.
func NewRouter(h *Handler, cfg *config.PetManager, tokens *auth.TokenManager, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recover(logger))
	r.Use(middleware.CorrelationID(logger))
	r.Use(middleware.Metrics(routeTemplate(cfg.APIPrefix)))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Route(cfg.APIPrefix, func(r chi.Router) {
		r.Get("/health", h.GetHealth)
		r.Method(http.MethodGet, "/metrics", observability.MetricsHandler())

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireBearer(tokens, cfg.RequireAuth))
			r.Get("/users", h.GetUsers)
			r.Get("/users/{user_id}", h.GetUser)
			r.Get("/users/stats/pet-count", h.GetStatistics)
		})
	})

	return r
}

// routeTemplate maps request paths to bounded label values for metrics.
func routeTemplate(prefix string) func(*http.Request) string {
	return func(r *http.Request) string {
		path := strings.TrimPrefix(r.URL.Path, prefix)
		switch {
		case path == "/health":
			return prefix + "/health"
		case path == "/metrics":
			return prefix + "/metrics"
		case path == "/users/stats/pet-count":
			return prefix + "/users/stats/pet-count"
		case path == "/users":
			return prefix + "/users"
		case strings.HasPrefix(path, "/users/"):
			return prefix + "/users/{user_id}"
		default:
			return r.URL.Path
		}
	}
}
