// Package middleware holds the HTTP middleware shared by both services.
// Every middleware is a plain func(http.Handler) http.Handler so it works
// with gorilla/mux and chi alike.
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/demoapis/petweather/internal/observability"
)

// CorrelationID assigns each request a correlation ID. An inbound
// X-Correlation-ID header is honored; otherwise a new UUID is generated.
// The ID is echoed on the response and a request-scoped logger carrying it
// is stored in the request context.
func CorrelationID(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			corrID := r.Header.Get("X-Correlation-ID")
			if corrID == "" {
				corrID = uuid.New().String()
			}

			ctx := context.WithValue(r.Context(), "correlation_id", corrID)
			w.Header().Set("X-Correlation-ID", corrID)

			reqLogger := logger.With(zap.String("correlation_id", corrID))
			ctx = context.WithValue(ctx, "logger", reqLogger)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CorrelationIDFrom returns the request correlation ID, or "" if none was
// assigned.
func CorrelationIDFrom(ctx context.Context) string {
	if v := ctx.Value("correlation_id"); v != nil {
		return v.(string)
	}
	return ""
}

// LoggerFrom returns the request-scoped logger, or nil.
func LoggerFrom(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value("logger").(*zap.Logger); ok {
		return l
	}
	return nil
}

// Metrics records request count, latency, and in-flight gauge. routeFn maps a
// request to its path template (e.g. /weather/current/{city}) to keep label
// cardinality bounded.
func Metrics(routeFn func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			observability.HTTPRequestsInFlight.Inc()
			defer observability.HTTPRequestsInFlight.Dec()

			recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(recorder, r)

			duration := time.Since(start).Seconds()
			route := routeFn(r)
			statusCode := statusCodeString(recorder.statusCode)

			observability.HTTPRequestsTotal.WithLabelValues(r.Method, route, statusCode).Inc()
			observability.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(duration)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

func statusCodeString(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}

// RequestLogging logs one line per request and adds an X-Process-Time header
// with the elapsed seconds.
func RequestLogging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			timed := &processTimeWriter{ResponseWriter: w, start: start, statusCode: http.StatusOK}
			next.ServeHTTP(timed, r)

			reqLogger := LoggerFrom(r.Context())
			if reqLogger == nil {
				reqLogger = logger
			}
			reqLogger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", timed.statusCode),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

// processTimeWriter stamps X-Process-Time on the first write, since headers
// cannot change after WriteHeader.
type processTimeWriter struct {
	http.ResponseWriter
	start      time.Time
	statusCode int
	wrote      bool
}

func (w *processTimeWriter) WriteHeader(code int) {
	if !w.wrote {
		w.wrote = true
		elapsed := time.Since(w.start).Seconds()
		w.Header().Set("X-Process-Time", strconv.FormatFloat(elapsed, 'f', -1, 64))
	}
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *processTimeWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Recover converts handler panics into a generic JSON 500 so a broken
// handler never tears down the server.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path))
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// CORS answers preflight requests and sets the allowed-origin headers.
// origins containing "*" allow any origin.
func CORS(origins []string) func(http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				if allowAll {
					w.Header().Set("Access-Control-Allow-Origin", "*")
				} else if _, ok := allowed[origin]; ok {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Vary", "Origin")
				}
			}
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Correlation-ID")
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
