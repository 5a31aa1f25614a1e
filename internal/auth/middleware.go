package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// RequireBearer gates requests behind a valid bearer token. When enabled is
// false the middleware is a no-op, which is the default deployment mode.
func RequireBearer(m *TokenManager, enabled bool) func(http.Handler) http.Handler {
	if !enabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				writeUnauthorized(w, "Not authenticated")
				return
			}
			if _, err := m.Verify(strings.TrimPrefix(header, prefix)); err != nil {
				writeUnauthorized(w, "Could not validate credentials")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   "Unauthorized",
		"detail":  detail,
	})
}
