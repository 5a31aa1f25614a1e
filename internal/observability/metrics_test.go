package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestMetrics_Usable verifies that all Prometheus metrics can be used without
// panic, ensuring label dimensions match usage across the handler packages.
func TestMetrics_Usable(t *testing.T) {
	// Route uses path template to avoid cardinality (e.g. /weather/current/{city} not /weather/current/tokyo)
	HTTPRequestsTotal.WithLabelValues("GET", "/weather/current/{city}", "2xx").Inc()
	HTTPRequestDuration.WithLabelValues("GET", "/weather/current/{city}").Observe(0.01)
	WeatherQueriesTotal.Inc()
	WeatherQueriesByCityTotal.WithLabelValues("tokyo").Inc()
	WeatherQueriesByCityTotal.WithLabelValues("other").Inc()
	UserLookupsTotal.WithLabelValues("found").Inc()
	UserLookupsTotal.WithLabelValues("not_found").Inc()
	UserLookupsTotal.WithLabelValues("invalid_id").Inc()
}

// TestSetTrackedCities_and_RecordWeatherQuery verifies that SetTrackedCities
// configures the city allow-list and RecordWeatherQuery labels tracked vs
// "other" cities.
func TestSetTrackedCities_and_RecordWeatherQuery(t *testing.T) {
	SetTrackedCities([]string{"tokyo", "london"})
	RecordWeatherQuery("Tokyo")
	RecordWeatherQuery("unknown-city")
	SetTrackedCities(nil) // reset for other tests
}

// TestMetricsHandler_ServesPrometheusFormat verifies that MetricsHandler serves
// Prometheus text exposition format with correct HTTP status and metric output.
func TestMetricsHandler_ServesPrometheusFormat(t *testing.T) {
	handler := MetricsHandler()
	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("MetricsHandler status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "httpRequestsTotal") {
		t.Error("MetricsHandler response should contain metric output")
	}
}
