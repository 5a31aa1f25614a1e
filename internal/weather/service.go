// Package weather holds the city catalog, the mock data generator, and the
// service layer the HTTP transport calls into.
package weather

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrEmptyCity is returned when a city argument is empty or whitespace-only.
var ErrEmptyCity = errors.New("city name cannot be empty")

// ErrInvalidDays is returned when a forecast length is outside [1,10].
var ErrInvalidDays = errors.New("forecast days must be between 1 and 10")

// Service validates arguments and maps catalog misses to absent results,
// leaving status-code choice to the transport.
type Service struct {
	catalog   *Catalog
	generator *Generator
	delay     time.Duration // simulated upstream latency, 0 = disabled
	logger    *zap.Logger
}

// NewService returns a weather Service. delay, when positive, is awaited
// before every generated response to simulate upstream latency.
func NewService(catalog *Catalog, generator *Generator, delay time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog:   catalog,
		generator: generator,
		delay:     delay,
		logger:    logger,
	}
}

// simulateDelay waits for the configured artificial delay. It is cooperative:
// the wait aborts when ctx is cancelled.
func (s *Service) simulateDelay(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CurrentWeather returns current conditions for the city, nil when the city
// is not in the catalog, and ErrEmptyCity for blank input.
func (s *Service) CurrentWeather(ctx context.Context, city string) (*CurrentWeather, error) {
	if strings.TrimSpace(city) == "" {
		return nil, ErrEmptyCity
	}
	city = strings.TrimSpace(city)

	s.logger.Info("fetching current weather", zap.String("city", city))
	if err := s.simulateDelay(ctx); err != nil {
		return nil, err
	}

	data, ok := s.generator.Current(city)
	if !ok {
		s.logger.Warn("city not found", zap.String("city", city))
		return nil, nil
	}
	s.logger.Info("current weather retrieved",
		zap.String("city", data.City),
		zap.Float64("temperature", data.Temperature.Celsius),
		zap.String("condition", string(data.Condition.Condition)))
	return &data, nil
}

// ForecastFor returns a days-long forecast for the city. It fails with
// ErrEmptyCity for blank input and ErrInvalidDays outside [1,10]; a catalog
// miss yields a nil forecast with no error. Note the generator itself clamps
// oversized day counts instead of rejecting them; only this entry point
// enforces the range.
func (s *Service) ForecastFor(ctx context.Context, city string, days int) (*Forecast, error) {
	if strings.TrimSpace(city) == "" {
		return nil, ErrEmptyCity
	}
	if days < 1 || days > maxForecastDays {
		return nil, ErrInvalidDays
	}
	city = strings.TrimSpace(city)

	s.logger.Info("fetching weather forecast", zap.String("city", city), zap.Int("days", days))
	if err := s.simulateDelay(ctx); err != nil {
		return nil, err
	}

	data, ok := s.generator.Forecast(city, days)
	if !ok {
		s.logger.Warn("city not found for forecast", zap.String("city", city))
		return nil, nil
	}
	s.logger.Info("weather forecast retrieved",
		zap.String("city", data.City),
		zap.Int("forecast_days", len(data.ForecastDays)))
	return &data, nil
}

// ValidateCity reports whether the city is in the catalog. It never fails;
// blank input is simply unsupported.
func (s *Service) ValidateCity(city string) bool {
	if strings.TrimSpace(city) == "" {
		return false
	}
	_, ok := s.catalog.Lookup(strings.TrimSpace(city))
	return ok
}

// SearchCities returns catalog entries matching the query; a blank query
// yields an empty result, not the full catalog.
func (s *Service) SearchCities(query string) []SupportedCity {
	results := s.catalog.Search(query)
	s.logger.Debug("city search completed",
		zap.String("query", strings.TrimSpace(query)),
		zap.Int("results", len(results)))
	return results
}

// SupportedCities returns the full catalog in canonical order.
func (s *Service) SupportedCities() []SupportedCity {
	return s.catalog.All()
}
