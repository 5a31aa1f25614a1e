package weather

import (
	"time"

	"github.com/demoapis/petweather/internal/units"
)

// Condition is the primary weather condition classifier.
type Condition string

const (
	Sunny        Condition = "sunny"
	Cloudy       Condition = "cloudy"
	PartlyCloudy Condition = "partly_cloudy"
	Rainy        Condition = "rainy"
	Stormy       Condition = "stormy"
	Snowy        Condition = "snowy"
	Foggy        Condition = "foggy"
	Windy        Condition = "windy"
)

// ConditionDetails pairs a condition with its presentation data.
type ConditionDetails struct {
	Condition    Condition `json:"condition"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	VisibilityKM float64   `json:"visibility_km"`
	UVIndex      int       `json:"uv_index"`
}

// Coordinates is a geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SupportedCity is one entry of the fixed city catalog.
type SupportedCity struct {
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	Region      string      `json:"region,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	Timezone    string      `json:"timezone"`
	Population  *int        `json:"population,omitempty"`
}

// CurrentWeather is a point-in-time reading for a city. Records are built
// fresh per request and never stored.
type CurrentWeather struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Region      string      `json:"region,omitempty"`
	Coordinates Coordinates `json:"coordinates"`

	Temperature units.Temperature `json:"temperature"`
	FeelsLike   units.Temperature `json:"feels_like"`

	Humidity   int     `json:"humidity"`
	PressureMB float64 `json:"pressure_mb"`
	PressureIn float64 `json:"pressure_in"`

	Wind      units.Wind       `json:"wind"`
	Condition ConditionDetails `json:"condition"`

	LastUpdated time.Time `json:"last_updated"`
	LocalTime   time.Time `json:"local_time"`
}

// ForecastDay is a single day of a forecast.
type ForecastDay struct {
	Date           string            `json:"date"` // YYYY-MM-DD
	TemperatureMax units.Temperature `json:"temperature_max"`
	TemperatureMin units.Temperature `json:"temperature_min"`
	TemperatureAvg units.Temperature `json:"temperature_avg"`

	Condition ConditionDetails `json:"condition"`

	HumidityAvg int        `json:"humidity_avg"`
	WindMax     units.Wind `json:"wind_max"`

	PrecipitationMM     float64 `json:"precipitation_mm"`
	PrecipitationChance int     `json:"precipitation_chance"`

	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// Forecast is a multi-day forecast for a city.
type Forecast struct {
	City         string        `json:"city"`
	Country      string        `json:"country"`
	Region       string        `json:"region,omitempty"`
	Coordinates  Coordinates   `json:"coordinates"`
	ForecastDays []ForecastDay `json:"forecast_days"`
	GeneratedAt  time.Time     `json:"generated_at"`
}

// conditionCatalog holds the fixed presentation data per condition. Order is
// stable so seeded generation is reproducible.
var conditionCatalog = []ConditionDetails{
	{Condition: Sunny, Description: "Clear sunny skies", Icon: "sun", VisibilityKM: 15.0, UVIndex: 8},
	{Condition: Cloudy, Description: "Overcast and cloudy", Icon: "cloud", VisibilityKM: 10.0, UVIndex: 3},
	{Condition: PartlyCloudy, Description: "Partly cloudy with some sun", Icon: "partly-cloudy", VisibilityKM: 12.0, UVIndex: 5},
	{Condition: Rainy, Description: "Light to moderate rain", Icon: "rain", VisibilityKM: 5.0, UVIndex: 1},
	{Condition: Stormy, Description: "Thunderstorms with heavy rain", Icon: "storm", VisibilityKM: 2.0, UVIndex: 0},
	{Condition: Snowy, Description: "Snow showers", Icon: "snow", VisibilityKM: 3.0, UVIndex: 1},
	{Condition: Foggy, Description: "Dense fog", Icon: "fog", VisibilityKM: 0.5, UVIndex: 1},
	{Condition: Windy, Description: "Strong winds", Icon: "wind", VisibilityKM: 12.0, UVIndex: 4},
}
