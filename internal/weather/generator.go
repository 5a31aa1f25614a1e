package weather

import (
	"math/rand"
	"sync"
	"time"

	"github.com/demoapis/petweather/internal/units"
)

// Generator synthesizes mock weather from the city catalog. The random source
// and clock are injected so generation is deterministic under a fixed seed.
// Safe for concurrent use.
type Generator struct {
	catalog *Catalog

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a Generator drawing randomness from src. A nil now
// defaults to time.Now.
func NewGenerator(catalog *Catalog, src rand.Source, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{
		catalog: catalog,
		rng:     rand.New(src),
		now:     now,
	}
}

// maxForecastDays is the hard ceiling applied by the generator. Requests for
// more days are clamped, not rejected; the service layer applies the stricter
// [1,10] check on its own path.
const maxForecastDays = 10

// uniform returns a random float in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// intBetween returns a random int in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// seasonalBaseTemp derives a base Celsius temperature from the city's
// hemisphere and the current month, with a +3 coastal adjustment when
// |longitude| < 10, clamped to [-30, 50].
func seasonalBaseTemp(city SupportedCity, at time.Time) float64 {
	lat := city.Coordinates.Latitude
	month := at.Month()

	var base float64
	if lat > 0 { // northern hemisphere
		switch month {
		case time.December, time.January, time.February:
			base = 0 - abs(lat)*0.5
		case time.June, time.July, time.August:
			base = 25 - abs(lat)*0.3
		default:
			base = 15 - abs(lat)*0.4
		}
	} else { // southern hemisphere
		switch month {
		case time.June, time.July, time.August:
			base = 5 + abs(lat)*0.3
		case time.December, time.January, time.February:
			base = 25 + abs(lat)*0.2
		default:
			base = 15 + abs(lat)*0.1
		}
	}

	if abs(city.Coordinates.Longitude) < 10 { // rough coastal indicator
		base += 3
	}

	if base < -30 {
		base = -30
	}
	if base > 50 {
		base = 50
	}
	return base
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// temperature returns base +/- variation, rounded to one decimal, with the
// other scales derived.
func (g *Generator) temperature(base, variation float64) units.Temperature {
	actual := base + g.uniform(-variation, variation)
	return units.NewTemperature(units.Round1(actual))
}

// wind draws a 5-25 kph speed, a random compass direction, and a gust on
// half of the draws.
func (g *Generator) wind() units.Wind {
	speed := units.Round1(g.uniform(5, 25))
	var gust *float64
	if g.rng.Float64() > 0.5 {
		v := units.Round1(speed + g.uniform(5, 15))
		gust = &v
	}
	dir := units.Directions[g.rng.Intn(len(units.Directions))]
	return units.NewWind(speed, dir, gust)
}

func (g *Generator) condition() ConditionDetails {
	return conditionCatalog[g.rng.Intn(len(conditionCatalog))]
}

// Current generates a fresh current-weather record for the named city, or
// false when the city is not in the catalog.
func (g *Generator) Current(cityName string) (CurrentWeather, bool) {
	city, ok := g.catalog.Lookup(cityName)
	if !ok {
		return CurrentWeather{}, false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	base := seasonalBaseTemp(city, now)
	pressureMB := units.Round1(g.uniform(990, 1030))

	return CurrentWeather{
		City:        city.Name,
		Country:     city.Country,
		Region:      city.Region,
		Coordinates: city.Coordinates,
		Temperature: g.temperature(base, 5.0),
		FeelsLike:   g.temperature(base, 3.0),
		Humidity:    g.intBetween(30, 90),
		PressureMB:  pressureMB,
		PressureIn:  units.PressureIn(pressureMB),
		Wind:        g.wind(),
		Condition:   g.condition(),
		LastUpdated: now,
		// Local time would need a timezone conversion; the mock serves
		// the generation time as-is.
		LocalTime: now,
	}, true
}

// Forecast generates a multi-day forecast. days above maxForecastDays is
// silently clamped rather than rejected; the service-layer entry point is the
// one that validates the range.
func (g *Generator) Forecast(cityName string, days int) (Forecast, bool) {
	city, ok := g.catalog.Lookup(cityName)
	if !ok {
		return Forecast{}, false
	}
	if days > maxForecastDays {
		days = maxForecastDays
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	base := seasonalBaseTemp(city, now)

	forecastDays := make([]ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, i)

		dailyVariation := g.uniform(-2, 2)
		tempMax := g.temperature(base+5+dailyVariation, 3.0)
		tempMin := g.temperature(base-5+dailyVariation, 3.0)
		tempAvg := g.temperature(base+dailyVariation, 2.0)

		// Swap when inverted; the average is left as generated.
		if tempMin.Celsius > tempMax.Celsius {
			tempMin, tempMax = tempMax, tempMin
		}

		cond := g.condition()

		var precipMM float64
		var precipChance int
		switch cond.Condition {
		case Rainy, Stormy:
			precipMM = units.Round1(g.uniform(1, 15))
			precipChance = g.intBetween(60, 95)
		case Snowy:
			precipMM = units.Round1(g.uniform(0.5, 8))
			precipChance = g.intBetween(50, 85)
		default:
			precipMM = units.Round1(g.uniform(0, 0.5))
			precipChance = g.intBetween(0, 20)
		}

		forecastDays = append(forecastDays, ForecastDay{
			Date:                date.Format("2006-01-02"),
			TemperatureMax:      tempMax,
			TemperatureMin:      tempMin,
			TemperatureAvg:      tempAvg,
			Condition:           cond,
			HumidityAvg:         g.intBetween(40, 80),
			WindMax:             g.wind(),
			PrecipitationMM:     precipMM,
			PrecipitationChance: precipChance,
			// Fixed times; real values would need solar calculations.
			Sunrise: "06:30",
			Sunset:  "18:45",
		})
	}

	return Forecast{
		City:         city.Name,
		Country:      city.Country,
		Region:       city.Region,
		Coordinates:  city.Coordinates,
		ForecastDays: forecastDays,
		GeneratedAt:  now,
	}, true
}
