package weather

import "strings"

// Catalog is the fixed set of cities the service can answer for. Entries are
// keyed by slug and immutable after construction.
type Catalog struct {
	order  []string
	bySlug map[string]SupportedCity
}

// Slug normalizes a city name for catalog lookup: lowercase, with spaces and
// underscores mapped to hyphens.
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	return s
}

// Lookup resolves a city name (any separator or casing) to its catalog entry.
func (c *Catalog) Lookup(name string) (SupportedCity, bool) {
	city, ok := c.bySlug[Slug(name)]
	return city, ok
}

// All returns the catalog entries in their canonical order.
func (c *Catalog) All() []SupportedCity {
	out := make([]SupportedCity, 0, len(c.order))
	for _, slug := range c.order {
		out = append(out, c.bySlug[slug])
	}
	return out
}

// Slugs returns the canonical slugs, used as the metrics allow-list.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Search returns entries whose name, country, or region contains the query as
// a case-insensitive substring. A blank query matches nothing.
func (c *Catalog) Search(query string) []SupportedCity {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]SupportedCity, 0)
	if q == "" {
		return out
	}
	for _, slug := range c.order {
		city := c.bySlug[slug]
		if strings.Contains(strings.ToLower(city.Name), q) ||
			strings.Contains(strings.ToLower(city.Country), q) ||
			strings.Contains(strings.ToLower(city.Region), q) {
			out = append(out, city)
		}
	}
	return out
}

func intPtr(v int) *int { return &v }

// DefaultCatalog returns the ten supported cities.
func DefaultCatalog() *Catalog {
	entries := []struct {
		slug string
		city SupportedCity
	}{
		{"new-york", SupportedCity{
			Name: "New York", Country: "United States", Region: "New York",
			Coordinates: Coordinates{Latitude: 40.7128, Longitude: -74.0060},
			Timezone:    "America/New_York", Population: intPtr(8336817),
		}},
		{"london", SupportedCity{
			Name: "London", Country: "United Kingdom", Region: "England",
			Coordinates: Coordinates{Latitude: 51.5074, Longitude: -0.1278},
			Timezone:    "Europe/London", Population: intPtr(9648110),
		}},
		{"tokyo", SupportedCity{
			Name: "Tokyo", Country: "Japan", Region: "Kanto",
			Coordinates: Coordinates{Latitude: 35.6762, Longitude: 139.6503},
			Timezone:    "Asia/Tokyo", Population: intPtr(13960000),
		}},
		{"paris", SupportedCity{
			Name: "Paris", Country: "France", Region: "Île-de-France",
			Coordinates: Coordinates{Latitude: 48.8566, Longitude: 2.3522},
			Timezone:    "Europe/Paris", Population: intPtr(2148327),
		}},
		{"sydney", SupportedCity{
			Name: "Sydney", Country: "Australia", Region: "New South Wales",
			Coordinates: Coordinates{Latitude: -33.8688, Longitude: 151.2093},
			Timezone:    "Australia/Sydney", Population: intPtr(5312163),
		}},
		{"toronto", SupportedCity{
			Name: "Toronto", Country: "Canada", Region: "Ontario",
			Coordinates: Coordinates{Latitude: 43.6532, Longitude: -79.3832},
			Timezone:    "America/Toronto", Population: intPtr(2794356),
		}},
		{"mumbai", SupportedCity{
			Name: "Mumbai", Country: "India", Region: "Maharashtra",
			Coordinates: Coordinates{Latitude: 19.0760, Longitude: 72.8777},
			Timezone:    "Asia/Kolkata", Population: intPtr(20411274),
		}},
		{"berlin", SupportedCity{
			Name: "Berlin", Country: "Germany", Region: "Berlin",
			Coordinates: Coordinates{Latitude: 52.5200, Longitude: 13.4050},
			Timezone:    "Europe/Berlin", Population: intPtr(3769495),
		}},
		{"sao-paulo", SupportedCity{
			Name: "São Paulo", Country: "Brazil", Region: "São Paulo",
			Coordinates: Coordinates{Latitude: -23.5505, Longitude: -46.6333},
			Timezone:    "America/Sao_Paulo", Population: intPtr(12396372),
		}},
		{"cape-town", SupportedCity{
			Name: "Cape Town", Country: "South Africa", Region: "Western Cape",
			Coordinates: Coordinates{Latitude: -33.9249, Longitude: 18.4241},
			Timezone:    "Africa/Johannesburg", Population: intPtr(4618000),
		}},
	}

	c := &Catalog{bySlug: make(map[string]SupportedCity, len(entries))}
	for _, e := range entries {
		c.order = append(c.order, e.slug)
		c.bySlug[e.slug] = e.city
	}
	return c
}
