package weather

import "testing"

// TestSlug verifies separator and case normalization.
func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"New York", "new-york"},
		{"new-york", "new-york"},
		{"NEW_YORK", "new-york"},
		{"  london ", "london"},
		{"Sao_Paulo", "sao-paulo"},
	}
	for _, tc := range tests {
		if got := Slug(tc.in); got != tc.want {
			t.Fatalf("Slug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestLookup_SeparatorAndCaseVariants verifies that all spellings of a city
// resolve to the same catalog entry.
func TestLookup_SeparatorAndCaseVariants(t *testing.T) {
	c := DefaultCatalog()

	base, ok := c.Lookup("new-york")
	if !ok {
		t.Fatal("new-york missing from catalog")
	}
	for _, variant := range []string{"New York", "NEW_YORK", "new york", "nEw-YoRk"} {
		got, ok := c.Lookup(variant)
		if !ok {
			t.Fatalf("Lookup(%q) missed", variant)
		}
		if got.Name != base.Name || got.Timezone != base.Timezone {
			t.Fatalf("Lookup(%q) = %+v, want %+v", variant, got, base)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	c := DefaultCatalog()
	if _, ok := c.Lookup("atlantis"); ok {
		t.Fatal("Lookup(atlantis) should miss")
	}
	if _, ok := c.Lookup(""); ok {
		t.Fatal("Lookup of empty string should miss")
	}
}

// TestAll_StableOrder verifies the catalog has ten entries in canonical order.
func TestAll_StableOrder(t *testing.T) {
	c := DefaultCatalog()
	all := c.All()
	if len(all) != 10 {
		t.Fatalf("catalog has %d entries, want 10", len(all))
	}
	if all[0].Name != "New York" || all[9].Name != "Cape Town" {
		t.Fatalf("unexpected order: first=%q last=%q", all[0].Name, all[9].Name)
	}
}

// TestSearch verifies case-insensitive substring matching over name, country,
// and region, and that a blank query matches nothing.
func TestSearch(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{
			name:      "by name and region",
			query:     "new",
			wantCount: 2, // New York by name, Sydney by region "New South Wales"
		},
		{
			name:      "by country",
			query:     "united",
			wantCount: 2, // United States, United Kingdom
		},
		{
			name:      "by region",
			query:     "ontario",
			wantCount: 1,
		},
		{
			name:      "case insensitive",
			query:     "LONDON",
			wantCount: 1,
		},
		{
			name:      "no match",
			query:     "zzz",
			wantCount: 0,
		},
		{
			name:      "blank matches nothing",
			query:     "   ",
			wantCount: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Search(tc.query)
			if len(got) != tc.wantCount {
				t.Fatalf("Search(%q) returned %d entries, want %d", tc.query, len(got), tc.wantCount)
			}
		})
	}
}
