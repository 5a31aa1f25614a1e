package pets

import "time"

func intPtr(v int) *int { return &v }

// DefaultUsers returns the fixed user/pet dataset served by the pet manager.
// The slice order is the canonical listing order.
func DefaultUsers() []User {
	return []User{
		{
			ID:        1,
			Name:      "Alice Johnson",
			Email:     "alice.johnson@example.com",
			Age:       intPtr(28),
			CreatedAt: time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC),
			Pets: []Pet{
				{ID: 1, Name: "Buddy", Species: "dog", Breed: "Golden Retriever", Age: intPtr(3)},
				{ID: 2, Name: "Whiskers", Species: "cat", Breed: "Persian", Age: intPtr(2)},
			},
		},
		{
			ID:        2,
			Name:      "Bob Smith",
			Email:     "bob.smith@example.com",
			Age:       intPtr(35),
			CreatedAt: time.Date(2023, 2, 20, 14, 45, 0, 0, time.UTC),
			Pets: []Pet{
				{ID: 3, Name: "Chirpy", Species: "bird", Breed: "Canary", Age: intPtr(1)},
			},
		},
		{
			ID:        3,
			Name:      "Carol Williams",
			Email:     "carol.williams@example.com",
			Age:       intPtr(42),
			CreatedAt: time.Date(2023, 3, 10, 9, 15, 0, 0, time.UTC),
			Pets: []Pet{
				{ID: 4, Name: "Max", Species: "dog", Breed: "German Shepherd", Age: intPtr(5)},
				{ID: 5, Name: "Luna", Species: "cat", Breed: "Siamese", Age: intPtr(3)},
				{ID: 6, Name: "Goldie", Species: "fish", Breed: "Goldfish", Age: intPtr(1)},
			},
		},
		{
			ID:        4,
			Name:      "David Brown",
			Email:     "david.brown@example.com",
			Age:       intPtr(29),
			CreatedAt: time.Date(2023, 4, 5, 16, 20, 0, 0, time.UTC),
			Pets:      []Pet{},
		},
		{
			ID:        5,
			Name:      "Emma Davis",
			Email:     "emma.davis@example.com",
			Age:       intPtr(31),
			CreatedAt: time.Date(2023, 5, 12, 11, 0, 0, 0, time.UTC),
			Pets: []Pet{
				{ID: 7, Name: "Rocky", Species: "dog", Breed: "Bulldog", Age: intPtr(4)},
			},
		},
	}
}
