package pets

import "time"

// Pet is a single pet owned by a user. Species is free text and compared
// case-insensitively wherever it is used as a filter.
type Pet struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed,omitempty"`
	Age     *int   `json:"age,omitempty"` // years, 0-50
}

// User is an immutable record from the fixed dataset. Pets may be empty.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Pets      []Pet     `json:"pets"`
}

// Statistics aggregates pet ownership over the whole dataset.
type Statistics struct {
	TotalUsers         int            `json:"total_users"`
	TotalPets          int            `json:"total_pets"`
	UsersWithNoPets    int            `json:"users_with_no_pets"`
	UsersWithPets      int            `json:"users_with_pets"`
	AveragePetsPerUser float64        `json:"average_pets_per_user"`
	PetSpeciesCount    map[string]int `json:"pet_species_count"`
}
