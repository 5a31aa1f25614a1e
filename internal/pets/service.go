// Package pets holds the user/pet dataset and the lookup service over it.
// The dataset is a process-lifetime constant; the service never mutates it,
// so concurrent reads need no locking.
package pets

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

// ErrInvalidUserID is returned when a user id is not a positive integer.
var ErrInvalidUserID = errors.New("user_id must be a positive integer")

// ErrUserNotFound is returned when no user exists with the requested id.
var ErrUserNotFound = errors.New("user not found")

// Service answers lookups over a fixed user dataset.
type Service struct {
	users  []User
	logger *zap.Logger
}

// NewService returns a Service over the given dataset. An empty dataset is
// legal; statistics over it are all zero.
func NewService(users []User, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, logger: logger}
}

// List returns all users in dataset order.
func (s *Service) List() []User {
	s.logger.Debug("listing all users", zap.Int("count", len(s.users)))
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// ListBySpecies returns users owning at least one pet of the given species,
// compared case-insensitively. A blank filter matches nothing, and dataset
// order is preserved.
func (s *Service) ListBySpecies(species string) []User {
	want := strings.ToLower(strings.TrimSpace(species))
	out := make([]User, 0)
	if want == "" {
		return out
	}
	for _, u := range s.users {
		for _, p := range u.Pets {
			if strings.ToLower(p.Species) == want {
				out = append(out, u)
				break
			}
		}
	}
	s.logger.Debug("filtered users by species",
		zap.String("species", want),
		zap.Int("matches", len(out)))
	return out
}

// Get returns the user with the given id. It fails with ErrInvalidUserID for
// non-positive ids and ErrUserNotFound when the id is absent.
func (s *Service) Get(id int) (User, error) {
	if id <= 0 {
		return User{}, ErrInvalidUserID
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	s.logger.Warn("user not found", zap.Int("user_id", id))
	return User{}, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
}

// Statistics aggregates pet ownership across the dataset. The average is
// rounded to two decimals and defined as 0 when there are no users.
func (s *Service) Statistics() Statistics {
	stats := Statistics{
		TotalUsers:      len(s.users),
		PetSpeciesCount: make(map[string]int),
	}
	for _, u := range s.users {
		stats.TotalPets += len(u.Pets)
		if len(u.Pets) == 0 {
			stats.UsersWithNoPets++
		} else {
			stats.UsersWithPets++
		}
		for _, p := range u.Pets {
			stats.PetSpeciesCount[p.Species]++
		}
	}
	if stats.TotalUsers > 0 {
		avg := float64(stats.TotalPets) / float64(stats.TotalUsers)
		stats.AveragePetsPerUser = math.Round(avg*100) / 100
	}
	return stats
}
