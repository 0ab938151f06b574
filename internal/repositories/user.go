package repositories

import "goflix/internal/models"

// UserRepository stores user aggregates, profiles included.
type UserRepository struct {
	*Store[*models.User]
}

// NewUserRepository creates an empty user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{Store: NewStore[*models.User]()}
}

// FindByEmail scans for a user by exact, case-sensitive email match.
func (r *UserRepository) FindByEmail(email string) (*models.User, bool) {
	for _, u := range r.FindAll() {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}
