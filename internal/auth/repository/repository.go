package repository

import (
	authdomain "jobtrack-backend/internal/auth/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user record
	Create(user *authdomain.User) error

	// FindByEmail finds a user by exact email; returns nil when absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID finds a user by its numeric ID; returns nil when absent
	FindByID(id uint) (*authdomain.User, error)

	// UpdatePassword replaces the stored password hash
	UpdatePassword(id uint, hashedPassword string) error
}
