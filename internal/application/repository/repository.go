package repository

import (
	"jobtrack-backend/internal/application/domain"
)

// ApplicationRepository defines the interface for application data access.
// Every read/update/delete is scoped to the owner in a single query;
// records owned by someone else are indistinguishable from absent ones.
type ApplicationRepository interface {
	// Create persists a new application
	Create(app *domain.Application) error

	// FindByID finds the user's application by ID; returns nil when the
	// record is absent or owned by another user
	FindByID(userID, id uint) (*domain.Application, error)

	// FindByUser lists the user's applications, newest first
	FindByUser(userID uint) ([]*domain.Application, error)

	// Update saves an already-loaded application (last write wins)
	Update(app *domain.Application) error

	// Delete removes the user's application; reports whether a row matched
	Delete(userID, id uint) (bool, error)

	// Stats aggregates the user's applications
	Stats(userID uint) (*domain.Stats, error)
}
