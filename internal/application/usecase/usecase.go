package usecase

import (
	"errors"

	"jobtrack-backend/internal/application/domain"
)

var (
	// ErrNotFound covers both "no such application" and "owned by another
	// user"; the two are deliberately indistinguishable.
	ErrNotFound = errors.New("application not found")

	ErrBadDate    = errors.New("data must be in YYYY-MM-DD format")
	ErrBadStatus  = errors.New("unknown application status")
	ErrBadChance  = errors.New("chance must be between 0 and 100")
	ErrEmptyField = errors.New("nome, empresa and role must not be empty")
)

// ApplicationUsecase defines the interface for application business logic
type ApplicationUsecase interface {
	// CreateApplication creates an application owned by userID. The owner
	// is stamped server-side regardless of the request payload.
	CreateApplication(userID uint, req *CreateApplicationRequest) (*domain.Application, error)

	// GetApplications lists the user's applications, newest first
	GetApplications(userID uint) ([]*domain.Application, error)

	// GetApplicationByID retrieves one application (owner-scoped)
	GetApplicationByID(userID, id uint) (*domain.Application, error)

	// UpdateApplication applies a partial update (owner-scoped)
	UpdateApplication(userID, id uint, updates *ApplicationUpdateRequest) (*domain.Application, error)

	// DeleteApplication removes an application (owner-scoped)
	DeleteApplication(userID, id uint) error

	// GetUserStats aggregates the user's applications
	GetUserStats(userID uint) (*domain.Stats, error)
}

// CreateApplicationRequest carries the client-settable fields of a new
// application. Owner is never part of it.
type CreateApplicationRequest struct {
	Nome    string `json:"nome" binding:"required"`
	Empresa string `json:"empresa" binding:"required"`
	Data    string `json:"data" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Status  string `json:"status"`
	Chance  *int   `json:"chance"`
}

// ApplicationUpdateRequest represents the fields that can be updated
type ApplicationUpdateRequest struct {
	Nome    *string `json:"nome,omitempty"`
	Empresa *string `json:"empresa,omitempty"`
	Data    *string `json:"data,omitempty"`
	Role    *string `json:"role,omitempty"`
	Status  *string `json:"status,omitempty"`
	Chance  *int    `json:"chance,omitempty"`
}
