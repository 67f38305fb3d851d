package repository

import (
	"time"

	"jobtrack-backend/internal/interview/domain"
)

// InterviewRepository defines the interface for interview data access.
// Ownership is enforced through the parent application in every query.
type InterviewRepository interface {
	// Create persists a new interview
	Create(interview *domain.Interview) error

	// FindByID finds the user's interview by ID; returns nil when the
	// record is absent or its application is owned by another user
	FindByID(userID, id uint) (*domain.Interview, error)

	// FindByUser lists the user's interviews, newest first, optionally
	// filtered by application and status
	FindByUser(userID uint, applicationID *uint, status *domain.Status) ([]*domain.InterviewWithApplication, error)

	// FindUpcoming lists the user's next scheduled interviews from now on
	FindUpcoming(userID uint, now time.Time, limit int) ([]*domain.InterviewWithApplication, error)

	// FindScheduledBetween lists the user's scheduled interviews within
	// [from, to), soonest first
	FindScheduledBetween(userID uint, from, to time.Time) ([]*domain.InterviewWithApplication, error)

	// Update saves an already-loaded interview (last write wins)
	Update(interview *domain.Interview) error

	// Delete removes the user's interview; reports whether a row matched
	Delete(userID, id uint) (bool, error)
}
