package usecase

import (
	"errors"
	"time"

	"jobtrack-backend/internal/interview/domain"
)

var (
	// ErrNotFound covers both "no such interview" and "belongs to another
	// user's application".
	ErrNotFound = errors.New("interview not found")

	// ErrApplicationNotFound is returned when creating an interview for
	// an application the user does not own (or that does not exist).
	ErrApplicationNotFound = errors.New("application not found")

	ErrBadType   = errors.New("unknown interview type")
	ErrBadStatus = errors.New("unknown interview status")
	ErrBadRating = errors.New("self_rating must be between 1 and 5")
)

// InterviewUsecase defines the interface for interview business logic
type InterviewUsecase interface {
	// CreateInterview creates an interview under one of the user's
	// applications
	CreateInterview(userID uint, req *CreateInterviewRequest) (*domain.Interview, error)

	// GetInterviews lists the user's interviews with optional filters
	GetInterviews(userID uint, applicationID *uint, status *string) ([]*domain.InterviewWithApplication, error)

	// GetUpcomingInterviews lists the next scheduled interviews
	GetUpcomingInterviews(userID uint, limit int) ([]*domain.InterviewWithApplication, error)

	// GetInterviewByID retrieves one interview (owner-scoped)
	GetInterviewByID(userID, id uint) (*domain.Interview, error)

	// UpdateInterview applies a partial update (owner-scoped)
	UpdateInterview(userID, id uint, updates *InterviewUpdateRequest) (*domain.Interview, error)

	// DeleteInterview removes an interview (owner-scoped)
	DeleteInterview(userID, id uint) error
}

// CreateInterviewRequest carries the client-settable fields of a new
// interview.
type CreateInterviewRequest struct {
	ApplicationID     uint      `json:"application_id" binding:"required"`
	InterviewDatetime time.Time `json:"interview_datetime" binding:"required"`
	InterviewType     string    `json:"interview_type" binding:"required"`
	InterviewerName   string    `json:"interviewer_name"`
	InterviewerRole   string    `json:"interviewer_role"`
	DurationMinutes   *int      `json:"duration_minutes"`
	Status            string    `json:"status"`

	QuestionsAsked   string `json:"questions_asked"`
	AnswersNotes     string `json:"answers_notes"`
	FeedbackReceived string `json:"feedback_received"`
	SelfRating       *int   `json:"self_rating"`

	PreInterviewNotes  string `json:"pre_interview_notes"`
	PostInterviewNotes string `json:"post_interview_notes"`
	MeetingLink        string `json:"meeting_link"`
}

// InterviewUpdateRequest represents the fields that can be updated
type InterviewUpdateRequest struct {
	InterviewDatetime *time.Time `json:"interview_datetime,omitempty"`
	InterviewType     *string    `json:"interview_type,omitempty"`
	InterviewerName   *string    `json:"interviewer_name,omitempty"`
	InterviewerRole   *string    `json:"interviewer_role,omitempty"`
	DurationMinutes   *int       `json:"duration_minutes,omitempty"`
	Status            *string    `json:"status,omitempty"`

	QuestionsAsked   *string `json:"questions_asked,omitempty"`
	AnswersNotes     *string `json:"answers_notes,omitempty"`
	FeedbackReceived *string `json:"feedback_received,omitempty"`
	SelfRating       *int    `json:"self_rating,omitempty"`

	PreInterviewNotes  *string `json:"pre_interview_notes,omitempty"`
	PostInterviewNotes *string `json:"post_interview_notes,omitempty"`
	MeetingLink        *string `json:"meeting_link,omitempty"`
}
