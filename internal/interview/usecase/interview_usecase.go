package usecase

import (
	"time"

	apprepo "jobtrack-backend/internal/application/repository"
	"jobtrack-backend/internal/interview/domain"
	"jobtrack-backend/internal/interview/repository"
)

// interviewUsecase implements InterviewUsecase
type interviewUsecase struct {
	interviewRepo repository.InterviewRepository
	appRepo       apprepo.ApplicationRepository
}

// NewInterviewUsecase creates a new instance of interviewUsecase
func NewInterviewUsecase(interviewRepo repository.InterviewRepository, appRepo apprepo.ApplicationRepository) InterviewUsecase {
	return &interviewUsecase{
		interviewRepo: interviewRepo,
		appRepo:       appRepo,
	}
}

func validRating(r *int) bool {
	return r == nil || (*r >= 1 && *r <= 5)
}

func (u *interviewUsecase) CreateInterview(userID uint, req *CreateInterviewRequest) (*domain.Interview, error) {
	// The referenced application must belong to the caller; a foreign
	// application is reported as absent.
	app, err := u.appRepo.FindByID(userID, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	interviewType := domain.Type(req.InterviewType)
	if !interviewType.Valid() {
		return nil, ErrBadType
	}

	status := domain.StatusScheduled
	if req.Status != "" {
		status = domain.Status(req.Status)
		if !status.Valid() {
			return nil, ErrBadStatus
		}
	}

	if !validRating(req.SelfRating) {
		return nil, ErrBadRating
	}

	interview := &domain.Interview{
		ApplicationID:     req.ApplicationID,
		InterviewDatetime: req.InterviewDatetime,
		InterviewType:     interviewType,
		InterviewerName:   req.InterviewerName,
		InterviewerRole:   req.InterviewerRole,
		DurationMinutes:   req.DurationMinutes,
		Status:            status,

		QuestionsAsked:   req.QuestionsAsked,
		AnswersNotes:     req.AnswersNotes,
		FeedbackReceived: req.FeedbackReceived,
		SelfRating:       req.SelfRating,

		PreInterviewNotes:  req.PreInterviewNotes,
		PostInterviewNotes: req.PostInterviewNotes,
		MeetingLink:        req.MeetingLink,
	}
	if err := u.interviewRepo.Create(interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (u *interviewUsecase) GetInterviews(userID uint, applicationID *uint, status *string) ([]*domain.InterviewWithApplication, error) {
	var statusFilter *domain.Status
	if status != nil && *status != "" {
		s := domain.Status(*status)
		if !s.Valid() {
			return nil, ErrBadStatus
		}
		statusFilter = &s
	}
	return u.interviewRepo.FindByUser(userID, applicationID, statusFilter)
}

func (u *interviewUsecase) GetUpcomingInterviews(userID uint, limit int) ([]*domain.InterviewWithApplication, error) {
	return u.interviewRepo.FindUpcoming(userID, time.Now().UTC(), limit)
}

func (u *interviewUsecase) GetInterviewByID(userID, id uint) (*domain.Interview, error) {
	interview, err := u.interviewRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, ErrNotFound
	}
	return interview, nil
}

func (u *interviewUsecase) UpdateInterview(userID, id uint, updates *InterviewUpdateRequest) (*domain.Interview, error) {
	interview, err := u.interviewRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, ErrNotFound
	}

	if updates.InterviewDatetime != nil {
		interview.InterviewDatetime = *updates.InterviewDatetime
	}
	if updates.InterviewType != nil {
		interviewType := domain.Type(*updates.InterviewType)
		if !interviewType.Valid() {
			return nil, ErrBadType
		}
		interview.InterviewType = interviewType
	}
	if updates.Status != nil {
		status := domain.Status(*updates.Status)
		if !status.Valid() {
			return nil, ErrBadStatus
		}
		interview.Status = status
	}
	if updates.SelfRating != nil {
		if !validRating(updates.SelfRating) {
			return nil, ErrBadRating
		}
		interview.SelfRating = updates.SelfRating
	}
	if updates.InterviewerName != nil {
		interview.InterviewerName = *updates.InterviewerName
	}
	if updates.InterviewerRole != nil {
		interview.InterviewerRole = *updates.InterviewerRole
	}
	if updates.DurationMinutes != nil {
		interview.DurationMinutes = updates.DurationMinutes
	}
	if updates.QuestionsAsked != nil {
		interview.QuestionsAsked = *updates.QuestionsAsked
	}
	if updates.AnswersNotes != nil {
		interview.AnswersNotes = *updates.AnswersNotes
	}
	if updates.FeedbackReceived != nil {
		interview.FeedbackReceived = *updates.FeedbackReceived
	}
	if updates.PreInterviewNotes != nil {
		interview.PreInterviewNotes = *updates.PreInterviewNotes
	}
	if updates.PostInterviewNotes != nil {
		interview.PostInterviewNotes = *updates.PostInterviewNotes
	}
	if updates.MeetingLink != nil {
		interview.MeetingLink = *updates.MeetingLink
	}

	if err := u.interviewRepo.Update(interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (u *interviewUsecase) DeleteInterview(userID, id uint) error {
	deleted, err := u.interviewRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
