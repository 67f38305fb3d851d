package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobtrack-backend/internal/interview/domain"
)

// ownerScope restricts a query to interviews whose application belongs to
// the given user, as part of the same statement.
const ownerScope = "application_id IN (SELECT id FROM applications WHERE user_id = ?)"

const withApplication = "interviews.*, applications.nome AS application_nome, applications.empresa AS application_empresa"

// gormInterviewRepository implements InterviewRepository using GORM
type gormInterviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository creates a new GORM-based InterviewRepository
func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &gormInterviewRepository{db: db}
}

func (r *gormInterviewRepository) Create(interview *domain.Interview) error {
	now := time.Now().UTC()
	interview.CreatedAt = now
	interview.UpdatedAt = now
	return r.db.Create(interview).Error
}

func (r *gormInterviewRepository) FindByID(userID, id uint) (*domain.Interview, error) {
	var interview domain.Interview
	err := r.db.Where("id = ? AND "+ownerScope, id, userID).First(&interview).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &interview, nil
}

// joined starts a query over interviews joined with their applications,
// scoped to the owner.
func (r *gormInterviewRepository) joined(userID uint) *gorm.DB {
	return r.db.Model(&domain.Interview{}).
		Select(withApplication).
		Joins("JOIN applications ON applications.id = interviews.application_id").
		Where("applications.user_id = ?", userID)
}

func (r *gormInterviewRepository) FindByUser(userID uint, applicationID *uint, status *domain.Status) ([]*domain.InterviewWithApplication, error) {
	query := r.joined(userID)
	if applicationID != nil {
		query = query.Where("interviews.application_id = ?", *applicationID)
	}
	if status != nil {
		query = query.Where("interviews.status = ?", *status)
	}

	var interviews []*domain.InterviewWithApplication
	err := query.Order("interviews.interview_datetime DESC").Scan(&interviews).Error
	return interviews, err
}

func (r *gormInterviewRepository) FindUpcoming(userID uint, now time.Time, limit int) ([]*domain.InterviewWithApplication, error) {
	var interviews []*domain.InterviewWithApplication
	err := r.joined(userID).
		Where("interviews.status = ?", domain.StatusScheduled).
		Where("interviews.interview_datetime >= ?", now).
		Order("interviews.interview_datetime ASC").
		Limit(limit).
		Scan(&interviews).Error
	return interviews, err
}

func (r *gormInterviewRepository) FindScheduledBetween(userID uint, from, to time.Time) ([]*domain.InterviewWithApplication, error) {
	var interviews []*domain.InterviewWithApplication
	err := r.joined(userID).
		Where("interviews.status = ?", domain.StatusScheduled).
		Where("interviews.interview_datetime >= ? AND interviews.interview_datetime < ?", from, to).
		Order("interviews.interview_datetime ASC").
		Scan(&interviews).Error
	return interviews, err
}

func (r *gormInterviewRepository) Update(interview *domain.Interview) error {
	interview.UpdatedAt = time.Now().UTC()
	return r.db.Save(interview).Error
}

func (r *gormInterviewRepository) Delete(userID, id uint) (bool, error) {
	res := r.db.Where("id = ? AND "+ownerScope, id, userID).Delete(&domain.Interview{})
	return res.RowsAffected > 0, res.Error
}
