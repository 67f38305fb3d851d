// Package notification derives interview reminders from the interviews a
// user already has on record. Nothing is persisted or pushed; the digest
// is computed on every read.
package notification

import (
	"time"

	interviewdomain "jobtrack-backend/internal/interview/domain"
	"jobtrack-backend/internal/interview/repository"
)

// Reminder is one upcoming scheduled interview, flattened for clients.
type Reminder struct {
	ID                 uint      `json:"id"`
	ApplicationID      uint      `json:"application_id"`
	InterviewDatetime  time.Time `json:"interview_datetime"`
	InterviewType      string    `json:"interview_type"`
	InterviewerName    string    `json:"interviewer_name,omitempty"`
	DurationMinutes    *int      `json:"duration_minutes,omitempty"`
	MeetingLink        string    `json:"meeting_link,omitempty"`
	ApplicationNome    string    `json:"application_nome"`
	ApplicationEmpresa string    `json:"application_empresa"`
}

// Digest buckets the user's scheduled interviews by proximity.
type Digest struct {
	Today      []Reminder `json:"today"`
	Tomorrow   []Reminder `json:"tomorrow"`
	ThisWeek   []Reminder `json:"this_week"`
	TotalCount int        `json:"total_count"`
}

// Service computes reminder digests
type Service struct {
	interviewRepo repository.InterviewRepository
}

// NewService creates a new notification Service
func NewService(interviewRepo repository.InterviewRepository) *Service {
	return &Service{interviewRepo: interviewRepo}
}

// UpcomingDigest returns the user's scheduled future interviews split into
// today, tomorrow and the rest of the next seven days.
func (s *Service) UpcomingDigest(userID uint, now time.Time) (*Digest, error) {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)
	tomorrowEnd := todayStart.AddDate(0, 0, 2)
	weekEnd := todayStart.AddDate(0, 0, 7)

	// Past interviews are never reminded about, so "today" starts at now.
	today, err := s.interviewRepo.FindScheduledBetween(userID, now, todayEnd)
	if err != nil {
		return nil, err
	}
	tomorrow, err := s.interviewRepo.FindScheduledBetween(userID, todayEnd, tomorrowEnd)
	if err != nil {
		return nil, err
	}
	week, err := s.interviewRepo.FindScheduledBetween(userID, tomorrowEnd, weekEnd)
	if err != nil {
		return nil, err
	}

	digest := &Digest{
		Today:    toReminders(today),
		Tomorrow: toReminders(tomorrow),
		ThisWeek: toReminders(week),
	}
	digest.TotalCount = len(digest.Today) + len(digest.Tomorrow) + len(digest.ThisWeek)
	return digest, nil
}

func toReminders(interviews []*interviewdomain.InterviewWithApplication) []Reminder {
	reminders := make([]Reminder, 0, len(interviews))
	for _, iv := range interviews {
		reminders = append(reminders, Reminder{
			ID:                 iv.ID,
			ApplicationID:      iv.ApplicationID,
			InterviewDatetime:  iv.InterviewDatetime,
			InterviewType:      string(iv.InterviewType),
			InterviewerName:    iv.InterviewerName,
			DurationMinutes:    iv.DurationMinutes,
			MeetingLink:        iv.MeetingLink,
			ApplicationNome:    iv.ApplicationNome,
			ApplicationEmpresa: iv.ApplicationEmpresa,
		})
	}
	return reminders
}
