package domain

import "time"

// Type represents the kind of interview
type Type string

const (
	TypePhone      Type = "phone"
	TypeVideo      Type = "video"
	TypeInPerson   Type = "in_person"
	TypeTechnical  Type = "technical"
	TypeBehavioral Type = "behavioral"
	TypeHR         Type = "hr"
)

func (t Type) Valid() bool {
	switch t {
	case TypePhone, TypeVideo, TypeInPerson, TypeTechnical, TypeBehavioral, TypeHR:
		return true
	}
	return false
}

// Status represents the current state of an interview. As with
// applications, updates may move between any two values.
type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// Interview belongs to an application; ownership is transitive through it.
type Interview struct {
	ID            uint `json:"id" gorm:"primaryKey"`
	ApplicationID uint `json:"application_id" gorm:"index;not null"`

	InterviewDatetime time.Time `json:"interview_datetime" gorm:"not null"`
	InterviewType     Type      `json:"interview_type" gorm:"not null"`
	InterviewerName   string    `json:"interviewer_name,omitempty"`
	InterviewerRole   string    `json:"interviewer_role,omitempty"`
	DurationMinutes   *int      `json:"duration_minutes,omitempty"`
	Status            Status    `json:"status" gorm:"default:scheduled"`

	QuestionsAsked   string `json:"questions_asked,omitempty"`
	AnswersNotes     string `json:"answers_notes,omitempty"`
	FeedbackReceived string `json:"feedback_received,omitempty"`
	SelfRating       *int   `json:"self_rating,omitempty"` // 1-5

	PreInterviewNotes  string `json:"pre_interview_notes,omitempty"`
	PostInterviewNotes string `json:"post_interview_notes,omitempty"`
	MeetingLink        string `json:"meeting_link,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Interview) TableName() string { return "interviews" }

// InterviewWithApplication is the list shape: the interview plus the name
// and company of its application.
type InterviewWithApplication struct {
	Interview          `gorm:"embedded"`
	ApplicationNome    string `json:"application_nome"`
	ApplicationEmpresa string `json:"application_empresa"`
}
