package domain

import "time"

// Status represents the current state of a job application. Wire values
// keep the original API vocabulary.
type Status string

const (
	StatusWaiting   Status = "esperando"
	StatusRejected  Status = "rejeitado"
	StatusInterview Status = "entrevista"
)

// Valid reports whether s is a known status value. No transition graph is
// enforced: any status may move to any other via update.
func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusRejected, StatusInterview:
		return true
	}
	return false
}

// Application represents one job application owned by a user.
type Application struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"not null"`    // Position title
	Empresa   string    `json:"empresa" gorm:"not null"` // Company name
	Data      string    `json:"data" gorm:"not null"`    // Application date, YYYY-MM-DD
	Status    Status    `json:"status" gorm:"default:esperando"`
	Chance    int       `json:"chance" gorm:"default:50"` // Estimated success chance (0-100)
	Role      string    `json:"role" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
}

func (Application) TableName() string { return "applications" }

// Stats aggregates a user's applications for the dashboard.
type Stats struct {
	Total               int64   `json:"total"`
	Esperando           int64   `json:"esperando"`
	Entrevista          int64   `json:"entrevista"`
	Rejeitado           int64   `json:"rejeitado"`
	TaxaConversao       float64 `json:"taxa_conversao"`
	EmpresaTop          *string `json:"empresa_top"`
	EmpresaTopCount     int64   `json:"empresa_top_count"`
	PrimeiraCandidatura *string `json:"primeira_candidatura"`
	UltimaEntrevista    *string `json:"ultima_entrevista"`
	MesMaisAtivo        *string `json:"mes_mais_ativo"`
	MesMaisAtivoCount   int64   `json:"mes_mais_ativo_count"`
}
