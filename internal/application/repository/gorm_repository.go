package repository

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"jobtrack-backend/internal/application/domain"
)

// gormApplicationRepository implements ApplicationRepository using GORM
type gormApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new GORM-based ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &gormApplicationRepository{db: db}
}

func (r *gormApplicationRepository) Create(app *domain.Application) error {
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	return r.db.Create(app).Error
}

func (r *gormApplicationRepository) FindByID(userID, id uint) (*domain.Application, error) {
	var app domain.Application
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *gormApplicationRepository) FindByUser(userID uint) ([]*domain.Application, error) {
	var apps []*domain.Application
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *gormApplicationRepository) Update(app *domain.Application) error {
	app.UpdatedAt = time.Now().UTC()
	return r.db.Save(app).Error
}

func (r *gormApplicationRepository) Delete(userID, id uint) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Application{})
	return res.RowsAffected > 0, res.Error
}

// monthExpr is the single dialect-aware date truncation used by Stats.
// Everything above it is dialect-agnostic.
func (r *gormApplicationRepository) monthExpr() string {
	if r.db.Dialector.Name() == "postgres" {
		return "to_char(created_at, 'YYYY-MM')"
	}
	return "strftime('%Y-%m', created_at)"
}

func (r *gormApplicationRepository) Stats(userID uint) (*domain.Stats, error) {
	stats := &domain.Stats{}

	scoped := func() *gorm.DB {
		return r.db.Model(&domain.Application{}).Where("user_id = ?", userID)
	}

	if err := scoped().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("status = ?", domain.StatusWaiting).Count(&stats.Esperando).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("status = ?", domain.StatusInterview).Count(&stats.Entrevista).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("status = ?", domain.StatusRejected).Count(&stats.Rejeitado).Error; err != nil {
		return nil, err
	}

	if stats.Total > 0 {
		stats.TaxaConversao = math.Round(float64(stats.Entrevista)/float64(stats.Total)*1000) / 10
	}

	var topCompany struct {
		Empresa string
		Count   int64
	}
	err := scoped().
		Select("empresa, COUNT(id) AS count").
		Group("empresa").
		Order("count DESC").
		Limit(1).
		Scan(&topCompany).Error
	if err != nil {
		return nil, err
	}
	if topCompany.Empresa != "" {
		stats.EmpresaTop = &topCompany.Empresa
		stats.EmpresaTopCount = topCompany.Count
	}

	var first string
	err = scoped().
		Select("data").
		Order("created_at ASC").
		Limit(1).
		Scan(&first).Error
	if err != nil {
		return nil, err
	}
	if first != "" {
		stats.PrimeiraCandidatura = &first
	}

	var lastInterview string
	err = scoped().
		Select("data").
		Where("status = ?", domain.StatusInterview).
		Order("updated_at DESC").
		Limit(1).
		Scan(&lastInterview).Error
	if err != nil {
		return nil, err
	}
	if lastInterview != "" {
		stats.UltimaEntrevista = &lastInterview
	}

	var topMonth struct {
		Mes   string
		Count int64
	}
	err = scoped().
		Select(r.monthExpr() + " AS mes, COUNT(id) AS count").
		Group(r.monthExpr()).
		Order("count DESC").
		Limit(1).
		Scan(&topMonth).Error
	if err != nil {
		return nil, err
	}
	if topMonth.Mes != "" {
		stats.MesMaisAtivo = &topMonth.Mes
		stats.MesMaisAtivoCount = topMonth.Count
	}

	return stats, nil
}
