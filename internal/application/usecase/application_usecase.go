package usecase

import (
	"time"

	"jobtrack-backend/internal/application/domain"
	"jobtrack-backend/internal/application/repository"
)

// applicationUsecase implements ApplicationUsecase
type applicationUsecase struct {
	appRepo repository.ApplicationRepository
}

// NewApplicationUsecase creates a new instance of applicationUsecase
func NewApplicationUsecase(appRepo repository.ApplicationRepository) ApplicationUsecase {
	return &applicationUsecase{appRepo: appRepo}
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func (u *applicationUsecase) CreateApplication(userID uint, req *CreateApplicationRequest) (*domain.Application, error) {
	if !validDate(req.Data) {
		return nil, ErrBadDate
	}

	status := domain.StatusWaiting
	if req.Status != "" {
		status = domain.Status(req.Status)
		if !status.Valid() {
			return nil, ErrBadStatus
		}
	}

	chance := 50
	if req.Chance != nil {
		chance = *req.Chance
		if chance < 0 || chance > 100 {
			return nil, ErrBadChance
		}
	}

	app := &domain.Application{
		Nome:    req.Nome,
		Empresa: req.Empresa,
		Data:    req.Data,
		Role:    req.Role,
		Status:  status,
		Chance:  chance,
		UserID:  userID, // owner stamped server-side
	}
	if err := u.appRepo.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) GetApplications(userID uint) ([]*domain.Application, error) {
	return u.appRepo.FindByUser(userID)
}

func (u *applicationUsecase) GetApplicationByID(userID, id uint) (*domain.Application, error) {
	app, err := u.appRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}
	return app, nil
}

func (u *applicationUsecase) UpdateApplication(userID, id uint, updates *ApplicationUpdateRequest) (*domain.Application, error) {
	app, err := u.appRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}

	if updates.Nome != nil {
		if *updates.Nome == "" {
			return nil, ErrEmptyField
		}
		app.Nome = *updates.Nome
	}
	if updates.Empresa != nil {
		if *updates.Empresa == "" {
			return nil, ErrEmptyField
		}
		app.Empresa = *updates.Empresa
	}
	if updates.Role != nil {
		if *updates.Role == "" {
			return nil, ErrEmptyField
		}
		app.Role = *updates.Role
	}
	if updates.Data != nil {
		if !validDate(*updates.Data) {
			return nil, ErrBadDate
		}
		app.Data = *updates.Data
	}
	if updates.Status != nil {
		status := domain.Status(*updates.Status)
		if !status.Valid() {
			return nil, ErrBadStatus
		}
		// Any status may move to any other; no transition graph.
		app.Status = status
	}
	if updates.Chance != nil {
		if *updates.Chance < 0 || *updates.Chance > 100 {
			return nil, ErrBadChance
		}
		app.Chance = *updates.Chance
	}

	if err := u.appRepo.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) DeleteApplication(userID, id uint) error {
	deleted, err := u.appRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (u *applicationUsecase) GetUserStats(userID uint) (*domain.Stats, error) {
	return u.appRepo.Stats(userID)
}
