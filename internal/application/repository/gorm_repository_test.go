package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobtrack-backend/internal/application/domain"
	authdomain "jobtrack-backend/internal/auth/domain"
)

func newTestRepo(t *testing.T) (ApplicationRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &domain.Application{}))
	return NewApplicationRepository(db), db
}

func seedApp(t *testing.T, repo ApplicationRepository, userID uint, empresa string, status domain.Status) *domain.Application {
	t.Helper()
	app := &domain.Application{
		Nome:    "Backend Engineer",
		Empresa: empresa,
		Data:    "2026-08-01",
		Status:  status,
		Chance:  50,
		Role:    "backend",
		UserID:  userID,
	}
	require.NoError(t, repo.Create(app))
	return app
}

func TestFindByIDScopedToOwner(t *testing.T) {
	repo, _ := newTestRepo(t)

	mine := seedApp(t, repo, 1, "Acme", domain.StatusWaiting)

	got, err := repo.FindByID(1, mine.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, mine.ID, got.ID)

	// Another user's lookup of the same ID behaves exactly like a
	// lookup of an ID that was never assigned.
	foreign, err := repo.FindByID(2, mine.ID)
	require.NoError(t, err)
	absent, err2 := repo.FindByID(1, mine.ID+1000)
	require.NoError(t, err2)
	assert.Nil(t, foreign)
	assert.Nil(t, absent)
}

func TestDeleteScopedToOwner(t *testing.T) {
	repo, _ := newTestRepo(t)

	mine := seedApp(t, repo, 1, "Acme", domain.StatusWaiting)

	deleted, err := repo.Delete(2, mine.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// The record is still there for its owner.
	got, err := repo.FindByID(1, mine.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	deleted, err = repo.Delete(1, mine.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err = repo.FindByID(1, mine.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindByUserOnlyOwn(t *testing.T) {
	repo, _ := newTestRepo(t)

	seedApp(t, repo, 1, "Acme", domain.StatusWaiting)
	seedApp(t, repo, 1, "Globex", domain.StatusWaiting)
	seedApp(t, repo, 2, "Initech", domain.StatusWaiting)

	apps, err := repo.FindByUser(1)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	for _, app := range apps {
		assert.EqualValues(t, 1, app.UserID)
	}
}

func TestStatsAggregation(t *testing.T) {
	repo, db := newTestRepo(t)

	seedApp(t, repo, 1, "Acme", domain.StatusWaiting)
	seedApp(t, repo, 1, "Acme", domain.StatusInterview)
	rejected := seedApp(t, repo, 1, "Globex", domain.StatusRejected)
	// Another user's data must not leak into the aggregate.
	seedApp(t, repo, 2, "Initech", domain.StatusInterview)

	// Move one record into a different month so the busiest month is
	// unambiguous.
	older := time.Date(2000, 7, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&domain.Application{}).
		Where("id = ?", rejected.ID).
		Update("created_at", older).Error)

	stats, err := repo.Stats(1)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 1, stats.Esperando)
	assert.EqualValues(t, 1, stats.Entrevista)
	assert.EqualValues(t, 1, stats.Rejeitado)
	assert.InDelta(t, 33.3, stats.TaxaConversao, 0.01)

	require.NotNil(t, stats.EmpresaTop)
	assert.Equal(t, "Acme", *stats.EmpresaTop)
	assert.EqualValues(t, 2, stats.EmpresaTopCount)

	require.NotNil(t, stats.PrimeiraCandidatura)
	assert.Equal(t, "2026-08-01", *stats.PrimeiraCandidatura)

	require.NotNil(t, stats.UltimaEntrevista)
	assert.Equal(t, "2026-08-01", *stats.UltimaEntrevista)

	require.NotNil(t, stats.MesMaisAtivo)
	assert.EqualValues(t, 2, stats.MesMaisAtivoCount)
}

func TestStatsEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	stats, err := repo.Stats(1)
	require.NoError(t, err)

	assert.EqualValues(t, 0, stats.Total)
	assert.Zero(t, stats.TaxaConversao)
	assert.Nil(t, stats.EmpresaTop)
	assert.Nil(t, stats.PrimeiraCandidatura)
	assert.Nil(t, stats.UltimaEntrevista)
	assert.Nil(t, stats.MesMaisAtivo)
}
