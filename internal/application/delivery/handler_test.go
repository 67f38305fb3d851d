package delivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobtrack-backend/internal/application/domain"
	apprepo "jobtrack-backend/internal/application/repository"
	"jobtrack-backend/internal/application/usecase"
	authdelivery "jobtrack-backend/internal/auth/delivery"
	authdomain "jobtrack-backend/internal/auth/domain"
	authrepo "jobtrack-backend/internal/auth/repository"
	authusecase "jobtrack-backend/internal/auth/usecase"
	"jobtrack-backend/pkg/config"
	"jobtrack-backend/pkg/security"
)

// newTestRouter builds the application routes behind the real auth
// middleware, backed by an in-memory store.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &domain.Application{}))

	issuer, err := security.NewTokenIssuer("test-secret", "HS256")
	require.NoError(t, err)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTAlgorithm:      "HS256",
		AccessTokenExpiry: 30 * time.Minute,
		GoogleTokenExpiry: 7 * 24 * time.Hour,
	}

	authUc := authusecase.NewAuthUsecase(authrepo.NewUserRepository(db), issuer, nil, cfg)
	appUc := usecase.NewApplicationUsecase(apprepo.NewApplicationRepository(db))

	authHandler := authdelivery.NewAuthHandler(authUc)
	appHandler := NewApplicationHandler(appUc)

	r := gin.New()
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	requireAuth := authdelivery.AuthMiddleware(authUc)

	users := r.Group("/users", requireAuth)
	users.GET("/me/stats", appHandler.GetUserStats)

	applications := r.Group("/applications", requireAuth)
	{
		applications.GET("", appHandler.GetApplications)
		applications.POST("", appHandler.CreateApplication)
		applications.GET("/:id", appHandler.GetApplicationByID)
		applications.PUT("/:id", appHandler.UpdateApplication)
		applications.DELETE("/:id", appHandler.DeleteApplication)
	}
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signUp(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/register", "", gin.H{"email": email, "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.AccessToken
}

func createApplication(t *testing.T, r *gin.Engine, token string, body gin.H) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/applications", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var app domain.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &app))
	return app.ID
}

func validBody() gin.H {
	return gin.H{"nome": "Backend Engineer", "empresa": "Acme", "data": "2026-08-01", "role": "backend"}
}

func TestCreateAndGetApplication(t *testing.T) {
	r := newTestRouter(t)
	token := signUp(t, r, "ana@example.com")

	id := createApplication(t, r, token, validBody())

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/applications/%d", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var app domain.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &app))
	assert.Equal(t, "Backend Engineer", app.Nome)
	assert.Equal(t, domain.StatusWaiting, app.Status)
	assert.Equal(t, 50, app.Chance)
}

func TestOwnerIsStampedServerSide(t *testing.T) {
	r := newTestRouter(t)
	ana := signUp(t, r, "ana@example.com")
	bob := signUp(t, r, "bob@example.com")

	// A spoofed user_id in the payload is ignored: the record lands in
	// the caller's account.
	body := validBody()
	body["user_id"] = 999
	id := createApplication(t, r, ana, body)

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/applications/%d", id), ana, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/applications/%d", id), bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestForeignRecordIndistinguishableFromAbsent(t *testing.T) {
	r := newTestRouter(t)
	ana := signUp(t, r, "ana@example.com")
	bob := signUp(t, r, "bob@example.com")

	id := createApplication(t, r, ana, validBody())

	foreign := doJSON(r, http.MethodGet, fmt.Sprintf("/applications/%d", id), bob, nil)
	absent := doJSON(r, http.MethodGet, "/applications/999999", bob, nil)

	assert.Equal(t, http.StatusNotFound, foreign.Code)
	assert.Equal(t, http.StatusNotFound, absent.Code)
	assert.JSONEq(t, absent.Body.String(), foreign.Body.String())

	del := doJSON(r, http.MethodDelete, fmt.Sprintf("/applications/%d", id), bob, nil)
	assert.Equal(t, http.StatusNotFound, del.Code)
	assert.JSONEq(t, absent.Body.String(), del.Body.String())
}

func TestListOnlyOwn(t *testing.T) {
	r := newTestRouter(t)
	ana := signUp(t, r, "ana@example.com")
	bob := signUp(t, r, "bob@example.com")

	createApplication(t, r, ana, validBody())
	createApplication(t, r, ana, validBody())
	createApplication(t, r, bob, validBody())

	w := doJSON(r, http.MethodGet, "/applications", ana, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var apps []domain.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apps))
	assert.Len(t, apps, 2)
}

func TestUpdateApplicationOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := signUp(t, r, "ana@example.com")
	id := createApplication(t, r, token, validBody())

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/applications/%d", id), token, gin.H{"status": "entrevista"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var app domain.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &app))
	assert.Equal(t, domain.StatusInterview, app.Status)
	assert.Equal(t, "Acme", app.Empresa)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/applications/%d", id), token, gin.H{"status": "ghosted"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvalidPathID(t *testing.T) {
	r := newTestRouter(t)
	token := signUp(t, r, "ana@example.com")

	w := doJSON(r, http.MethodGet, "/applications/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserStatsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := signUp(t, r, "ana@example.com")

	createApplication(t, r, token, validBody())
	body := validBody()
	body["status"] = "entrevista"
	createApplication(t, r, token, body)

	w := doJSON(r, http.MethodGet, "/users/me/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stats domain.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 1, stats.Esperando)
	assert.EqualValues(t, 1, stats.Entrevista)
	assert.InDelta(t, 50.0, stats.TaxaConversao, 0.01)
}
