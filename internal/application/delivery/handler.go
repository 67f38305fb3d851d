package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobtrack-backend/internal/application/domain"
	"jobtrack-backend/internal/application/usecase"
	authdelivery "jobtrack-backend/internal/auth/delivery"
)

// ApplicationHandler handles application-related HTTP requests
type ApplicationHandler struct {
	appUsecase usecase.ApplicationUsecase
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(appUsecase usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{appUsecase: appUsecase}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func isValidationErr(err error) bool {
	return errors.Is(err, usecase.ErrBadDate) ||
		errors.Is(err, usecase.ErrBadStatus) ||
		errors.Is(err, usecase.ErrBadChance) ||
		errors.Is(err, usecase.ErrEmptyField)
}

// GetApplications lists the authenticated user's applications
// GET /applications
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	apps, err := h.appUsecase.GetApplications(user.ID)
	if err != nil {
		zap.L().Error("list applications failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if apps == nil {
		apps = []*domain.Application{}
	}
	c.JSON(http.StatusOK, apps)
}

// CreateApplication creates a new application
// POST /applications
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	var req usecase.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.appUsecase.CreateApplication(user.ID, &req)
	if err != nil {
		if isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("create application failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, app)
}

// GetApplicationByID returns a specific application
// GET /applications/:id
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	app, err := h.appUsecase.GetApplicationByID(user.ID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("get application failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, app)
}

// UpdateApplication applies a partial update to an application
// PUT /applications/:id
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var updates usecase.ApplicationUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.appUsecase.UpdateApplication(user.ID, id, &updates)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case isValidationErr(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			zap.L().Error("update application failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, app)
}

// DeleteApplication removes an application
// DELETE /applications/:id
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.appUsecase.DeleteApplication(user.ID, id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("delete application failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUserStats aggregates the authenticated user's applications
// GET /users/me/stats
func (h *ApplicationHandler) GetUserStats(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	stats, err := h.appUsecase.GetUserStats(user.ID)
	if err != nil {
		zap.L().Error("user stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
