package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authdelivery "jobtrack-backend/internal/auth/delivery"
	"jobtrack-backend/internal/interview/domain"
	"jobtrack-backend/internal/interview/usecase"
)

// InterviewHandler handles interview-related HTTP requests
type InterviewHandler struct {
	interviewUsecase usecase.InterviewUsecase
}

// NewInterviewHandler creates a new InterviewHandler
func NewInterviewHandler(interviewUsecase usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{interviewUsecase: interviewUsecase}
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
	return errors.Is(err, usecase.ErrBadType) ||
		errors.Is(err, usecase.ErrBadStatus) ||
		errors.Is(err, usecase.ErrBadRating)
}

// GetInterviews lists the user's interviews
// GET /interviews?application_id=&status=
func (h *InterviewHandler) GetInterviews(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	var applicationID *uint
	if raw := c.Query("application_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application_id"})
			return
		}
		id := uint(parsed)
		applicationID = &id
	}

	var status *string
	if raw := c.Query("status"); raw != "" {
		status = &raw
	}

	interviews, err := h.interviewUsecase.GetInterviews(user.ID, applicationID, status)
	if err != nil {
		if isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("list interviews failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if interviews == nil {
		interviews = []*domain.InterviewWithApplication{}
	}
	c.JSON(http.StatusOK, interviews)
}

// GetUpcomingInterviews lists the next scheduled interviews
// GET /interviews/upcoming?limit=5
func (h *InterviewHandler) GetUpcomingInterviews(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 || limit > 20 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 20"})
		return
	}

	interviews, err := h.interviewUsecase.GetUpcomingInterviews(user.ID, limit)
	if err != nil {
		zap.L().Error("upcoming interviews failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if interviews == nil {
		interviews = []*domain.InterviewWithApplication{}
	}
	c.JSON(http.StatusOK, interviews)
}

// CreateInterview creates an interview under one of the user's applications
// POST /interviews
func (h *InterviewHandler) CreateInterview(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	var req usecase.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interview, err := h.interviewUsecase.CreateInterview(user.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case isValidationErr(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			zap.L().Error("create interview failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, interview)
}

// GetInterviewByID returns a specific interview
// GET /interviews/:id
func (h *InterviewHandler) GetInterviewByID(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	interview, err := h.interviewUsecase.GetInterviewByID(user.ID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("get interview failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, interview)
}

// UpdateInterview applies a partial update to an interview
// PUT /interviews/:id
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var updates usecase.InterviewUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interview, err := h.interviewUsecase.UpdateInterview(user.ID, id, &updates)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case isValidationErr(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			zap.L().Error("update interview failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, interview)
}

// DeleteInterview removes an interview
// DELETE /interviews/:id
func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.interviewUsecase.DeleteInterview(user.ID, id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("delete interview failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
