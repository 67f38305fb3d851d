package notification

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authdelivery "jobtrack-backend/internal/auth/delivery"
)

// Handler serves the reminder digest
type Handler struct {
	service *Service
}

// NewHandler creates a new notification Handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetNotifications returns the authenticated user's reminder digest
// GET /notifications
func (h *Handler) GetNotifications(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	digest, err := h.service.UpcomingDigest(user.ID, time.Now().UTC())
	if err != nil {
		zap.L().Error("notification digest failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, digest)
}
