package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appDelivery "jobtrack-backend/internal/application/delivery"
	appUsecasePkg "jobtrack-backend/internal/application/usecase"
	authDelivery "jobtrack-backend/internal/auth/delivery"
	authUsecasePkg "jobtrack-backend/internal/auth/usecase"
	interviewDelivery "jobtrack-backend/internal/interview/delivery"
	interviewUsecasePkg "jobtrack-backend/internal/interview/usecase"
	"jobtrack-backend/internal/notification"
	"jobtrack-backend/pkg/config"
	"jobtrack-backend/pkg/metrics"
)

type Handler struct {
	authUsecase      authUsecasePkg.AuthUsecase
	authHandler      *authDelivery.AuthHandler
	appHandler       *appDelivery.ApplicationHandler
	interviewHandler *interviewDelivery.InterviewHandler
	notifHandler     *notification.Handler
	loginLimiter     *RateLimiter
	config           *config.Config
	logger           *zap.Logger
}

func NewHandler(
	authUc authUsecasePkg.AuthUsecase,
	appUc appUsecasePkg.ApplicationUsecase,
	interviewUc interviewUsecasePkg.InterviewUsecase,
	notifService *notification.Service,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authUsecase:      authUc,
		authHandler:      authDelivery.NewAuthHandler(authUc),
		appHandler:       appDelivery.NewApplicationHandler(appUc),
		interviewHandler: interviewDelivery.NewInterviewHandler(interviewUc),
		notifHandler:     notification.NewHandler(notifService),
		loginLimiter:     NewRateLimiter(30, 10),
		config:           cfg,
		logger:           logger,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger(h.logger))
	r.Use(metrics.Middleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
