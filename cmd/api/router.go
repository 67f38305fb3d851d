package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authDelivery "jobtrack-backend/internal/auth/delivery"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	requireAuth := authDelivery.AuthMiddleware(h.authUsecase)

	// Health check and metrics (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public Firebase settings for the frontend
	r.GET("/config/firebase", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"apiKey":            h.config.FirebaseAPIKey,
			"authDomain":        h.config.FirebaseAuthDomain,
			"projectId":         h.config.FirebaseProjectID,
			"storageBucket":     h.config.FirebaseStorageBucket,
			"messagingSenderId": h.config.FirebaseMessagingSenderID,
			"appId":             h.config.FirebaseAppID,
		})
	})

	// Auth routes; login entry points carry a brute-force rate limit
	auth := r.Group("/auth")
	auth.Use(h.loginLimiter.Middleware())
	{
		auth.POST("/register", h.authHandler.Register)
		auth.POST("/login", h.authHandler.Login)
		auth.POST("/google/login", h.authHandler.GoogleSignIn)
	}

	// User profile routes (protected)
	users := r.Group("/users")
	users.Use(requireAuth)
	{
		users.GET("/me", h.authHandler.Me)
		users.GET("/me/stats", h.appHandler.GetUserStats)
		users.PUT("/me/password", h.authHandler.ChangePassword)
	}

	// Application routes (protected)
	applications := r.Group("/applications")
	applications.Use(requireAuth)
	{
		applications.GET("", h.appHandler.GetApplications)
		applications.POST("", h.appHandler.CreateApplication)
		applications.GET("/:id", h.appHandler.GetApplicationByID)
		applications.PUT("/:id", h.appHandler.UpdateApplication)
		applications.DELETE("/:id", h.appHandler.DeleteApplication)
	}

	// Interview routes (protected)
	interviews := r.Group("/interviews")
	interviews.Use(requireAuth)
	{
		interviews.GET("", h.interviewHandler.GetInterviews)
		interviews.GET("/upcoming", h.interviewHandler.GetUpcomingInterviews)
		interviews.POST("", h.interviewHandler.CreateInterview)
		interviews.GET("/:id", h.interviewHandler.GetInterviewByID)
		interviews.PUT("/:id", h.interviewHandler.UpdateInterview)
		interviews.DELETE("/:id", h.interviewHandler.DeleteInterview)
	}

	// Notification routes (protected)
	notifications := r.Group("/notifications")
	notifications.Use(requireAuth)
	{
		notifications.GET("", h.notifHandler.GetNotifications)
	}
}
