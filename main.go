package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	api "jobtrack-backend/cmd/api"
	appdomain "jobtrack-backend/internal/application/domain"
	appRepo "jobtrack-backend/internal/application/repository"
	appUsecase "jobtrack-backend/internal/application/usecase"
	authdomain "jobtrack-backend/internal/auth/domain"
	authRepo "jobtrack-backend/internal/auth/repository"
	authUsecase "jobtrack-backend/internal/auth/usecase"
	interviewdomain "jobtrack-backend/internal/interview/domain"
	interviewRepo "jobtrack-backend/internal/interview/repository"
	interviewUsecase "jobtrack-backend/internal/interview/usecase"
	"jobtrack-backend/internal/notification"
	"jobtrack-backend/pkg/config"
	"jobtrack-backend/pkg/database"
	"jobtrack-backend/pkg/googleauth"
	"jobtrack-backend/pkg/logger"
	"jobtrack-backend/pkg/metrics"
	"jobtrack-backend/pkg/security"
)

func main() {
	// Load configuration; refuses to start without a signing secret
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	zlog, err := logger.Init(os.Getenv("ENV") == "production")
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer func() { _ = zlog.Sync() }()

	metrics.MustRegister()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &appdomain.Application{}, &interviewdomain.Interview{}); err != nil {
		zlog.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Token issuer: process-wide secret and algorithm, fixed at startup
	issuer, err := security.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		zlog.Fatal("Failed to configure token issuer", zap.Error(err))
	}

	// Google sign-in: prefer local certificate verification via Firebase
	// when credentials are configured, fall back to the tokeninfo
	// endpoint when only a client ID is present.
	var googleVerifier googleauth.Verifier
	switch {
	case cfg.FirebaseCredentials != "":
		v, err := googleauth.NewFirebaseVerifier(context.Background(), cfg.FirebaseCredentials)
		if err != nil {
			zlog.Fatal("Failed to initialize Firebase verifier", zap.Error(err))
		}
		googleVerifier = v
		zlog.Info("google sign-in enabled", zap.String("strategy", "firebase"))
	case cfg.GoogleClientID != "":
		googleVerifier = googleauth.NewTokenInfoVerifier(cfg.GoogleClientID)
		zlog.Info("google sign-in enabled", zap.String("strategy", "tokeninfo"))
	default:
		zlog.Warn("google sign-in disabled: no Firebase credentials or Google client ID configured")
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	applicationRepository := appRepo.NewApplicationRepository(db)
	interviewRepository := interviewRepo.NewInterviewRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, issuer, googleVerifier, cfg)
	appUsecaseInstance := appUsecase.NewApplicationUsecase(applicationRepository)
	interviewUsecaseInstance := interviewUsecase.NewInterviewUsecase(interviewRepository, applicationRepository)
	notifService := notification.NewService(interviewRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, appUsecaseInstance, interviewUsecaseInstance, notifService, cfg, zlog)

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
