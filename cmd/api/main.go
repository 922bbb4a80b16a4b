package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careerhub-backend/config"
	_ "careerhub-backend/docs" // Important for Swagger
	v1 "careerhub-backend/internal/delivery/http/v1"
	"careerhub-backend/internal/repository/postgres"
	"careerhub-backend/internal/repository/redisstore"
	"careerhub-backend/internal/usecase"
	"careerhub-backend/pkg/auth"
	"careerhub-backend/pkg/database"
	"careerhub-backend/pkg/email"
	"careerhub-backend/pkg/logger"
	"careerhub-backend/pkg/redis"
	"careerhub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// sessionTTL is the validity window of issued session tokens.
const sessionTTL = 7 * 24 * time.Hour

// @title           CareerHub Backend API
// @version         1.0
// @description     OTP-gated registration and role-based profiles for the CareerHub job board.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting CareerHub backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; cooldown and rate limiting degrade without it)
	redisClient, err := redis.NewClient(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	if err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory fallbacks", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	otpRepo := postgres.NewOtpRepository(dbPool)
	seekerRepo := postgres.NewSeekerProfileRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterProfileRepository(dbPool)
	otpThrottle := redisstore.NewOtpThrottle(redisClient,
		time.Duration(cfg.OtpResendCooldownSeconds)*time.Second)

	// 6. Setup Services
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - OTP delivery will fail")
	}
	tokenService := auth.NewTokenService(cfg.JWTSecret, sessionTTL)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	authUC := usecase.NewAuthUsecase(userRepo, otpRepo, emailService, otpThrottle, tokenService, validate)
	profileUC := usecase.NewProfileUsecase(userRepo, seekerRepo, recruiterRepo, validate)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:    authUC,
		ProfileUC: profileUC,
		Tokens:    tokenService,
		Redis:     redisClient,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
