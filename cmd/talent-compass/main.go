package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"talent-compass/internal/api"
	"talent-compass/internal/api/handlers"
	"talent-compass/internal/repository"
	"talent-compass/internal/service"
	"talent-compass/pkg/auth"
	"talent-compass/pkg/config"
	"talent-compass/pkg/logger"
	"talent-compass/pkg/postgres"

	"go.uber.org/zap"
)

// @title Talent Compass API
// @version 1.0
// @description Career guidance service: talent questionnaire, profile matching and career recommendations

// @contact.name API Support
// @contact.email support@talent-compass.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Talent Compass service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	questionRepo := repository.NewQuestionRepository(db, appLogger)
	answerRepo := repository.NewAnswerRepository(db, appLogger)
	careerRepo := repository.NewCareerRepository(db, appLogger)
	recRepo := repository.NewRecommendationRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	talentService := service.NewTalentService(answerRepo, questionRepo, careerRepo, recRepo, cfg.Talent.TopN, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	talentHandler := handlers.NewTalentHandler(talentService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, talentHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
