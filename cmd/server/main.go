package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/safestride/service-navigation/internal/adapters/geocode"
	"github.com/safestride/service-navigation/internal/adapters/routing"
	"github.com/safestride/service-navigation/internal/application"
	"github.com/safestride/service-navigation/internal/config"
	"github.com/safestride/service-navigation/internal/domain/route"
	"github.com/safestride/service-navigation/internal/domain/safety"
	navEvents "github.com/safestride/service-navigation/internal/events"
	"github.com/safestride/service-navigation/internal/handler"
	"github.com/safestride/service-navigation/internal/repository"
	"github.com/safestride/service-navigation/pkg/auth"
	"github.com/safestride/service-navigation/pkg/database"
	"github.com/safestride/service-navigation/pkg/health"
	"github.com/safestride/service-navigation/pkg/kafka"
	"github.com/safestride/service-navigation/pkg/logger"
	"github.com/safestride/service-navigation/pkg/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-navigation")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-navigation",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	dbConfig := database.PostgresConfig{
		Host:     cfg.DBConfig.Host,
		Port:     cfg.DBConfig.Port,
		User:     cfg.DBConfig.User,
		Password: cfg.DBConfig.Password,
		DBName:   cfg.DBConfig.DBName,
		SSLMode:  cfg.DBConfig.SSLMode,
	}
	db, err := database.Connect(dbConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.ReportModel{}); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(
		cfg.JWTConfig.Secret,
		15*time.Minute,
		7*24*time.Hour,
	)

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize repository and application services
	reportRepo := repository.NewGormReportRepository(db)
	reportService := application.NewReportService(reportRepo, kafkaProducer, log, cfg.ReportTTL)

	scoringEngine := safety.NewEngine(cfg.Scoring)
	evaluator := route.NewEvaluator(scoringEngine)

	geocoder := geocode.NewClient(cfg.Collaborators.GeocoderBaseURL, nil)
	routeProvider := routing.NewClient(cfg.Collaborators.RouterBaseURL, nil)

	navigationService := application.NewNavigationService(
		geocoder,
		routeProvider,
		reportRepo,
		evaluator,
		log,
	)

	// Initialize and start the incident event consumer in a goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	groupID := cfg.KafkaConfig.GroupPrefix + "navigation-service"
	incidentConsumer := navEvents.NewIncidentEventConsumer(
		cfg.KafkaConfig.Brokers,
		groupID,
		reportService,
		log,
	)
	defer func() { _ = incidentConsumer.Close() }()

	go func() {
		log.Info("starting incident event consumer")
		if err := incidentConsumer.Start(ctx); err != nil && err != context.Canceled {
			log.Error("incident event consumer error", zap.Error(err))
		}
	}()

	// Initialize HTTP handlers
	navigationHandler := handler.NewNavigationHandler(navigationService)
	reportHandler := handler.NewReportHandler(reportService)
	adminReportHandler := handler.NewAdminReportHandler(reportService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-navigation")
	healthHandler.RegisterRoutes(router)

	// Register routes
	navigationHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	reportHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	adminReportHandler.RegisterRoutes(&router.RouterGroup, jwtManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-navigation...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-navigation stopped")
}
