package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/straye-as/fieldservice-api/docs"
	"github.com/straye-as/fieldservice-api/internal/config"
	"github.com/straye-as/fieldservice-api/internal/database"
	"github.com/straye-as/fieldservice-api/internal/document"
	"github.com/straye-as/fieldservice-api/internal/http/handler"
	"github.com/straye-as/fieldservice-api/internal/http/middleware"
	"github.com/straye-as/fieldservice-api/internal/http/router"
	"github.com/straye-as/fieldservice-api/internal/jobs"
	"github.com/straye-as/fieldservice-api/internal/logger"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/straye-as/fieldservice-api/internal/service"
	"github.com/straye-as/fieldservice-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Straye Field Service API
// @version 1.0
// @description Offers, service orders, dispatches and field time tracking with PDF document generation
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@straye.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "fieldservice-staging.straye.no"
	case "production":
		docs.SwaggerInfo.Host = "fieldservice.straye.no"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// In staging/production the secrets come from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.App.Environment == "development" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to auto-migrate: %w", err)
		}
		log.Info("Database schema auto-migrated (development)")
	}

	var redisClient *redis.Client
	if cfg.Settings.Store == "redis" {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()
	}

	settingsStore := newSettingsStore(cfg.Settings.Store, db, redisClient)
	log.Info("PDF settings store initialized",
		zap.String("store", cfg.Settings.Store),
		zap.String("key", cfg.Settings.Key),
	)

	docStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	printer := document.NewSpoolPrinter(cfg.Documents.PrintSpoolDir, log)

	// Initialize services
	numberSequenceService := service.NewNumberSequenceService(repository.NewNumberSequenceRepository(db), log)

	offerService := service.NewOfferService(db, numberSequenceService, log)
	serviceOrderService := service.NewServiceOrderService(db, numberSequenceService, log)
	jobService := service.NewJobService(db, log)
	dispatchService := service.NewDispatchService(db, numberSequenceService, log)
	entryService := service.NewEntryService(db, log)
	articleService := service.NewArticleService(db, log)
	settingsService := service.NewSettingsService(settingsStore, cfg.Settings.Key, log)
	documentService := service.NewDocumentService(
		db,
		offerService,
		serviceOrderService,
		entryService,
		settingsService,
		service.DocumentPlatform{
			Storage:   docStorage,
			Sharer:    document.NewSimulatedMailer(cfg.Documents.ShareDelay(), log),
			Clipboard: document.NewMemoryClipboard(),
			Printer:   printer,
		},
		cfg.Documents.PreviewDebounce(),
		log,
	)
	// Sending an offer mails its PDF
	offerService.SetDelivery(documentService)

	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	offerHandler := handler.NewOfferHandler(offerService, log)
	serviceOrderHandler := handler.NewServiceOrderHandler(serviceOrderService, log)
	jobHandler := handler.NewJobHandler(jobService, log)
	dispatchHandler := handler.NewDispatchHandler(dispatchService, log)
	entryHandler := handler.NewEntryHandler(entryService, log)
	articleHandler := handler.NewArticleHandler(articleService, log)
	settingsHandler := handler.NewSettingsHandler(settingsService, log)
	documentHandler := handler.NewDocumentHandler(documentService, log)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		offerHandler,
		serviceOrderHandler,
		jobHandler,
		dispatchHandler,
		entryHandler,
		articleHandler,
		settingsHandler,
		documentHandler,
	)
	if redisClient != nil {
		rt.AddReadinessCheck("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	// Background jobs
	scheduler := jobs.NewScheduler(log)
	if err := jobs.RegisterRetentionJob(
		scheduler,
		documentService,
		cfg.Documents.Retention(),
		cfg.Documents.RetentionSchedule,
		log,
	); err != nil {
		return fmt.Errorf("failed to register retention job: %w", err)
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		documentService.Shutdown()
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		stopped := scheduler.Stop()
		<-stopped.Done()
		log.Info("Scheduler stopped")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		// Stops pending preview renders
		documentService.Shutdown()

		log.Info("Server stopped gracefully")
	}

	return nil
}

// newSettingsStore picks the PDF settings backend. config.Validate has
// already rejected unknown names.
func newSettingsStore(kind string, db *gorm.DB, client *redis.Client) pdfsettings.Store {
	switch kind {
	case "redis":
		return pdfsettings.NewRedisStore(client, "fieldservice:")
	case "database":
		return repository.NewSettingsRepository(db)
	default:
		return pdfsettings.NewMemoryStore()
	}
}
