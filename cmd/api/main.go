package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	userUseCase "github.com/amirhossein-jamali/user-leveling/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/mail"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := newLogger(cfg)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ctx := context.Background()

	dbManager := database.NewManager(database.ConfigFromAppConfig(cfg), appLogger, tp, registry)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	txManager := dbManager.NewTransactionManager(database.NewTransactionMetrics(registry))

	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	mailSender := mail.NewLoggingMailSender(appLogger.With(map[string]any{"component": "mail"}))

	policy, err := userUseCase.NewThresholdPolicy(cfg.Leveling.LogCountForSilver, cfg.Leveling.RecCountForGold, tp)
	if err != nil {
		appLogger.Error("Invalid level upgrade policy", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, policy, mailSender, tp, appLogger,
		userUseCase.WithMailFrom(cfg.Leveling.MailFrom),
	)
	transactionalUsers := userUseCase.NewTransactionalUserUseCase(userUseCaseImpl, txManager, appLogger,
		userUseCase.WithUpgradeTimeout(cfg.Leveling.UpgradeTimeout),
	)

	if cfg.Leveling.CreateDefaultUsers {
		if err := migration.CreateDefaultUsers(ctx, userUseCaseImpl); err != nil {
			appLogger.Error("Failed to create default users", map[string]any{
				"error": err.Error(),
			})
		}
	}

	if err := dto.RegisterValidators(); err != nil {
		appLogger.Error("Failed to register request validators", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	userHandler := handler.NewUserHandler(transactionalUsers, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager)

	router := gin.New()

	var httpMetrics *middleware.HTTPMetrics
	if cfg.Metrics.Enabled {
		httpMetrics = middleware.NewHTTPMetrics(registry)
	}
	routes.SetupMiddlewares(router, appLogger, httpMetrics)
	routes.SetupRoutes(router, userHandler, healthHandler)
	if cfg.Metrics.Enabled {
		routes.SetupMetricsRoute(router, cfg.Metrics.Path, registry)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

func newLogger(cfg *config.Config) core.Logger {
	opts := logger.Options{
		Production: cfg.Environment == config.Production || cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAgeDays: cfg.Logger.MaxAgeDays,
	}
	if output := cfg.Logger.Output; output != "" && output != "stdout" {
		opts.FilePath = output
	}
	return logger.NewZapLogger(opts)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var missingConfigs []string

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case database.DriverPostgres:
		required := map[string]string{
			"database.host":     cfg.Database.Host,
			"database.username": cfg.Database.Username,
			"database.password": cfg.Database.Password,
			"database.database": cfg.Database.Database,
		}
		for key, value := range required {
			if value == "" {
				missingConfigs = append(missingConfigs, key+" (or the matching UL_DB_ environment variable)")
			}
		}
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path")
		}
	default:
		return fmt.Errorf("invalid database driver: %q", cfg.Database.Driver)
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite is meant for development and tests")
		}
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
