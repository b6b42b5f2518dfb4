package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/fitai-labs/fitai-backend/internal/config"
	"github.com/fitai-labs/fitai-backend/internal/database"
	"github.com/fitai-labs/fitai-backend/internal/features/activity"
	"github.com/fitai-labs/fitai-backend/internal/features/expenses"
	"github.com/fitai-labs/fitai-backend/internal/features/habits"
	"github.com/fitai-labs/fitai-backend/internal/features/profile"
	"github.com/fitai-labs/fitai-backend/internal/features/progress"
	"github.com/fitai-labs/fitai-backend/internal/features/records"
	"github.com/fitai-labs/fitai-backend/internal/features/sync"
	"github.com/fitai-labs/fitai-backend/internal/features/trial"
	"github.com/fitai-labs/fitai-backend/internal/fingerprint"
	"github.com/fitai-labs/fitai-backend/internal/handlers"
	"github.com/fitai-labs/fitai-backend/internal/logging"
	"github.com/fitai-labs/fitai-backend/internal/middleware"
	"github.com/fitai-labs/fitai-backend/internal/notify"
	"github.com/fitai-labs/fitai-backend/internal/routes"
	"github.com/fitai-labs/fitai-backend/internal/services"
	"github.com/fitai-labs/fitai-backend/internal/store"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Event bus and per-user keyed stores
	bus := notify.NewBus()
	stores := store.NewDBFactory(database.DB)
	if cfg.DataDir != "" {
		slog.Info("keyed records on disk", "dir", cfg.DataDir)
		stores = store.NewFileFactory(cfg.DataDir)
	}

	// Services
	authService := services.NewAuthService(database.DB, cfg)
	profileService := profile.NewService(bus)
	activityService := activity.NewService(bus)
	progressService := progress.NewService(activityService)
	trialService := trial.NewService(cfg.TrialDuration)
	habitsService := habits.NewService()
	expensesService := expenses.NewService(bus)
	recordsService := records.NewService()
	syncService := sync.NewService(sync.NewDBRemote(database.DB), bus, cfg.SyncPullTimeout)

	// Every logged activity advances the streak and opportunistically
	// refreshes the user's cloud backup.
	bus.Subscribe(notify.EventActivityLogged, func(_ string, detail any) {
		ev, ok := detail.(*activity.LoggedEvent)
		if !ok {
			return
		}
		st := stores(ev.Owner)
		progressService.MarkLogged(st, time.Now())
		email, err := authService.EmailFor(ev.Owner)
		if err != nil {
			slog.Warn("backup skipped: owner lookup failed", "error", err)
			return
		}
		syncService.Backup(st, email)
	})

	// Handlers
	devices := fingerprint.NewHeaderProvider()
	h := &routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService, syncService, stores),
		Health:   handlers.NewHealthHandler(),
		Profile:  profile.NewHandler(profileService, stores),
		Activity: activity.NewHandler(activityService, stores),
		Progress: progress.NewHandler(progressService, stores),
		Trial:    trial.NewHandler(trialService, stores, devices),
		Habits:   habits.NewHandler(habitsService, stores),
		Expenses: expenses.NewHandler(expensesService, activityService, stores),
		Records:  records.NewHandler(recordsService, stores),
		Sync:     sync.NewHandler(syncService, stores),
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	routes.Setup(app, cfg, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
