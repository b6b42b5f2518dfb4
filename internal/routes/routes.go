package routes

import (
	"time"

	"github.com/fitai-labs/fitai-backend/internal/config"
	"github.com/fitai-labs/fitai-backend/internal/features/activity"
	"github.com/fitai-labs/fitai-backend/internal/features/expenses"
	"github.com/fitai-labs/fitai-backend/internal/features/habits"
	"github.com/fitai-labs/fitai-backend/internal/features/profile"
	"github.com/fitai-labs/fitai-backend/internal/features/progress"
	"github.com/fitai-labs/fitai-backend/internal/features/records"
	"github.com/fitai-labs/fitai-backend/internal/features/sync"
	"github.com/fitai-labs/fitai-backend/internal/features/trial"
	"github.com/fitai-labs/fitai-backend/internal/handlers"
	"github.com/fitai-labs/fitai-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
	Profile  *profile.Handler
	Activity *activity.Handler
	Progress *progress.Handler
	Trial    *trial.Handler
	Habits   *habits.Handler
	Expenses *expenses.Handler
	Records  *records.Handler
	Sync     *sync.Handler
}

func Setup(app *fiber.App, cfg *config.Config, h *Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	// Protected auth routes — JWT applied per route so the public
	// auth group stays public.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), h.Auth.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), h.Auth.Me)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), h.Auth.DeleteAccount)

	// Everything below operates on the caller's keyed store.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/profile", h.Profile.GetProfile)
	protected.Put("/profile", h.Profile.SaveProfile)
	protected.Get("/profile/recommendations", h.Profile.GetRecommendations)
	protected.Get("/profile/conditions", h.Profile.GetConditions)

	protected.Post("/activities", h.Activity.Log)
	protected.Get("/activities", h.Activity.List)
	protected.Get("/activities/workouts", h.Activity.RecentWorkouts)

	protected.Get("/progress", h.Progress.GetSummary)
	protected.Get("/progress/today", h.Progress.GetToday)

	protected.Get("/trial", h.Trial.GetStatus)
	protected.Get("/trial/eligibility", h.Trial.CanStart)
	protected.Post("/trial/start", h.Trial.Start)

	protected.Get("/habits", h.Habits.List)
	protected.Post("/habits", h.Habits.Add)
	protected.Put("/habits/:id/days/:day", h.Habits.Toggle)
	protected.Delete("/habits/:id", h.Habits.Delete)

	protected.Get("/expenses", h.Expenses.List)
	protected.Post("/expenses", h.Expenses.Add)
	protected.Delete("/expenses/:id", h.Expenses.Delete)
	protected.Get("/expenses/stats", h.Expenses.GetStats)

	protected.Get("/records/export", h.Records.Export)
	protected.Get("/records/:key", h.Records.Get)
	protected.Put("/records/:key", h.Records.Put)
	protected.Delete("/records/:key", h.Records.Delete)
	protected.Delete("/records", h.Records.Wipe)

	protected.Post("/sync/pull", h.Sync.Pull)
	protected.Post("/sync/backup", h.Sync.Backup)
	protected.Post("/sync/push", h.Sync.Push)
}
