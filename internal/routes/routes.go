package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/config"
	"github.com/keeperbase/keeperbase/internal/handlers"
	"github.com/keeperbase/keeperbase/internal/middleware"
	"github.com/keeperbase/keeperbase/internal/models"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
	Team       *handlers.TeamHandler
	Goalkeeper *handlers.GoalkeeperHandler
	Session    *handlers.SessionHandler
	Task       *handlers.TaskHandler
	Analysis   *handlers.AnalysisHandler
	Penalty    *handlers.PenaltyHandler
	Statistic  *handlers.StatisticHandler
	Design     *handlers.DesignHandler
	Admin      *handlers.AdminHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth is public but carries a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/verify-email", h.Auth.VerifyEmail)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)

	// Everything below requires a valid bearer token.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/auth/me", h.Auth.Me)

	teams := protected.Group("/teams")
	teams.Get("", h.Team.List)
	teams.Post("", h.Team.Create)
	teams.Get("/:id", h.Team.Get)
	teams.Put("/:id", h.Team.Update)
	teams.Delete("/:id", h.Team.Delete)

	keepers := protected.Group("/goalkeepers")
	keepers.Get("", h.Goalkeeper.List)
	keepers.Post("", h.Goalkeeper.Create)
	keepers.Get("/:id", h.Goalkeeper.Get)
	keepers.Put("/:id", h.Goalkeeper.Update)
	keepers.Delete("/:id", h.Goalkeeper.Delete)

	sessions := protected.Group("/sessions")
	sessions.Get("", h.Session.List)
	sessions.Post("", h.Session.Create)
	sessions.Get("/:id", h.Session.Get)
	sessions.Put("/:id", h.Session.Update)
	sessions.Delete("/:id", h.Session.Delete)
	sessions.Get("/:id/tasks", h.Session.ListTasks)
	sessions.Post("/:id/tasks", h.Session.AddTask)
	sessions.Patch("/:id/tasks/reorder", h.Session.ReorderTasks)
	sessions.Put("/:id/tasks/:taskId", h.Session.UpdateTask)
	sessions.Delete("/:id/tasks/:taskId", h.Session.DeleteTask)
	sessions.Get("/:id/attendance", h.Session.ListAttendance)
	sessions.Post("/:id/attendance", h.Session.SetAttendance)
	sessions.Delete("/:id/attendance/:attendanceId", h.Session.DeleteAttendance)

	tasks := protected.Group("/tasks")
	tasks.Get("", h.Task.List)
	tasks.Post("", h.Task.Create)
	tasks.Get("/:id", h.Task.Get)
	tasks.Put("/:id", h.Task.Update)
	tasks.Delete("/:id", h.Task.Delete)

	analyses := protected.Group("/analyses")
	analyses.Get("", h.Analysis.List)
	analyses.Post("", h.Analysis.Create)
	analyses.Get("/:id", h.Analysis.Get)
	analyses.Put("/:id", h.Analysis.Update)
	analyses.Delete("/:id", h.Analysis.Delete)

	penalties := protected.Group("/penalties")
	penalties.Get("", h.Penalty.List)
	penalties.Post("", h.Penalty.Create)
	penalties.Get("/summary", h.Penalty.Summary)
	penalties.Delete("/:id", h.Penalty.Delete)

	stats := protected.Group("/statistics")
	stats.Get("", h.Statistic.List)
	stats.Post("", h.Statistic.Create)
	stats.Get("/:id", h.Statistic.Get)
	stats.Put("/:id", h.Statistic.Update)
	stats.Delete("/:id", h.Statistic.Delete)

	designs := protected.Group("/designs")
	designs.Get("", h.Design.List)
	designs.Post("", h.Design.Create)
	// Image serving is matched before /:id so filenames never parse as ids.
	designs.Get("/images/:filename", h.Design.ServeImage)
	designs.Get("/:id", h.Design.Get)
	designs.Put("/:id", h.Design.Update)
	designs.Delete("/:id", h.Design.Delete)

	admin := protected.Group("/admin", middleware.RoleRequired(models.RoleAdmin))
	admin.Get("/users", h.Admin.ListUsers)
	admin.Get("/logs", h.Admin.ListLogs)
}
