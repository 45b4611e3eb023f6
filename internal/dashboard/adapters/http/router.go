// Package http собирает HTTP API дневной панели на fiber.
package http

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"go.uber.org/zap"

	"daynote/internal/dashboard/adapters/http/dto"
	"daynote/internal/dashboard/adapters/http/handlers"
	"daynote/internal/dashboard/adapters/http/middleware"
	"daynote/internal/dashboard/ports/services"
	"daynote/pkg/logger"
	"daynote/pkg/metrics"
)

// HealthFunc проверяет зависимости сервиса.
type HealthFunc func(ctx context.Context) error

// Deps зависимости маршрутизатора.
type Deps struct {
	UseCases handlers.UseCases
	Tokens   services.TokenService
	Metrics  *metrics.Collector
	Health   HealthFunc
}

// SetupRouter настраивает маршруты приложения.
func SetupRouter(app *fiber.App, deps Deps) {
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	if deps.Metrics != nil {
		app.Use(middleware.NewMetricsMiddleware(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	app.Get("/healthz", healthHandler(deps.Health))

	h := handlers.NewHandler(deps.UseCases)
	apiV1 := app.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", h.Register)
	authRoutes.Post("/login", h.Login)

	// Все маршруты ниже требуют токен; публичные зарегистрированы раньше.
	apiV1.Use(middleware.NewAuthMiddleware(deps.Tokens))

	apiV1.Get("/today", h.Summary)

	noteRoutes := apiV1.Group("/notes")
	noteRoutes.Get("/today", h.ListTodayNotes)
	noteRoutes.Post("/", h.CreateNote)
	noteRoutes.Put("/:note_id", h.UpdateNote)
	noteRoutes.Delete("/:note_id", h.DeleteNote)

	todoRoutes := apiV1.Group("/todos")
	todoRoutes.Get("/today", h.TodayTodo)
	todoRoutes.Get("/today/slots", h.ListSlots)
	todoRoutes.Post("/:todo_id/slots", h.AddSlot)

	slotRoutes := apiV1.Group("/slots")
	slotRoutes.Patch("/:slot_id/toggle", h.ToggleSlot)
	slotRoutes.Delete("/:slot_id", h.DeleteSlot)

	apiV1.Get("/calendar/days", h.DaysWithNotes)

	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Get("/", h.Profile)
	profileRoutes.Put("/", h.UpdateProfile)
	profileRoutes.Get("/level", h.Level)
	profileRoutes.Put("/visibility", h.UpdateVisibility)

	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "route not found"})
	})
}

func healthHandler(check HealthFunc) fiber.Handler {
	return func(c fiber.Ctx) error {
		if check != nil {
			ctx := middleware.RequestContext(c)
			if err := check(ctx); err != nil {
				logger.Log(ctx).Warn(ctx, "health check failed", zap.Error(err))
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
