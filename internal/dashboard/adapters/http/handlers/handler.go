// Package handlers содержит HTTP обработчики дневной панели.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"daynote/internal/dashboard/adapters/http/dto"
	"daynote/internal/dashboard/adapters/http/middleware"
	"daynote/internal/dashboard/app"
	"daynote/internal/dashboard/ports/api"
	"daynote/pkg/logger"
)

// Сообщения ответов.
const (
	ErrorInvalidRequest = "invalid request body"
	ErrorInternal       = "internal server error"
)

// UseCases набор сценариев, которые обслуживает HTTP слой.
type UseCases struct {
	Auth     api.AuthUseCase
	Notes    api.NoteUseCase
	Calendar api.CalendarUseCase
	Todos    api.TodoUseCase
	Profile  api.ProfileUseCase
	Summary  api.SummaryUseCase
}

// Handler обрабатывает запросы /api/v1.
type Handler struct {
	uc UseCases
}

// NewHandler создает обработчик.
func NewHandler(uc UseCases) *Handler {
	return &Handler{uc: uc}
}

// bind разбирает тело запроса и проверяет теги validate. При ошибке ответ уже отправлен.
func bind(c fiber.Ctx, req any) (bool, error) {
	if err := c.Bind().JSON(req); err != nil {
		requestCtx := middleware.RequestContext(c)
		logger.Log(requestCtx).Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ErrorInvalidRequest})
	}
	if err := dto.Validate(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return true, nil
}

// respondError переводит ошибку use case в HTTP статус.
func respondError(c fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()

	if status == fiber.StatusInternalServerError {
		requestCtx := middleware.RequestContext(c)
		logger.Log(requestCtx).Error(requestCtx, "request failed",
			zap.String("route", c.Route().Path), zap.Error(err))
		msg = ErrorInternal
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, app.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, app.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, app.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
