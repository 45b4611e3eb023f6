// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"daynote/pkg/logger"
)

// Ключи fiber.Locals и заголовки.
const (
	LocalUserID    = "userID"
	LocalRequestID = "requestID"

	HeaderRequestID = "X-Request-ID"
)

// UserID возвращает идентификатор пользователя, записанный NewAuthMiddleware.
func UserID(c fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

// RequestContext контекст запроса с request id для логгера и use case.
func RequestContext(c fiber.Ctx) context.Context {
	id, _ := c.Locals(LocalRequestID).(string)
	return logger.NewRequestIDContext(c.Context(), id)
}
