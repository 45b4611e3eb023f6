package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"daynote/internal/dashboard/ports/services"
	"daynote/pkg/logger"
)

// Сообщения ответа 401.
const (
	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid token"
	ErrorExpiredToken       = "token expired"
)

// NewAuthMiddleware проверяет Bearer токен и кладет идентификатор пользователя в Locals.
func NewAuthMiddleware(tokens services.TokenService) fiber.Handler {
	return func(c fiber.Ctx) error {
		requestCtx := RequestContext(c)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return unauthorized(c, ErrorNoAuthHeader)
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return unauthorized(c, ErrorInvalidTokenFormat)
		}

		userID, err := tokens.ValidateAccessToken(requestCtx, strings.TrimSpace(token))
		if err != nil {
			log.Debug(requestCtx, "token rejected", zap.Error(err))
			if errors.Is(err, services.ErrExpiredJWTToken) {
				return unauthorized(c, ErrorExpiredToken)
			}
			return unauthorized(c, ErrorInvalidToken)
		}

		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

func unauthorized(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
