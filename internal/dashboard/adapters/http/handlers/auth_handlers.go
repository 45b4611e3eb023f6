package handlers

import (
	"github.com/gofiber/fiber/v3"

	"daynote/internal/dashboard/adapters/http/dto"
	"daynote/internal/dashboard/adapters/http/middleware"
)

// Register обрабатывает POST /auth/register.
func (h *Handler) Register(c fiber.Ctx) error {
	var req dto.RegisterRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	userID, err := h.uc.Auth.Register(middleware.RequestContext(c), req.ToInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{UserID: userID})
}

// Login обрабатывает POST /auth/login.
func (h *Handler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	token, err := h.uc.Auth.Login(middleware.RequestContext(c), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "Bearer"})
}
