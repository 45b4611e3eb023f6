package handlers

import (
	"github.com/gofiber/fiber/v3"

	"daynote/internal/dashboard/adapters/http/dto"
	"daynote/internal/dashboard/adapters/http/middleware"
)

// Profile обрабатывает GET /profile.
func (h *Handler) Profile(c fiber.Ctx) error {
	user, err := h.uc.Profile.Get(middleware.RequestContext(c), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// Level обрабатывает GET /profile/level.
func (h *Handler) Level(c fiber.Ctx) error {
	level, err := h.uc.Profile.Level(middleware.RequestContext(c), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LevelResponse{Level: level})
}

// UpdateProfile обрабатывает PUT /profile.
func (h *Handler) UpdateProfile(c fiber.Ctx) error {
	var req dto.ProfileRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	if err := h.uc.Profile.Update(middleware.RequestContext(c), middleware.UserID(c), req.ToInput()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateVisibility обрабатывает PUT /profile/visibility.
func (h *Handler) UpdateVisibility(c fiber.Ctx) error {
	var req dto.VisibilityRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	ctx, userID := middleware.RequestContext(c), middleware.UserID(c)
	if req.NotesVisible != nil {
		if err := h.uc.Profile.SetNotesVisibility(ctx, userID, *req.NotesVisible); err != nil {
			return respondError(c, err)
		}
	}
	if req.ActivityVisible != nil {
		if err := h.uc.Profile.SetActivityVisibility(ctx, userID, *req.ActivityVisible); err != nil {
			return respondError(c, err)
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary обрабатывает GET /today.
func (h *Handler) Summary(c fiber.Ctx) error {
	summary, err := h.uc.Summary.Today(middleware.RequestContext(c), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
