package handlers

import (
	"github.com/gofiber/fiber/v3"

	"daynote/internal/dashboard/adapters/http/dto"
	"daynote/internal/dashboard/adapters/http/middleware"
)

// TodayTodo обрабатывает GET /todos/today: заголовок дня создается при первом обращении.
func (h *Handler) TodayTodo(c fiber.Ctx) error {
	todo, err := h.uc.Todos.GetOrCreateToday(middleware.RequestContext(c), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(todo)
}

// ListSlots обрабатывает GET /todos/today/slots.
func (h *Handler) ListSlots(c fiber.Ctx) error {
	buckets, err := h.uc.Todos.ListSlots(middleware.RequestContext(c), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(buckets)
}

// AddSlot обрабатывает POST /todos/:todo_id/slots.
func (h *Handler) AddSlot(c fiber.Ctx) error {
	var req dto.SlotRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	slot, err := h.uc.Todos.AddSlot(middleware.RequestContext(c), middleware.UserID(c), c.Params("todo_id"), req.ToInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

// ToggleSlot обрабатывает PATCH /slots/:slot_id/toggle.
func (h *Handler) ToggleSlot(c fiber.Ctx) error {
	var req dto.ToggleRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	slot, err := h.uc.Todos.ToggleSlot(middleware.RequestContext(c), middleware.UserID(c), c.Params("slot_id"), *req.Completed)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slot)
}

// DeleteSlot обрабатывает DELETE /slots/:slot_id.
func (h *Handler) DeleteSlot(c fiber.Ctx) error {
	if err := h.uc.Todos.DeleteSlot(middleware.RequestContext(c), middleware.UserID(c), c.Params("slot_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
