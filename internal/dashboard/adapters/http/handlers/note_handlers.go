package handlers

import (
	"github.com/gofiber/fiber/v3"

	"daynote/internal/dashboard/adapters/http/dto"
	"daynote/internal/dashboard/adapters/http/middleware"
)

// ListTodayNotes обрабатывает GET /notes/today.
func (h *Handler) ListTodayNotes(c fiber.Ctx) error {
	notes, err := h.uc.Notes.ListToday(middleware.RequestContext(c), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notes)
}

// CreateNote обрабатывает POST /notes.
func (h *Handler) CreateNote(c fiber.Ctx) error {
	var req dto.NoteRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	note, err := h.uc.Notes.Create(middleware.RequestContext(c), middleware.UserID(c), req.ToInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// UpdateNote обрабатывает PUT /notes/:note_id.
func (h *Handler) UpdateNote(c fiber.Ctx) error {
	var req dto.NoteRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	note, err := h.uc.Notes.Update(middleware.RequestContext(c), middleware.UserID(c), c.Params("note_id"), req.ToInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(note)
}

// DeleteNote обрабатывает DELETE /notes/:note_id.
func (h *Handler) DeleteNote(c fiber.Ctx) error {
	if err := h.uc.Notes.Delete(middleware.RequestContext(c), middleware.UserID(c), c.Params("note_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DaysWithNotes обрабатывает GET /calendar/days.
func (h *Handler) DaysWithNotes(c fiber.Ctx) error {
	days, err := h.uc.Calendar.DaysWithNotes(middleware.RequestContext(c), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DaysResponse{Days: days})
}
