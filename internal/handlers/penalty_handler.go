package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/services"
	"github.com/keeperbase/keeperbase/internal/validation"
)

type PenaltyHandler struct {
	penaltyService *services.PenaltyService
}

func NewPenaltyHandler(penaltyService *services.PenaltyService) *PenaltyHandler {
	return &PenaltyHandler{penaltyService: penaltyService}
}

func (h *PenaltyHandler) Create(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreatePenaltyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	penalty, err := h.penaltyService.Create(id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(penalty)
}

func (h *PenaltyHandler) List(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var gkID *uuid.UUID
	if raw := c.Query("goalkeeper_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid goalkeeper_id filter")
		}
		gkID = &parsed
	}

	penalties, err := h.penaltyService.List(id, gkID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(penalties)
}

func (h *PenaltyHandler) Summary(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	gkID, err := uuid.Parse(c.Query("goalkeeper_id"))
	if err != nil {
		return badRequest(c, "goalkeeper_id query parameter is required")
	}

	summary, err := h.penaltyService.Summary(id, gkID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

func (h *PenaltyHandler) Delete(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	penaltyID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid penalty id")
	}

	if err := h.penaltyService.Delete(id, penaltyID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Penalty deleted"})
}
