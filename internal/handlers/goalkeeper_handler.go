package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/services"
	"github.com/keeperbase/keeperbase/internal/validation"
)

type GoalkeeperHandler struct {
	gkService *services.GoalkeeperService
}

func NewGoalkeeperHandler(gkService *services.GoalkeeperService) *GoalkeeperHandler {
	return &GoalkeeperHandler{gkService: gkService}
}

func (h *GoalkeeperHandler) Create(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateGoalkeeperRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	gk, err := h.gkService.Create(id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(gk)
}

func (h *GoalkeeperHandler) List(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var teamID *uuid.UUID
	if raw := c.Query("team_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid team_id filter")
		}
		teamID = &parsed
	}

	keepers, err := h.gkService.List(id, teamID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(keepers)
}

func (h *GoalkeeperHandler) Get(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	gkID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid goalkeeper id")
	}

	gk, err := h.gkService.Get(id, gkID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(gk)
}

func (h *GoalkeeperHandler) Update(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	gkID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid goalkeeper id")
	}

	var req dto.UpdateGoalkeeperRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	gk, err := h.gkService.Update(id, gkID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(gk)
}

func (h *GoalkeeperHandler) Delete(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	gkID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid goalkeeper id")
	}

	if err := h.gkService.Delete(id, gkID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Goalkeeper deleted"})
}
