package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/services"
	"github.com/keeperbase/keeperbase/internal/validation"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) Create(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	team, err := h.teamService.Create(id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

func (h *TeamHandler) List(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	teams, err := h.teamService.List(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(teams)
}

func (h *TeamHandler) Get(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	teamID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid team id")
	}

	team, err := h.teamService.Get(id, teamID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(team)
}

func (h *TeamHandler) Update(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	teamID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid team id")
	}

	var req dto.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	team, err := h.teamService.Update(id, teamID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(team)
}

func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	teamID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid team id")
	}

	if err := h.teamService.Delete(id, teamID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Team deleted"})
}
