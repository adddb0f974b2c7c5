package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/services"
	"github.com/keeperbase/keeperbase/internal/validation"
)

type StatisticHandler struct {
	statService *services.StatisticService
}

func NewStatisticHandler(statService *services.StatisticService) *StatisticHandler {
	return &StatisticHandler{statService: statService}
}

func (h *StatisticHandler) Create(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateStatisticRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	stat, err := h.statService.Create(id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(stat)
}

func (h *StatisticHandler) List(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	filter := services.StatisticFilter{Season: c.Query("season")}
	if raw := c.Query("goalkeeper_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid goalkeeper_id filter")
		}
		filter.GoalkeeperID = &parsed
	}

	stats, err := h.statService.List(id, filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}

func (h *StatisticHandler) Get(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	statID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid statistics id")
	}

	stat, err := h.statService.Get(id, statID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stat)
}

func (h *StatisticHandler) Update(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	statID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid statistics id")
	}

	var req dto.UpdateStatisticRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	stat, err := h.statService.Update(id, statID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stat)
}

func (h *StatisticHandler) Delete(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	statID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid statistics id")
	}

	if err := h.statService.Delete(id, statID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Statistics deleted"})
}
