package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/services"
	"github.com/keeperbase/keeperbase/internal/validation"
)

type AnalysisHandler struct {
	analysisService *services.AnalysisService
}

func NewAnalysisHandler(analysisService *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

func (h *AnalysisHandler) Create(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	analysis, err := h.analysisService.Create(id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(analysis)
}

func (h *AnalysisHandler) List(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	filter := services.AnalysisFilter{
		FromDate: c.Query("from"),
		ToDate:   c.Query("to"),
	}
	if raw := c.Query("goalkeeper_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid goalkeeper_id filter")
		}
		filter.GoalkeeperID = &parsed
	}

	analyses, err := h.analysisService.List(id, filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(analyses)
}

func (h *AnalysisHandler) Get(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	analysisID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid analysis id")
	}

	analysis, err := h.analysisService.Get(id, analysisID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(analysis)
}

func (h *AnalysisHandler) Update(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	analysisID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid analysis id")
	}

	var req dto.UpdateAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	analysis, err := h.analysisService.Update(id, analysisID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(analysis)
}

func (h *AnalysisHandler) Delete(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	analysisID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid analysis id")
	}

	if err := h.analysisService.Delete(id, analysisID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Analysis deleted"})
}
