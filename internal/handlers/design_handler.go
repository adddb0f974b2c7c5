package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/services"
	"github.com/keeperbase/keeperbase/internal/validation"
)

type DesignHandler struct {
	designService *services.DesignService
}

func NewDesignHandler(designService *services.DesignService) *DesignHandler {
	return &DesignHandler{designService: designService}
}

func (h *DesignHandler) Create(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateDesignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	design, err := h.designService.Create(id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(design)
}

func (h *DesignHandler) List(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	designs, err := h.designService.List(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(designs)
}

func (h *DesignHandler) Get(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	designID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid design id")
	}

	design, err := h.designService.Get(id, designID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(design)
}

func (h *DesignHandler) Update(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	designID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid design id")
	}

	var req dto.UpdateDesignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	design, err := h.designService.Update(id, designID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(design)
}

func (h *DesignHandler) Delete(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	designID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid design id")
	}

	if err := h.designService.Delete(id, designID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Design deleted"})
}

// ServeImage streams a stored diagram PNG. The filename is validated against
// the store's allow-list pattern before anything is read from disk.
func (h *DesignHandler) ServeImage(c *fiber.Ctx) error {
	path, err := h.designService.ImagePath(c.Params("filename"))
	if err != nil {
		return writeError(c, err)
	}

	c.Set("Content-Type", "image/png")
	return c.SendFile(path)
}
