package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/models"
)

// AdminHandler exposes read-only operational views for the admin role.
type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var users []models.User
	var total int64
	h.db.Model(&models.User{}).Count(&total)
	if err := h.db.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error; err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *AdminHandler) ListLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit < 1 || limit > 500 {
		limit = 100
	}

	q := h.db.Model(&models.SystemLog{})
	if level := c.Query("level"); level != "" {
		q = q.Where("level = ?", level)
	}

	var logs []models.SystemLog
	if err := q.Order("timestamp DESC").Limit(limit).Find(&logs).Error; err != nil {
		return writeError(c, err)
	}
	return c.JSON(logs)
}
