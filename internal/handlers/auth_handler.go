package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/services"
	"github.com/keeperbase/keeperbase/internal/validation"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	if err := h.authService.VerifyEmail(req.Token); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Email verified"})
}

// ForgotPassword returns the same body for known and unknown addresses.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{
		Message: "If an account exists for that email, a reset link has been sent",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	if err := h.authService.ResetPassword(req.Token, req.Password); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Password updated"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.authService.GetUser(id.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          user.Role,
		EmailVerified: user.EmailVerified,
	})
}
