package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/keeperbase/keeperbase/internal/config"
	"github.com/keeperbase/keeperbase/internal/dto"
)

// JWTProtected verifies the Authorization bearer token and stores the parsed
// token in locals under "user". Missing, malformed, expired and badly signed
// tokens all fail the same way.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
