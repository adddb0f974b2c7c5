package authz

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the verified caller extracted from the bearer token.
type Identity struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  string
}

// FromContext reads the parsed JWT out of Fiber locals (placed there by the
// jwtware middleware) and rebuilds the caller identity from its claims.
func FromContext(c *fiber.Ctx) (Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Identity{}, errors.New("no token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, errors.New("invalid sub claim")
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return Identity{ID: id, Email: email, Name: name, Role: role}, nil
}
