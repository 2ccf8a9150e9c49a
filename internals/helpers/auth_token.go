package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the AuthJWT middleware.
const (
	LocUserID  = "user_id"
	LocOrgID   = "org_id"
	LocOrgRole = "org_role"
)

func localUUID(c *fiber.Ctx, key, what string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, what+" missing from token")
	}
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, what+" claim malformed")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, what+" claim is not a valid UUID")
	}
	return id, nil
}

// GetUserIDFromToken returns the authenticated user's id.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID, "user_id")
}

// GetOrgIDFromToken returns the active organization the token is scoped to.
func GetOrgIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocOrgID, "org_id")
}

// GetOrgRoleFromToken returns the caller's role within the active organization
// ("" when the token carries none).
func GetOrgRoleFromToken(c *fiber.Ctx) string {
	if v := c.Locals(LocOrgRole); v != nil {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
