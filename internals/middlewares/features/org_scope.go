package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ritmo_backend/internals/constants"
	helper "ritmo_backend/internals/helpers"
)

/* ==========================
   Org scope resolution
========================== */

// UseOrgScope makes sure the request carries an org scope and the caller is a
// member of that org. When the token has no org_role it is resolved from the
// membership row and cached in locals.
func UseOrgScope(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		orgID, err := helper.GetOrgIDFromToken(c)
		if err != nil {
			return err
		}

		if helper.GetOrgRoleFromToken(c) == "" {
			var role string
			err := db.Table("organization_members").
				Select("organization_members_role").
				Where("organization_members_org_id = ? AND organization_members_user_id = ?", orgID, userID).
				Limit(1).Scan(&role).Error
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve membership")
			}
			if strings.TrimSpace(role) == "" {
				return fiber.NewError(fiber.StatusForbidden, "You are not a member of this organization")
			}
			c.Locals(helper.LocOrgRole, role)
		}

		return c.Next()
	}
}

// RequirePathOrgMatch rejects requests whose :org_id path segment does not
// match the org the token is scoped to. Tenant isolation at the boundary;
// queries still filter by org id themselves.
func RequirePathOrgMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pathOrg := strings.TrimSpace(c.Params("org_id"))
		if pathOrg == "" {
			return fiber.NewError(fiber.StatusBadRequest, "org_id path parameter is required")
		}
		if _, err := uuid.Parse(pathOrg); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "org_id path parameter is not a valid UUID")
		}

		tokenOrg, err := helper.GetOrgIDFromToken(c)
		if err != nil {
			return err
		}
		if !strings.EqualFold(pathOrg, tokenOrg.String()) {
			return fiber.NewError(fiber.StatusForbidden, "Token is not scoped to this organization")
		}
		return c.Next()
	}
}

/* ==========================
   Role guards
========================== */

func requireRole(allowed []string, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetOrgRoleFromToken(c)
		if !constants.RoleIn(role, allowed) {
			return fiber.NewError(fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}

// IsOrgStaff allows teacher, admin and owner.
func IsOrgStaff() fiber.Handler {
	return requireRole(constants.TeacherAndAbove, constants.RoleErrorStaff("this resource"))
}

// IsOrgAdmin allows admin and owner.
func IsOrgAdmin() fiber.Handler {
	return requireRole(constants.AdminAndAbove, constants.RoleErrorAdmin("this resource"))
}
