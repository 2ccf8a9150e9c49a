package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "ritmo_backend/internals/middlewares/auth"
	featuresMiddleware "ritmo_backend/internals/middlewares/features"
	routeDetails "ritmo_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	// Any authenticated user; no org scope required.
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	routeDetails.UserRoutes(private, db)

	// ===================== ADMIN (per organization) =====================
	// Token must be scoped to the org in the path, and the member must hold
	// a staff-or-above role there.
	log.Println("[INFO] Setting up ADMIN group (Auth + OrgScope + RoleCheck)...")
	admin := app.Group("/api/a/:org_id",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		featuresMiddleware.UseOrgScope(db),
		featuresMiddleware.RequirePathOrgMatch(),
		featuresMiddleware.IsOrgStaff(),
	)
	routeDetails.SchoolAdminRoutes(admin, db)
}
