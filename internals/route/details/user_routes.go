package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orgRoute "ritmo_backend/internals/features/organizations/route"
	authCtrl "ritmo_backend/internals/features/users/auth/controller"
)

// UserRoutes: endpoints any authenticated user can hit, org scope optional.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)
	r.Get("/me", ctrl.Me)

	orgRoute.UserOrganizationRoutes(r, db)
}
