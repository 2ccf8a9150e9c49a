package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "ritmo_backend/internals/features/users/auth/route"
)

// AuthRoutes mounts the public register/login/refresh endpoints.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)
}
