package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionCtrl "ritmo_backend/internals/features/school/sessions/controller"
)

func SessionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sessionCtrl.NewSessionController(db)

	g := r.Group("/sessions")
	g.Get("/", ctrl.ListSessions)
	g.Post("/", ctrl.CreateSession)
	g.Get("/:session_id", ctrl.GetSession)
	g.Patch("/:session_id/status", ctrl.UpdateSessionStatus)
	g.Delete("/:session_id", ctrl.DeleteSession)
}
