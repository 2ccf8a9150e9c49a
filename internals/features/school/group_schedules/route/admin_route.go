package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleCtrl "ritmo_backend/internals/features/school/group_schedules/controller"
)

func GroupScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := scheduleCtrl.NewGroupScheduleController(db)

	g := r.Group("/groups/:group_id/schedule")
	g.Get("/", ctrl.GetSchedule)
	g.Patch("/", ctrl.UpsertSchedule)
	g.Post("/generate-sessions", ctrl.GenerateSessions)
}
