package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupCtrl "ritmo_backend/internals/features/school/groups/controller"
)

func GroupAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := groupCtrl.NewGroupController(db)

	g := r.Group("/groups")
	g.Post("/", ctrl.CreateGroup)
	g.Get("/", ctrl.ListGroups)
	g.Get("/:group_id", ctrl.GetGroup)
	g.Put("/:group_id", ctrl.UpdateGroup)

	g.Post("/:group_id/enrollments", ctrl.CreateEnrollment)
	g.Get("/:group_id/enrollments", ctrl.ListEnrollments)

	r.Patch("/enrollments/:id/end", ctrl.EndEnrollment)
}
