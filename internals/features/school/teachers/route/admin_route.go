package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherCtrl "ritmo_backend/internals/features/school/teachers/controller"
)

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherCtrl.NewTeacherController(db)

	g := r.Group("/teachers")
	g.Post("/", ctrl.CreateTeacher)
	g.Get("/", ctrl.ListTeachers)
	g.Get("/:id", ctrl.GetTeacher)
	g.Put("/:id", ctrl.UpdateTeacher)
	g.Delete("/:id", ctrl.DeleteTeacher)
}
