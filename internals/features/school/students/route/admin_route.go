package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtrl "ritmo_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	g := r.Group("/students")
	g.Post("/", ctrl.CreateStudent)
	g.Get("/", ctrl.ListStudents)
	g.Get("/:id", ctrl.GetStudent)
	g.Put("/:id", ctrl.UpdateStudent)
	g.Delete("/:id", ctrl.DeleteStudent)
}
