package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtrl "ritmo_backend/internals/features/school/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attCtrl.NewAttendanceController(db)

	r.Get("/sessions/:session_id/attendance", ctrl.GetSessionAttendance)
	r.Patch("/sessions/:session_id/attendance", ctrl.MarkAttendance)
}
