package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orgRoute "ritmo_backend/internals/features/organizations/route"
	featuresMiddleware "ritmo_backend/internals/middlewares/features"
	attRoute "ritmo_backend/internals/features/school/attendance/route"
	scheduleRoute "ritmo_backend/internals/features/school/group_schedules/route"
	groupRoute "ritmo_backend/internals/features/school/groups/route"
	sessionRoute "ritmo_backend/internals/features/school/sessions/route"
	studentRoute "ritmo_backend/internals/features/school/students/route"
	teacherRoute "ritmo_backend/internals/features/school/teachers/route"
	venueRoute "ritmo_backend/internals/features/school/venues/route"
)

// SchoolAdminRoutes mounts everything under /api/a/:org_id.
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	// member management needs admin or owner, not just staff
	orgRoute.AdminOrganizationRoutes(r.Group("", featuresMiddleware.IsOrgAdmin()), db)

	studentRoute.StudentAdminRoutes(r, db)
	teacherRoute.TeacherAdminRoutes(r, db)
	venueRoute.VenueAdminRoutes(r, db)

	groupRoute.GroupAdminRoutes(r, db)
	scheduleRoute.GroupScheduleAdminRoutes(r, db)
	sessionRoute.SessionAdminRoutes(r, db)
	attRoute.AttendanceAdminRoutes(r, db)
}
