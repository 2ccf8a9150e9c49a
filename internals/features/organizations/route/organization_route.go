package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orgCtrl "ritmo_backend/internals/features/organizations/controller"
)

// UserOrganizationRoutes: authenticated, no org scope needed.
func UserOrganizationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := orgCtrl.NewOrganizationController(db)

	g := r.Group("/organizations")
	g.Post("/", ctrl.CreateOrganization)
	g.Get("/", ctrl.MyOrganizations)
}

// AdminOrganizationRoutes: org-scoped member management.
func AdminOrganizationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := orgCtrl.NewOrganizationController(db)

	g := r.Group("/members")
	g.Get("/", ctrl.ListMembers)
	g.Post("/", ctrl.AddMember)
	g.Put("/:id", ctrl.UpdateMemberRole)
}
