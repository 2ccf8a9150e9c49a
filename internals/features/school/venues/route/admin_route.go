package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	venueCtrl "ritmo_backend/internals/features/school/venues/controller"
)

func VenueAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := venueCtrl.NewVenueController(db)

	g := r.Group("/venues")
	g.Post("/", ctrl.CreateVenue)
	g.Get("/", ctrl.ListVenues)
	g.Put("/:id", ctrl.UpdateVenue)
	g.Delete("/:id", ctrl.DeleteVenue)
}
