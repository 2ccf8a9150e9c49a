package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	venueDTO "ritmo_backend/internals/features/school/venues/dto"
	venueModel "ritmo_backend/internals/features/school/venues/model"
	helper "ritmo_backend/internals/helpers"
)

type VenueController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewVenueController(db *gorm.DB) *VenueController {
	return &VenueController{DB: db, Validate: validator.New()}
}

// POST /api/a/:org_id/venues
func (ctrl *VenueController) CreateVenue(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req venueDTO.CreateVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(orgID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create venue")
	}
	return helper.JsonCreated(c, "Venue created", m)
}

// GET /api/a/:org_id/venues
func (ctrl *VenueController) ListVenues(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []venueModel.VenueModel
	if err := ctrl.DB.
		Where("venues_org_id = ?", orgID).
		Order("venues_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load venues")
	}
	return helper.Success(c, "OK", fiber.Map{"venues": rows})
}

// PUT /api/a/:org_id/venues/:id
func (ctrl *VenueController) UpdateVenue(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid venue id")
	}

	var req venueDTO.UpdateVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m venueModel.VenueModel
	err = ctrl.DB.First(&m, "venues_id = ? AND venues_org_id = ?", id, orgID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Venue not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load venue")
	}

	req.Apply(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update venue")
	}
	return helper.JsonUpdated(c, "Venue updated", m)
}

// DELETE /api/a/:org_id/venues/:id
func (ctrl *VenueController) DeleteVenue(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid venue id")
	}

	res := ctrl.DB.Delete(&venueModel.VenueModel{}, "venues_id = ? AND venues_org_id = ?", id, orgID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete venue")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Venue not found")
	}
	return helper.JsonDeleted(c, "Venue deleted", fiber.Map{"id": id})
}
