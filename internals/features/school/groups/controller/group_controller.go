package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupDTO "ritmo_backend/internals/features/school/groups/dto"
	groupModel "ritmo_backend/internals/features/school/groups/model"
	helper "ritmo_backend/internals/helpers"
	"ritmo_backend/internals/helpers/timeplan"
)

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db, Validate: validator.New()}
}

/* ===============================
   GROUP CRUD
=============================== */

// POST /api/a/:org_id/groups
func (ctrl *GroupController) CreateGroup(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req groupDTO.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(orgID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create group")
	}
	return helper.JsonCreated(c, "Group created", m)
}

// GET /api/a/:org_id/groups
func (ctrl *GroupController) ListGroups(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []groupModel.GroupModel
	if err := ctrl.DB.
		Where("groups_org_id = ?", orgID).
		Order("groups_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load groups")
	}
	return helper.Success(c, "OK", fiber.Map{"groups": rows})
}

// GET /api/a/:org_id/groups/:group_id
func (ctrl *GroupController) GetGroup(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var m groupModel.GroupModel
	err = ctrl.DB.First(&m, "groups_id = ? AND groups_org_id = ?", groupID, orgID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load group")
	}
	return helper.Success(c, "OK", m)
}

// PUT /api/a/:org_id/groups/:group_id
func (ctrl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var req groupDTO.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m groupModel.GroupModel
	err = ctrl.DB.First(&m, "groups_id = ? AND groups_org_id = ?", groupID, orgID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load group")
	}

	req.Apply(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update group")
	}
	return helper.JsonUpdated(c, "Group updated", m)
}

/* ===============================
   ENROLLMENTS
=============================== */

// POST /api/a/:org_id/groups/:group_id/enrollments
func (ctrl *GroupController) CreateEnrollment(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var req groupDTO.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.StartDate.IsZero() {
		return helper.JsonError(c, fiber.StatusBadRequest, "startDate (YYYY-MM-DD) is required")
	}
	if req.EndDate != nil && req.EndDate.BeforeDate(req.StartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "endDate must not be before startDate")
	}

	// group must belong to this org
	var count int64
	if err := ctrl.DB.Model(&groupModel.GroupModel{}).
		Where("groups_id = ? AND groups_org_id = ?", groupID, orgID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check group")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
	}

	m := req.ToModel(orgID, groupID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create enrollment")
	}
	return helper.JsonCreated(c, "Enrollment created", m)
}

// GET /api/a/:org_id/groups/:group_id/enrollments[?activeOn=YYYY-MM-DD]
func (ctrl *GroupController) ListEnrollments(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	q := ctrl.DB.
		Where("enrollments_org_id = ? AND enrollments_group_id = ?", orgID, groupID)

	if activeOn := c.Query("activeOn"); activeOn != "" {
		d, err := timeplan.ParseDate(activeOn)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "activeOn must be YYYY-MM-DD")
		}
		q = q.Scopes(groupModel.ScopeActiveOn(d))
	}

	var rows []groupModel.EnrollmentModel
	if err := q.Order("enrollments_start_date ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load enrollments")
	}
	return helper.Success(c, "OK", fiber.Map{"enrollments": rows})
}

// PATCH /api/a/:org_id/enrollments/:id/end
func (ctrl *GroupController) EndEnrollment(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}

	var req groupDTO.EndEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.EndDate.IsZero() {
		return helper.JsonError(c, fiber.StatusBadRequest, "endDate (YYYY-MM-DD) is required")
	}

	var m groupModel.EnrollmentModel
	err = ctrl.DB.First(&m, "enrollments_id = ? AND enrollments_org_id = ?", id, orgID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load enrollment")
	}
	if req.EndDate.BeforeDate(m.EnrollmentsStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "endDate must not be before startDate")
	}

	m.EnrollmentsEndDate = &req.EndDate
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to end enrollment")
	}
	return helper.JsonUpdated(c, "Enrollment ended", m)
}
