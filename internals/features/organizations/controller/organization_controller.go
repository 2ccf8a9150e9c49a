package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	orgDTO "ritmo_backend/internals/features/organizations/dto"
	orgModel "ritmo_backend/internals/features/organizations/model"
	"ritmo_backend/internals/constants"
	helper "ritmo_backend/internals/helpers"
)

type OrganizationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db, Validate: validator.New()}
}

/* ===============================
   CREATE
=============================== */

// POST /api/u/organizations
func (ctrl *OrganizationController) CreateOrganization(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req orgDTO.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var dupe int64
	if err := ctrl.DB.Model(&orgModel.OrganizationModel{}).
		Where("organizations_slug = ?", req.Slug).
		Count(&dupe).Error; err == nil && dupe > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Slug already in use")
	}

	org := req.ToModel()
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create organization")
		}
		member := orgModel.OrganizationMemberModel{
			OrganizationMembersOrgID:  org.OrganizationsID,
			OrganizationMembersUserID: userID,
			OrganizationMembersRole:   constants.RoleOwner,
		}
		if err := tx.Create(&member).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create owner membership")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Organization created", orgDTO.FromOrganizationModel(*org))
}

/* ===============================
   LIST (mine)
=============================== */

// GET /api/u/organizations
func (ctrl *OrganizationController) MyOrganizations(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var orgs []orgModel.OrganizationModel
	if err := ctrl.DB.
		Joins("JOIN organization_members ON organization_members_org_id = organizations_id").
		Where("organization_members_user_id = ?", userID).
		Find(&orgs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load organizations")
	}

	out := make([]orgDTO.OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, orgDTO.FromOrganizationModel(o))
	}
	return helper.Success(c, "OK", out)
}

/* ===============================
   MEMBERS
=============================== */

// GET /api/a/:org_id/members
func (ctrl *OrganizationController) ListMembers(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var members []orgModel.OrganizationMemberModel
	if err := ctrl.DB.
		Where("organization_members_org_id = ?", orgID).
		Order("organization_members_created_at ASC").
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load members")
	}

	out := make([]orgDTO.MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, orgDTO.FromMemberModel(m))
	}
	return helper.Success(c, "OK", out)
}

// POST /api/a/:org_id/members
func (ctrl *OrganizationController) AddMember(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req orgDTO.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	member := orgModel.OrganizationMemberModel{
		OrganizationMembersOrgID:  orgID,
		OrganizationMembersUserID: req.UserID,
		OrganizationMembersRole:   req.Role,
	}
	if err := ctrl.DB.Create(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "User is already a member")
	}
	return helper.JsonCreated(c, "Member added", orgDTO.FromMemberModel(member))
}

// PUT /api/a/:org_id/members/:id
func (ctrl *OrganizationController) UpdateMemberRole(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var req orgDTO.UpdateMemberRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var member orgModel.OrganizationMemberModel
	err = ctrl.DB.
		First(&member, "organization_members_id = ? AND organization_members_org_id = ?", memberID, orgID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load member")
	}

	member.OrganizationMembersRole = req.Role
	if err := ctrl.DB.Save(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
	}
	return helper.JsonUpdated(c, "Member updated", orgDTO.FromMemberModel(member))
}
