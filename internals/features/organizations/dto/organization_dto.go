package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "ritmo_backend/internals/features/organizations/model"
)

/* ===================== REQUESTS ===================== */

type CreateOrganizationRequest struct {
	Name     string         `json:"name" validate:"required,min=2,max=120"`
	Slug     string         `json:"slug" validate:"required,min=2,max=63,lowercase"`
	Settings datatypes.JSON `json:"settings" validate:"omitempty"`
}

func (r *CreateOrganizationRequest) ToModel() *model.OrganizationModel {
	return &model.OrganizationModel{
		OrganizationsName:     r.Name,
		OrganizationsSlug:     r.Slug,
		OrganizationsSettings: r.Settings,
	}
}

type AddMemberRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Role   string    `json:"role" validate:"required,oneof=owner admin teacher staff"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner admin teacher staff"`
}

/* ===================== RESPONSES ===================== */

type OrganizationResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Settings  datatypes.JSON `json:"settings,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func FromOrganizationModel(m model.OrganizationModel) OrganizationResponse {
	return OrganizationResponse{
		ID:        m.OrganizationsID,
		Name:      m.OrganizationsName,
		Slug:      m.OrganizationsSlug,
		Settings:  m.OrganizationsSettings,
		CreatedAt: m.OrganizationsCreatedAt,
	}
}

type MemberResponse struct {
	ID     uuid.UUID `json:"id"`
	OrgID  uuid.UUID `json:"orgId"`
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
}

func FromMemberModel(m model.OrganizationMemberModel) MemberResponse {
	return MemberResponse{
		ID:     m.OrganizationMembersID,
		OrgID:  m.OrganizationMembersOrgID,
		UserID: m.OrganizationMembersUserID,
		Role:   m.OrganizationMembersRole,
	}
}
