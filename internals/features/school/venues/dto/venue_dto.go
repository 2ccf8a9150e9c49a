package dto

import (
	"github.com/google/uuid"

	model "ritmo_backend/internals/features/school/venues/model"
)

type CreateVenueRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Address  *string `json:"address" validate:"omitempty"`
	Capacity *int    `json:"capacity" validate:"omitempty,gt=0"`
}

func (r *CreateVenueRequest) ToModel(orgID uuid.UUID) *model.VenueModel {
	return &model.VenueModel{
		VenuesOrgID:    orgID,
		VenuesName:     r.Name,
		VenuesAddress:  r.Address,
		VenuesCapacity: r.Capacity,
	}
}

type UpdateVenueRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Address  *string `json:"address" validate:"omitempty"`
	Capacity *int    `json:"capacity" validate:"omitempty,gt=0"`
	IsActive *bool   `json:"isActive" validate:"omitempty"`
}

func (r *UpdateVenueRequest) Apply(m *model.VenueModel) {
	if r.Name != nil {
		m.VenuesName = *r.Name
	}
	if r.Address != nil {
		m.VenuesAddress = r.Address
	}
	if r.Capacity != nil {
		m.VenuesCapacity = r.Capacity
	}
	if r.IsActive != nil {
		m.VenuesIsActive = *r.IsActive
	}
}
