package dto

import (
	"github.com/google/uuid"

	model "ritmo_backend/internals/features/school/teachers/model"
)

type CreateTeacherRequest struct {
	FullName string     `json:"fullName" validate:"required,min=2,max=100"`
	Email    *string    `json:"email" validate:"omitempty,email"`
	Phone    *string    `json:"phone" validate:"omitempty,max=30"`
	Bio      *string    `json:"bio" validate:"omitempty"`
	UserID   *uuid.UUID `json:"userId" validate:"omitempty"`
}

func (r *CreateTeacherRequest) ToModel(orgID uuid.UUID) *model.TeacherModel {
	return &model.TeacherModel{
		TeachersOrgID:    orgID,
		TeachersUserID:   r.UserID,
		TeachersFullName: r.FullName,
		TeachersEmail:    r.Email,
		TeachersPhone:    r.Phone,
		TeachersBio:      r.Bio,
	}
}

type UpdateTeacherRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Bio      *string `json:"bio" validate:"omitempty"`
	IsActive *bool   `json:"isActive" validate:"omitempty"`
}

func (r *UpdateTeacherRequest) Apply(m *model.TeacherModel) {
	if r.FullName != nil {
		m.TeachersFullName = *r.FullName
	}
	if r.Email != nil {
		m.TeachersEmail = r.Email
	}
	if r.Phone != nil {
		m.TeachersPhone = r.Phone
	}
	if r.Bio != nil {
		m.TeachersBio = r.Bio
	}
	if r.IsActive != nil {
		m.TeachersIsActive = *r.IsActive
	}
}
