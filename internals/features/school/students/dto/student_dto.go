package dto

import (
	"github.com/google/uuid"

	model "ritmo_backend/internals/features/school/students/model"
)

/* ===================== REQUESTS ===================== */

type CreateStudentRequest struct {
	FullName string  `json:"fullName" validate:"required,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Notes    *string `json:"notes" validate:"omitempty"`
}

func (r *CreateStudentRequest) ToModel(orgID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentsOrgID:    orgID,
		StudentsFullName: r.FullName,
		StudentsEmail:    r.Email,
		StudentsPhone:    r.Phone,
		StudentsNotes:    r.Notes,
	}
}

// Update (partial, everything optional)
type UpdateStudentRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Notes    *string `json:"notes" validate:"omitempty"`
	IsActive *bool   `json:"isActive" validate:"omitempty"`
}

func (r *UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.FullName != nil {
		m.StudentsFullName = *r.FullName
	}
	if r.Email != nil {
		m.StudentsEmail = r.Email
	}
	if r.Phone != nil {
		m.StudentsPhone = r.Phone
	}
	if r.Notes != nil {
		m.StudentsNotes = r.Notes
	}
	if r.IsActive != nil {
		m.StudentsIsActive = *r.IsActive
	}
}
