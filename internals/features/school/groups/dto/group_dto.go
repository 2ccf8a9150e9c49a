package dto

import (
	"github.com/google/uuid"

	model "ritmo_backend/internals/features/school/groups/model"
	"ritmo_backend/internals/helpers/timeplan"
)

/* ===================== GROUPS ===================== */

type CreateGroupRequest struct {
	Name      string     `json:"name" validate:"required,min=2,max=100"`
	TeacherID *uuid.UUID `json:"teacherId" validate:"omitempty"`
	VenueID   *uuid.UUID `json:"venueId" validate:"omitempty"`
}

func (r *CreateGroupRequest) ToModel(orgID uuid.UUID) *model.GroupModel {
	return &model.GroupModel{
		GroupsOrgID:     orgID,
		GroupsName:      r.Name,
		GroupsTeacherID: r.TeacherID,
		GroupsVenueID:   r.VenueID,
	}
}

type UpdateGroupRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=2,max=100"`
	TeacherID *uuid.UUID `json:"teacherId" validate:"omitempty"`
	VenueID   *uuid.UUID `json:"venueId" validate:"omitempty"`
	IsActive  *bool      `json:"isActive" validate:"omitempty"`
}

func (r *UpdateGroupRequest) Apply(m *model.GroupModel) {
	if r.Name != nil {
		m.GroupsName = *r.Name
	}
	if r.TeacherID != nil {
		m.GroupsTeacherID = r.TeacherID
	}
	if r.VenueID != nil {
		m.GroupsVenueID = r.VenueID
	}
	if r.IsActive != nil {
		m.GroupsIsActive = *r.IsActive
	}
}

/* ===================== ENROLLMENTS ===================== */

type CreateEnrollmentRequest struct {
	StudentID uuid.UUID          `json:"studentId" validate:"required"`
	StartDate timeplan.DateOnly  `json:"startDate" validate:"required"`
	EndDate   *timeplan.DateOnly `json:"endDate" validate:"omitempty"`
}

func (r *CreateEnrollmentRequest) ToModel(orgID, groupID uuid.UUID) *model.EnrollmentModel {
	return &model.EnrollmentModel{
		EnrollmentsOrgID:     orgID,
		EnrollmentsGroupID:   groupID,
		EnrollmentsStudentID: r.StudentID,
		EnrollmentsStartDate: r.StartDate,
		EnrollmentsEndDate:   r.EndDate,
	}
}

// EndEnrollmentRequest closes the interval (the row is never deleted).
type EndEnrollmentRequest struct {
	EndDate timeplan.DateOnly `json:"endDate" validate:"required"`
}
