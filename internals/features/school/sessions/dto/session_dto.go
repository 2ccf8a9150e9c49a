package dto

import (
	"github.com/google/uuid"

	model "ritmo_backend/internals/features/school/sessions/model"
	"ritmo_backend/internals/helpers/timeplan"
)

/* ===================== REQUESTS ===================== */

// CreateSessionRequest covers both manual group sessions and
// private/ad-hoc sessions (no groupId).
type CreateSessionRequest struct {
	GroupID   *uuid.UUID          `json:"groupId" validate:"omitempty"`
	VenueID   *uuid.UUID          `json:"venueId" validate:"omitempty"`
	TeacherID uuid.UUID           `json:"teacherId" validate:"required"`
	Date      timeplan.DateOnly   `json:"date" validate:"required"`
	StartTime *timeplan.ClockTime `json:"startTime" validate:"omitempty"`
	EndTime   *timeplan.ClockTime `json:"endTime" validate:"omitempty"`
}

func (r *CreateSessionRequest) ToModel(orgID uuid.UUID) *model.SessionModel {
	return &model.SessionModel{
		SessionsOrgID:     orgID,
		SessionsGroupID:   r.GroupID,
		SessionsVenueID:   r.VenueID,
		SessionsTeacherID: &r.TeacherID,
		SessionsDate:      r.Date,
		SessionsStartTime: r.StartTime,
		SessionsEndTime:   r.EndTime,
		SessionsStatus:    model.SessionScheduled,
	}
}

// UpdateSessionStatusRequest: date/time/group/teacher edits on elapsed
// sessions are a policy concern for the API, so only status moves here.
type UpdateSessionStatusRequest struct {
	Status model.SessionStatus `json:"status" validate:"required,oneof=scheduled held cancelled"`
}

type GenerateSessionsRequest struct {
	From timeplan.DateOnly `json:"from" validate:"required"`
	To   timeplan.DateOnly `json:"to" validate:"required"`
}
