package dto

import (
	"github.com/google/uuid"

	model "ritmo_backend/internals/features/school/group_schedules/model"
	"ritmo_backend/internals/helpers/timeplan"
)

/* ===================== REQUESTS ===================== */

type SlotInput struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
}

// UpsertScheduleRequest mirrors the PATCH /schedule body. Validation happens
// in the service so its exact messages stay in one place.
type UpsertScheduleRequest struct {
	Recurrence        string             `json:"recurrence"`
	DurationHours     float64            `json:"durationHours"`
	EffectiveFrom     *timeplan.DateOnly `json:"effectiveFrom"`
	EffectiveTo       *timeplan.DateOnly `json:"effectiveTo"`
	ApplyToFutureOnly bool               `json:"applyToFutureOnly"`
	Slots             []SlotInput        `json:"slots"`
}

/* ===================== RESPONSES ===================== */

type SlotResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	SortOrder int    `json:"sortOrder"`
}

type ScheduleResponse struct {
	ID            uuid.UUID          `json:"id"`
	Recurrence    model.Recurrence   `json:"recurrence"`
	DurationHours float64            `json:"durationHours"`
	EffectiveFrom timeplan.DateOnly  `json:"effectiveFrom"`
	EffectiveTo   *timeplan.DateOnly `json:"effectiveTo"`
	Slots         []SlotResponse     `json:"slots"`
}

func FromGroupScheduleModel(m model.GroupScheduleModel) ScheduleResponse {
	slots := make([]SlotResponse, 0, len(m.Slots))
	for _, s := range m.Slots {
		slots = append(slots, SlotResponse{
			DayOfWeek: s.GroupScheduleSlotsDayOfWeek,
			StartTime: s.GroupScheduleSlotsStartTime.String(),
			SortOrder: s.GroupScheduleSlotsSortOrder,
		})
	}
	return ScheduleResponse{
		ID:            m.GroupSchedulesID,
		Recurrence:    m.GroupSchedulesRecurrence,
		DurationHours: m.GroupSchedulesDurationHours,
		EffectiveFrom: m.GroupSchedulesEffectiveFrom,
		EffectiveTo:   m.GroupSchedulesEffectiveTo,
		Slots:         slots,
	}
}

func FromGroupScheduleModels(ms []model.GroupScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromGroupScheduleModel(m))
	}
	return out
}
