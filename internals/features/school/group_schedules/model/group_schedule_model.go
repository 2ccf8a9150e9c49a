package model

import (
	"time"

	"github.com/google/uuid"

	"ritmo_backend/internals/helpers/timeplan"
)

type Recurrence string

const (
	RecurrenceOneTime     Recurrence = "one_time"
	RecurrenceWeekly      Recurrence = "weekly"
	RecurrenceTwiceWeekly Recurrence = "twice_weekly"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceOneTime, RecurrenceWeekly, RecurrenceTwiceWeekly:
		return true
	}
	return false
}

// SlotCount is the number of weekly slots a recurrence owns.
func (r Recurrence) SlotCount() int {
	if r == RecurrenceTwiceWeekly {
		return 2
	}
	return 1
}

// GroupScheduleModel is one version of a group's recurring meeting pattern,
// valid over [effective_from, effective_to?]. Versions are never mutated once
// superseded; the close-out write of effective_to is the single exception.
// The partial unique index keeps at most one open version per group, so two
// racing future-only edits cannot both insert.
type GroupScheduleModel struct {
	GroupSchedulesID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:group_schedules_id" json:"id"`
	GroupSchedulesOrgID   uuid.UUID `gorm:"type:uuid;not null;column:group_schedules_org_id;index:idx_group_schedules_org" json:"orgId"`
	GroupSchedulesGroupID uuid.UUID `gorm:"type:uuid;not null;column:group_schedules_group_id;index:idx_group_schedules_group;uniqueIndex:uq_group_schedules_open,where:group_schedules_effective_to IS NULL" json:"groupId"`

	GroupSchedulesRecurrence    Recurrence `gorm:"type:varchar(20);not null;column:group_schedules_recurrence" json:"recurrence"`
	GroupSchedulesDurationHours float64    `gorm:"type:numeric(4,2);not null;column:group_schedules_duration_hours" json:"durationHours"`

	GroupSchedulesEffectiveFrom timeplan.DateOnly  `gorm:"type:date;not null;column:group_schedules_effective_from" json:"effectiveFrom"`
	GroupSchedulesEffectiveTo   *timeplan.DateOnly `gorm:"type:date;column:group_schedules_effective_to" json:"effectiveTo,omitempty"`

	GroupSchedulesCreatedAt time.Time `gorm:"column:group_schedules_created_at;autoCreateTime" json:"createdAt"`

	Slots []GroupScheduleSlotModel `gorm:"foreignKey:GroupScheduleSlotsScheduleID;references:GroupSchedulesID" json:"slots"`
}

func (GroupScheduleModel) TableName() string {
	return "group_schedules"
}

// CoversDate reports whether d falls within the version's effective range.
func (m *GroupScheduleModel) CoversDate(d timeplan.DateOnly) bool {
	if d.BeforeDate(m.GroupSchedulesEffectiveFrom) {
		return false
	}
	if m.GroupSchedulesEffectiveTo != nil && d.AfterDate(*m.GroupSchedulesEffectiveTo) {
		return false
	}
	return true
}
