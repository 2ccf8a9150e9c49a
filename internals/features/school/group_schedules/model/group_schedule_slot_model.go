package model

import (
	"github.com/google/uuid"

	"ritmo_backend/internals/helpers/timeplan"
)

// GroupScheduleSlotModel is one weekly occurrence within a schedule version.
// sort_order is the slot's position in the submitted array (0-based) and
// distinguishes the two slots of a twice-weekly version.
type GroupScheduleSlotModel struct {
	GroupScheduleSlotsID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:group_schedule_slots_id" json:"id"`
	GroupScheduleSlotsScheduleID uuid.UUID `gorm:"type:uuid;not null;column:group_schedule_slots_schedule_id;index:idx_group_schedule_slots_schedule" json:"scheduleId"`

	// ISO: 1=Monday .. 7=Sunday
	GroupScheduleSlotsDayOfWeek int                `gorm:"not null;column:group_schedule_slots_day_of_week" json:"dayOfWeek"`
	GroupScheduleSlotsStartTime timeplan.ClockTime `gorm:"type:time;not null;column:group_schedule_slots_start_time" json:"startTime"`
	GroupScheduleSlotsSortOrder int                `gorm:"not null;default:0;column:group_schedule_slots_sort_order" json:"sortOrder"`
}

func (GroupScheduleSlotModel) TableName() string {
	return "group_schedule_slots"
}
