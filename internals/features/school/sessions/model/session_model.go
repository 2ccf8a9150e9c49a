package model

import (
	"time"

	"github.com/google/uuid"

	"ritmo_backend/internals/helpers/timeplan"
)

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionHeld      SessionStatus = "held"
	SessionCancelled SessionStatus = "cancelled"
)

// SessionModel is one concrete, dated occurrence of a class. Group sessions
// come out of the generator (or are created by hand); private/ad-hoc sessions
// have no group. The partial unique index on (group, date, start_time) backs
// the generator's idempotence.
type SessionModel struct {
	SessionsID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:sessions_id" json:"id"`
	SessionsOrgID uuid.UUID `gorm:"type:uuid;not null;column:sessions_org_id;index:idx_sessions_org_date,priority:1" json:"orgId"`

	SessionsGroupID   *uuid.UUID `gorm:"type:uuid;column:sessions_group_id;uniqueIndex:uq_sessions_group_date_start,priority:1,where:sessions_group_id IS NOT NULL" json:"groupId,omitempty"`
	SessionsVenueID   *uuid.UUID `gorm:"type:uuid;column:sessions_venue_id" json:"venueId,omitempty"`
	SessionsTeacherID *uuid.UUID `gorm:"type:uuid;column:sessions_teacher_id;index:idx_sessions_teacher" json:"teacherId,omitempty"`

	SessionsDate      timeplan.DateOnly   `gorm:"type:date;not null;column:sessions_date;index:idx_sessions_org_date,priority:2;uniqueIndex:uq_sessions_group_date_start,priority:2" json:"date"`
	SessionsStartTime *timeplan.ClockTime `gorm:"type:time;column:sessions_start_time;uniqueIndex:uq_sessions_group_date_start,priority:3" json:"startTime,omitempty"`
	SessionsEndTime   *timeplan.ClockTime `gorm:"type:time;column:sessions_end_time" json:"endTime,omitempty"`

	SessionsStatus SessionStatus `gorm:"type:varchar(20);not null;default:'scheduled';column:sessions_status" json:"status"`

	SessionsCreatedAt time.Time  `gorm:"column:sessions_created_at;autoCreateTime" json:"createdAt"`
	SessionsUpdatedAt *time.Time `gorm:"column:sessions_updated_at;autoUpdateTime" json:"updatedAt,omitempty"`
}

func (SessionModel) TableName() string {
	return "sessions"
}
