package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusExcused = "excused"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// AttendanceEntryModel records one student's mark on one session. A student
// without a row is simply not marked yet; "unmarked" is the absence of a
// row, never a status value.
type AttendanceEntryModel struct {
	AttendanceEntriesID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_entries_id" json:"id"`
	AttendanceEntriesOrgID     uuid.UUID `gorm:"type:uuid;not null;column:attendance_entries_org_id;index:idx_attendance_entries_org" json:"orgId"`
	AttendanceEntriesSessionID uuid.UUID `gorm:"type:uuid;not null;column:attendance_entries_session_id;uniqueIndex:uq_attendance_entries_session_student,priority:1" json:"sessionId"`
	AttendanceEntriesStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_entries_student_id;uniqueIndex:uq_attendance_entries_session_student,priority:2;index:idx_attendance_entries_student" json:"studentId"`

	AttendanceEntriesStatus string  `gorm:"type:varchar(20);not null;column:attendance_entries_status" json:"status"`
	AttendanceEntriesNote   *string `gorm:"type:varchar(255);column:attendance_entries_note" json:"note,omitempty"`

	AttendanceEntriesMarkedBy  *uuid.UUID `gorm:"type:uuid;column:attendance_entries_marked_by" json:"markedBy,omitempty"`
	AttendanceEntriesCreatedAt time.Time  `gorm:"column:attendance_entries_created_at;autoCreateTime" json:"createdAt"`
	AttendanceEntriesUpdatedAt *time.Time `gorm:"column:attendance_entries_updated_at;autoUpdateTime" json:"updatedAt,omitempty"`
}

func (AttendanceEntryModel) TableName() string {
	return "attendance_entries"
}
