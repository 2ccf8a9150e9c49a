package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ritmo_backend/internals/helpers/timeplan"
)

// EnrollmentModel is a student↔group membership interval
// [start_date, end_date?]. Leaving a group sets end_date (soft end);
// rows are kept forever so historical rosters stay intact.
type EnrollmentModel struct {
	EnrollmentsID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollments_id" json:"id"`
	EnrollmentsOrgID     uuid.UUID `gorm:"type:uuid;not null;column:enrollments_org_id;index:idx_enrollments_org" json:"orgId"`
	EnrollmentsGroupID   uuid.UUID `gorm:"type:uuid;not null;column:enrollments_group_id;index:idx_enrollments_group" json:"groupId"`
	EnrollmentsStudentID uuid.UUID `gorm:"type:uuid;not null;column:enrollments_student_id;index:idx_enrollments_student" json:"studentId"`

	EnrollmentsStartDate timeplan.DateOnly  `gorm:"type:date;not null;column:enrollments_start_date" json:"startDate"`
	EnrollmentsEndDate   *timeplan.DateOnly `gorm:"type:date;column:enrollments_end_date" json:"endDate,omitempty"`

	EnrollmentsCreatedAt time.Time  `gorm:"column:enrollments_created_at;autoCreateTime" json:"createdAt"`
	EnrollmentsUpdatedAt *time.Time `gorm:"column:enrollments_updated_at;autoUpdateTime" json:"updatedAt,omitempty"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

// ActiveOn reports whether the enrollment interval covers d.
func (m *EnrollmentModel) ActiveOn(d timeplan.DateOnly) bool {
	if d.BeforeDate(m.EnrollmentsStartDate) {
		return false
	}
	if m.EnrollmentsEndDate != nil && d.AfterDate(*m.EnrollmentsEndDate) {
		return false
	}
	return true
}

// ScopeActiveOn narrows to enrollments whose interval covers the given date:
// start_date <= d AND (end_date IS NULL OR end_date >= d).
func ScopeActiveOn(d timeplan.DateOnly) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"enrollments_start_date <= ? AND (enrollments_end_date IS NULL OR enrollments_end_date >= ?)",
			d, d,
		)
	}
}
